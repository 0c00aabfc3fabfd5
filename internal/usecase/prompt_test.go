package usecase_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

func TestBuildSequencePromptDefaults(t *testing.T) {
	p := ownedProspect()
	p.Role = ""
	p.Industry = ""
	p.Linkedin = ""
	p.Context = ""

	prompt := usecase.BuildSequencePrompt(p, nil)

	assert.Contains(t, prompt, "Industria: No especificada")
	assert.Contains(t, prompt, "Contexto adicional: Ninguno")
	// Sem LinkedIn, só email entra como canal
	assert.Contains(t, prompt, "Canales disponibles: email")
	assert.NotContains(t, prompt, "email, linkedin")
	assert.NotContains(t, prompt, "respuesta positiva en el pasado")
}

func TestBuildSequencePromptWithRole(t *testing.T) {
	p := ownedProspect()
	p.Role = "Directora"

	prompt := usecase.BuildSequencePrompt(p, nil)

	assert.Contains(t, prompt, "Dra. Ruiz (Directora)")
	assert.Contains(t, prompt, "email, linkedin")
}

func TestParseSequenceHappyPath(t *testing.T) {
	msgs, fellBack := usecase.ParseSequence(fiveMessageJSON)

	assert.False(t, fellBack)
	assert.Len(t, msgs, 5)
	assert.Equal(t, "linkedin", msgs[0].Channel)
	assert.Equal(t, "pain", msgs[0].Angle)
	// subject null vira string vazia
	assert.Equal(t, "", msgs[0].Subject)
	assert.Equal(t, "s2", msgs[1].Subject)
}

func TestParseSequenceMalformed(t *testing.T) {
	msgs, fellBack := usecase.ParseSequence("Claro, aquí va la secuencia que pediste...")

	assert.True(t, fellBack)
	assert.Len(t, msgs, 1)
	assert.Equal(t, 1, msgs[0].Sequence)
	assert.Equal(t, entity.ChannelEmail, msgs[0].Channel)
	assert.Equal(t, entity.AnglePain, msgs[0].Angle)
	assert.Equal(t, "Una pregunta rápida", msgs[0].Subject)
	assert.Equal(t, "Claro, aquí va la secuencia que pediste...", msgs[0].Message)
}

func TestParseSequenceEmptyArray(t *testing.T) {
	msgs, fellBack := usecase.ParseSequence("[]")

	assert.True(t, fellBack)
	assert.Len(t, msgs, 1)
}

func TestParseSequenceFallbackTruncates(t *testing.T) {
	raw := strings.Repeat("x", 800)

	msgs, fellBack := usecase.ParseSequence(raw)

	assert.True(t, fellBack)
	assert.Len(t, msgs[0].Message, 500)
}

// O corte nunca deixa um rune multi-byte pela metade: com "ñ" montada sobre
// o limite, o corpo recua um byte e continua UTF-8 válido.
func TestParseSequenceFallbackTruncatesOnRuneBoundary(t *testing.T) {
	raw := strings.Repeat("x", 499) + "ñ y más texto en español"

	msgs, fellBack := usecase.ParseSequence(raw)

	assert.True(t, fellBack)
	assert.True(t, utf8.ValidString(msgs[0].Message))
	assert.Equal(t, strings.Repeat("x", 499), msgs[0].Message)
	assert.LessOrEqual(t, len(msgs[0].Message), 500)
}
