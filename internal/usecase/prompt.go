package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// SequenceMessage é o objeto que o modelo deve devolver, 5 por resposta.
type SequenceMessage struct {
	Sequence int    `json:"sequence"`
	Channel  string `json:"channel"`
	Angle    string `json:"angle"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

const fallbackSubject = "Una pregunta rápida"
const fallbackBodyLimit = 500

// BuildSequencePrompt monta a única requisição de geração: atributos do
// prospecto, canais disponíveis, exemplares positivos e as regras fixas das
// 5 mensagens. O idioma da resposta fica como dica pro modelo, não é
// validado depois.
func BuildSequencePrompt(p *entity.Prospect, exemplars []*entity.PositiveExemplar) string {
	contact := p.ContactName
	if p.Role != "" {
		contact += fmt.Sprintf(" (%s)", p.Role)
	}

	industry := p.Industry
	if industry == "" {
		industry = "No especificada"
	}

	extraContext := p.Context
	if extraContext == "" {
		extraContext = "Ninguno"
	}

	return fmt.Sprintf(`Eres un experto en outreach B2B de alto rendimiento. Tu trabajo es crear una secuencia de 5 mensajes para contactar a un prospecto potencial para una agencia que vende agentes de IA custom para empresas.

PROSPECTO:
- Empresa: %s
- Contacto: %s
- Industria: %s
- Canales disponibles: %s
- Dolor principal: %s
- Contexto adicional: %s
%s
REGLAS ESTRICTAS DE OUTREACH B2B DE ALTO RENDIMIENTO:
1. Mensaje 1 (pain): Personalizado al dolor específico. Máx 70 palabras. Sin mencionar tecnología. Un solo CTA.
2. Mensaje 2 (social_proof): 4–5 días después. Resultado concreto de un cliente similar. Máx 80 palabras.
3. Mensaje 3 (value_add): 7 días después. Ofrece algo útil gratis (insight, mini-diagnóstico). Máx 90 palabras.
4. Mensaje 4 (urgency): 12 días después. Ventana de tiempo o capacidad limitada. Máx 70 palabras.
5. Mensaje 5 (breakup): 20 días después. Cierra la secuencia con dignidad. Máx 50 palabras. Deja puerta abierta.

CANAL DE CADA MENSAJE:
- Si hay LinkedIn disponible: mensajes 1 y 3 van por LinkedIn, el resto por email
- Si solo hay email: todos por email
- LinkedIn: sin asunto, más corto y conversacional
- Email: incluye asunto atractivo y breve

FORMATO DE RESPUESTA (JSON puro, sin markdown, sin explicaciones):
[
  {
    "sequence": 1,
    "channel": "linkedin|email",
    "angle": "pain",
    "subject": "solo si es email, sino null",
    "message": "texto completo listo para copiar y pegar"
  },
  ...5 objetos total
]

Escribe los mensajes en el idioma que corresponda al mercado del prospecto. Si la empresa es latinoamericana o española, escribe en español. Si es anglófona, en inglés. Usa tuteo en español a menos que el contexto sea muy formal.`,
		p.Company,
		contact,
		industry,
		strings.Join(p.Channels(), ", "),
		p.PainPoints,
		extraContext,
		formatExemplars(exemplars),
	)
}

func formatExemplars(exemplars []*entity.PositiveExemplar) string {
	if len(exemplars) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(exemplars))
	for _, e := range exemplars {
		industry := e.Industry
		if industry == "" {
			industry = "N/A"
		}
		blocks = append(blocks, fmt.Sprintf("[Ángulo: %s | Industria: %s | Secuencia: %d]\n%s", e.Angle, industry, e.Sequence, e.Message))
	}

	return fmt.Sprintf("\nMensajes que han obtenido respuesta positiva en el pasado (úsalos como referencia de tono y estructura):\n\n%s\n", strings.Join(blocks, "\n\n---\n\n"))
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ParseSequence extrai o array JSON da resposta crua. Qualquer falha de
// parse cai no fallback de mensagem única: a geração nunca erra pro
// chamador por culpa do formato. O bool indica se o fallback foi usado.
func ParseSequence(raw string) ([]SequenceMessage, bool) {
	match := jsonArrayPattern.FindString(raw)
	if match != "" {
		var msgs []SequenceMessage
		if err := json.Unmarshal([]byte(match), &msgs); err == nil && len(msgs) > 0 {
			return msgs, false
		}
	}

	body := raw
	if len(body) > fallbackBodyLimit {
		body = body[:fallbackBodyLimit]
		// O corte é em bytes; recua até a fronteira do rune para não
		// guardar UTF-8 inválido (as respostas vêm em espanhol).
		for len(body) > 0 && !utf8.ValidString(body) {
			body = body[:len(body)-1]
		}
	}

	return []SequenceMessage{
		{
			Sequence: 1,
			Channel:  entity.ChannelEmail,
			Angle:    entity.AnglePain,
			Subject:  fallbackSubject,
			Message:  body,
		},
	}, true
}
