package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/anthropic"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

func TestDemoRunAgent(t *testing.T) {
	runner := new(MockAgentRunner)
	runner.On("RunAgent", mock.Anything, mock.MatchedBy(func(system string) bool {
		return strings.Contains(system, "customer support agent")
	}), "¿Cómo cancelo mi pedido?").Return(&anthropic.AgentReply{
		Text:       "Claro, te ayudo con eso.",
		TokensUsed: 120,
		Model:      "claude-sonnet-4-6",
	}, nil)

	uc := usecase.NewDemoUseCase(runner)

	output, err := uc.RunAgent(context.Background(), usecase.RunAgentInput{
		Prompt:    "¿Cómo cancelo mi pedido?",
		AgentType: entity.AgentSupport,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Claro, te ayudo con eso.", output.Result)
	assert.Equal(t, "Customer Support Agent", output.AgentName)
	assert.Equal(t, 120, output.TokensUsed)
	assert.Equal(t, "claude-sonnet-4-6", output.Model)
	assert.GreaterOrEqual(t, output.ProcessingTimeMS, int64(0))
	runner.AssertExpectations(t)
}

// Contexto opcional entra como prefixo da mensagem do visitante.
func TestDemoRunAgentWithContext(t *testing.T) {
	runner := new(MockAgentRunner)
	runner.On("RunAgent", mock.Anything, mock.Anything,
		"Context: tienda de zapatos online\n\nRequest: escribe un slogan").
		Return(&anthropic.AgentReply{Text: "listo", Model: "claude-sonnet-4-6"}, nil)

	uc := usecase.NewDemoUseCase(runner)

	_, err := uc.RunAgent(context.Background(), usecase.RunAgentInput{
		Prompt:    "escribe un slogan",
		AgentType: entity.AgentContent,
		Context:   "tienda de zapatos online",
	})

	assert.NoError(t, err)
	runner.AssertExpectations(t)
}

func TestDemoRunAgentValidation(t *testing.T) {
	runner := new(MockAgentRunner)
	uc := usecase.NewDemoUseCase(runner)

	_, err := uc.RunAgent(context.Background(), usecase.RunAgentInput{
		Prompt:    "",
		AgentType: entity.AgentSupport,
	})
	assert.True(t, usecase.IsDomainError(err))

	_, err = uc.RunAgent(context.Background(), usecase.RunAgentInput{
		Prompt:    "hola",
		AgentType: "bundle", // sem demo própria
	})
	assert.True(t, usecase.IsDomainError(err))

	runner.AssertNotCalled(t, "RunAgent", mock.Anything, mock.Anything, mock.Anything)
}

// Sem resposta não existe demo: falha do provedor propaga, diferente da
// geração de sequência.
func TestDemoRunAgentProviderFailure(t *testing.T) {
	runner := new(MockAgentRunner)
	runner.On("RunAgent", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	uc := usecase.NewDemoUseCase(runner)

	_, err := uc.RunAgent(context.Background(), usecase.RunAgentInput{
		Prompt:    "hola",
		AgentType: entity.AgentAnalytics,
	})

	assert.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
}

func TestDemoAgentTypes(t *testing.T) {
	types := usecase.DemoAgentTypes()

	assert.Len(t, types, 3)
	assert.Equal(t, entity.AgentSupport, types[0].ID)
	assert.Equal(t, "Data Analytics Agent", types[1].Name)
	assert.NotEmpty(t, types[2].UseCase)
}
