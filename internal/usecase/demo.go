package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

// System prompts fixos da demo pública, um por tipo de agente vendido. O
// prospecto testa o agente antes de comprar; a resposta sai no idioma do
// prompt dele.
var agentSystemPrompts = map[string]string{
	entity.AgentSupport:   "You are an expert customer support agent. You respond professionally, empathetically, and concisely to customer inquiries. Always provide actionable solutions. Keep responses under 200 words.",
	entity.AgentAnalytics: "You are a senior business data analyst. Given business data or a question about metrics, provide clear insights, identify patterns, and give specific recommendations. Focus on actionable conclusions. Keep responses under 250 words.",
	entity.AgentContent:   "You are a professional marketing copywriter. Generate compelling, conversion-focused content that matches the brand voice. Be creative, clear, and persuasive. Keep responses under 300 words.",
}

var demoAgentNames = map[string]string{
	entity.AgentSupport:   "Customer Support Agent",
	entity.AgentAnalytics: "Data Analytics Agent",
	entity.AgentContent:   "Content Writer Agent",
}

// DemoAgentTypes é o catálogo estático que o front da demo lista.
func DemoAgentTypes() []AgentTypeInfo {
	return []AgentTypeInfo{
		{
			ID:          entity.AgentSupport,
			Name:        demoAgentNames[entity.AgentSupport],
			Description: "Handles customer inquiries with professional, empathetic responses",
			UseCase:     "Reduce support ticket resolution time by 70%",
		},
		{
			ID:          entity.AgentAnalytics,
			Name:        demoAgentNames[entity.AgentAnalytics],
			Description: "Analyzes business data and extracts actionable insights",
			UseCase:     "4-hour analyses completed in 30 seconds",
		},
		{
			ID:          entity.AgentContent,
			Name:        demoAgentNames[entity.AgentContent],
			Description: "Generates on-brand marketing content at scale",
			UseCase:     "10x content production without hiring",
		},
	}
}

type DemoUseCase struct {
	Runner AgentRunner
}

func NewDemoUseCase(runner AgentRunner) *DemoUseCase {
	return &DemoUseCase{Runner: runner}
}

// RunAgent executa uma rodada da demo. Diferente da geração de sequência,
// falha do provedor aqui propaga: sem resposta não existe demo.
func (uc *DemoUseCase) RunAgent(ctx context.Context, input RunAgentInput) (*RunAgentOutput, error) {
	if strings.TrimSpace(input.Prompt) == "" {
		return nil, validationDomainError([]ValidationError{{"prompt", "is required"}})
	}

	system, ok := agentSystemPrompts[input.AgentType]
	if !ok {
		return nil, validationDomainError([]ValidationError{{"agent_type", "is invalid"}})
	}

	userMessage := input.Prompt
	if input.Context != "" {
		userMessage = fmt.Sprintf("Context: %s\n\nRequest: %s", input.Context, input.Prompt)
	}

	start := timeNow()
	reply, err := uc.Runner.RunAgent(ctx, system, userMessage)
	if err != nil {
		return nil, &TechnicalError{Code: "GENERATION_ERROR", Message: err.Error()}
	}

	return &RunAgentOutput{
		Result:           reply.Text,
		AgentName:        demoAgentNames[input.AgentType],
		TokensUsed:       reply.TokensUsed,
		ProcessingTimeMS: timeNow().Sub(start).Milliseconds(),
		Model:            reply.Model,
	}, nil
}
