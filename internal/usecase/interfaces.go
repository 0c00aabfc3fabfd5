package usecase

import (
	"context"

	"github.com/xavierca1/agents-outreach/internal/infra/integration/anthropic"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/stripe"
	"github.com/xavierca1/agents-outreach/internal/infra/queue"
)

// TextGenerator é a capacidade externa de geração de texto: um prompt, uma
// resposta, sem streaming nem estado multi-turn. Latência sem garantia,
// at-most-once, sem retry aqui dentro.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AgentRunner executa uma rodada de agente da demo: system prompt fixo mais
// a mensagem do visitante, com metadados de uso na volta.
type AgentRunner interface {
	RunAgent(ctx context.Context, system, prompt string) (*anthropic.AgentReply, error)
}

type PaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, input stripe.PaymentLinkInput) (string, error)
}

type QueueProducerInterface interface {
	PublishHotLead(ctx context.Context, payload queue.HotLeadPayload) error
}
