package entity

import (
	"context"
	"time"
)

// Enums do formulário de contato. Valores desconhecidos caem no branch zero
// da pontuação (ver scoring.go).
const (
	UrgencyThisWeek  = "this_week"
	UrgencyThisMonth = "this_month"
	UrgencyExploring = "exploring"

	BudgetOver1000 = "over_1000"
	Budget500To1K  = "500_1000"
	Budget200To500 = "200_500"
	BudgetUnder200 = "under_200"

	TeamOver50 = "over_50"
	Team11To50 = "11_50"
	Team2To10  = "2_10"
	TeamSolo   = "solo"

	AgentSupport   = "support"
	AgentAnalytics = "analytics"
	AgentContent   = "content"
	AgentBundle    = "bundle"

	TierHot  = "hot"
	TierWarm = "warm"
	TierCold = "cold"
)

// LeadSubmission é o que chega do formulário público. Imutável após o envio.
type LeadSubmission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	Problem   string `json:"problem"`
	AgentType string `json:"agent_type"`
	TeamSize  string `json:"team_size"`
	Budget    string `json:"budget"`
	Urgency   string `json:"urgency"`
}

// ScoredLead é a submissão já pontuada. Criado uma vez, nunca mutado,
// armazenado em ordem de chegada.
type ScoredLead struct {
	LeadSubmission
	Score        int       `json:"score"`
	Tier         string    `json:"tier"` // hot, warm, cold
	EstimatedMRR int       `json:"estimated_mrr"`
	ReceivedAt   time.Time `json:"received_at"`
}

type ScoredLeadRepositoryInterface interface {
	Append(ctx context.Context, lead *ScoredLead) error
	List(ctx context.Context) ([]*ScoredLead, error)
	CountByTier(ctx context.Context, tier string) (int, error)
}
