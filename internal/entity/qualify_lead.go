package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

// QualifyLead é o lead da ferramenta manual de qualificação. Caminho
// distinto do formulário público: aqui não há scoring, o operador já
// qualificou na chamada.
type QualifyLead struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"company_name"`
	ContactName     string    `json:"contact_name"`
	Industry        string    `json:"industry"`
	MainProblem     string    `json:"main_problem"`
	CompanySize     string    `json:"company_size"` // solo, 2_10, 11_50, over_50
	CurrentSolution string    `json:"current_solution"`
	AgentType       string    `json:"agent_type"` // support, analytics, content
	Price           int       `json:"price"`      // USD, pago único
	CreatedAt       time.Time `json:"created_at"`
}

func NewQualifyLead(companyName, contactName, industry, mainProblem, companySize, currentSolution, agentType string, price int) *QualifyLead {
	return &QualifyLead{
		ID:              uuid.New().String(),
		CompanyName:     companyName,
		ContactName:     contactName,
		Industry:        industry,
		MainProblem:     mainProblem,
		CompanySize:     companySize,
		CurrentSolution: currentSolution,
		AgentType:       agentType,
		Price:           price,
		CreatedAt:       time.Now(),
	}
}

type QualifyLeadRepositoryInterface interface {
	Create(ctx context.Context, lead *QualifyLead) error
	FindByID(ctx context.Context, id string) (*QualifyLead, error)
}
