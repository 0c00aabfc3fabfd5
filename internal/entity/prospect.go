package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status do prospecto. Máquina de estados:
// NEW -> SEQUENCE_GENERATED -> IN_PROGRESS -> {REPLIED, MEETING_BOOKED, DEAD}
// CONVERTED só é atingido por transição externa (fechamento manual).
const (
	StatusNew               = "NEW"
	StatusSequenceGenerated = "SEQUENCE_GENERATED"
	StatusInProgress        = "IN_PROGRESS"
	StatusReplied           = "REPLIED"
	StatusMeetingBooked     = "MEETING_BOOKED"
	StatusDead              = "DEAD"
	StatusConverted         = "CONVERTED"
)

type Prospect struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Company     string    `json:"company"`
	ContactName string    `json:"contact_name"`
	Role        string    `json:"role,omitempty"`
	Email       string    `json:"email,omitempty"`
	Linkedin    string    `json:"linkedin,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	PainPoints  string    `json:"pain_points"`
	Context     string    `json:"context,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// Preenchido apenas em leituras que incluem os intentos (ordem: sequence asc)
	Attempts []*OutreachAttempt `json:"attempts,omitempty"`
}

// Factory
func NewProspect(accountID, company, contactName, role, email, linkedin, industry, painPoints, context string) (*Prospect, error) {
	p := &Prospect{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Company:     company,
		ContactName: contactName,
		Role:        role,
		Email:       email,
		Linkedin:    linkedin,
		Industry:    industry,
		PainPoints:  painPoints,
		Context:     context,
		Status:      StatusNew,
		CreatedAt:   time.Now(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prospect) Validate() error {
	if p.AccountID == "" {
		return errors.New("account id is required")
	}
	if p.Company == "" {
		return errors.New("company is required")
	}
	if p.ContactName == "" {
		return errors.New("contact name is required")
	}
	if p.PainPoints == "" {
		return errors.New("pain points are required")
	}
	return nil
}

// Channels devolve os canais de contato disponíveis. Default: só email.
func (p *Prospect) Channels() []string {
	var out []string
	if p.Email != "" {
		out = append(out, ChannelEmail)
	}
	if p.Linkedin != "" {
		out = append(out, ChannelLinkedin)
	}
	if len(out) == 0 {
		out = append(out, ChannelEmail)
	}
	return out
}

type ProspectRepositoryInterface interface {
	Create(ctx context.Context, p *Prospect) error
	FindByID(ctx context.Context, id string) (*Prospect, error)
	ListByAccount(ctx context.Context, accountID string) ([]*Prospect, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	CountByAccount(ctx context.Context, accountID string, statuses ...string) (int, error)
}
