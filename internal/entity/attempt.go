package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ChannelEmail    = "email"
	ChannelLinkedin = "linkedin"

	AnglePain        = "pain"
	AngleSocialProof = "social_proof"
	AngleValueAdd    = "value_add"
	AngleUrgency     = "urgency"
	AngleBreakup     = "breakup"

	OutcomePositive      = "POSITIVE"
	OutcomeNeutral       = "NEUTRAL"
	OutcomeNegative      = "NEGATIVE"
	OutcomeNoReply       = "NO_REPLY"
	OutcomeMeetingBooked = "MEETING_BOOKED"
)

// SequenceLength: toda geração produz exatamente 5 mensagens (ou 1 via
// fallback, que ainda assim substitui o conjunto inteiro).
const SequenceLength = 5

var ValidOutcomes = map[string]bool{
	OutcomePositive:      true,
	OutcomeNeutral:       true,
	OutcomeNegative:      true,
	OutcomeNoReply:       true,
	OutcomeMeetingBooked: true,
}

// outcomeStatusMap: resultado do intento -> novo status do prospecto.
// Last-write-wins entre intentos do mesmo prospecto.
var outcomeStatusMap = map[string]string{
	OutcomePositive:      StatusReplied,
	OutcomeNeutral:       StatusReplied,
	OutcomeMeetingBooked: StatusMeetingBooked,
	OutcomeNegative:      StatusDead,
	OutcomeNoReply:       StatusInProgress,
}

// StatusForOutcome é função total: outcome desconhecido vira IN_PROGRESS
// explicitamente, não por fallthrough silencioso.
func StatusForOutcome(outcome string) string {
	if s, ok := outcomeStatusMap[outcome]; ok {
		return s
	}
	return StatusInProgress
}

// OutreachAttempt é uma mensagem da sequência de 5. Invariante: Outcome só
// é preenchido junto com (ou depois de) SentAt.
type OutreachAttempt struct {
	ID          string     `json:"id"`
	ProspectID  string     `json:"prospect_id"`
	Sequence    int        `json:"sequence"` // 1..5
	Channel     string     `json:"channel"`  // email, linkedin
	Angle       string     `json:"angle"`
	Subject     string     `json:"subject,omitempty"` // vazio em linkedin
	Message     string     `json:"message"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	Outcome     string     `json:"outcome,omitempty"`
	OutcomeNote string     `json:"outcome_note,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewOutreachAttempt(prospectID string, sequence int, channel, angle, subject, message string) *OutreachAttempt {
	return &OutreachAttempt{
		ID:         uuid.New().String(),
		ProspectID: prospectID,
		Sequence:   sequence,
		Channel:    channel,
		Angle:      angle,
		Subject:    subject,
		Message:    message,
		CreatedAt:  time.Now(),
	}
}

// AttemptOutcomeRow é a projeção usada pelas stats (só o que a agregação precisa).
type AttemptOutcomeRow struct {
	Angle   string
	Outcome string
}

type AttemptRepositoryInterface interface {
	CreateBatch(ctx context.Context, attempts []*OutreachAttempt) error
	DeleteByProspect(ctx context.Context, prospectID string) error
	FindByID(ctx context.Context, id string) (*OutreachAttempt, error)
	ListByProspect(ctx context.Context, prospectID string) ([]*OutreachAttempt, error)
	// FindPositiveByAccount: até limit intentos com outcome POSITIVE da
	// conta, mais recentes primeiro. Alimenta os exemplares do prompt.
	FindPositiveByAccount(ctx context.Context, accountID string, limit int) ([]*PositiveExemplar, error)
	ListOutcomesByAccount(ctx context.Context, accountID string) ([]AttemptOutcomeRow, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	UpdateOutcome(ctx context.Context, a *OutreachAttempt) error
}

// PositiveExemplar: intento positivo + contexto do prospecto dono, para o
// feedback loop da geração.
type PositiveExemplar struct {
	Angle    string
	Sequence int
	Message  string
	Industry string
	Role     string
}
