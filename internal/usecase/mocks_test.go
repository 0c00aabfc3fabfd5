package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/anthropic"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/stripe"
	"github.com/xavierca1/agents-outreach/internal/infra/queue"
)

// MockProspectRepository
type MockProspectRepository struct {
	mock.Mock
}

func (m *MockProspectRepository) Create(ctx context.Context, p *entity.Prospect) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProspectRepository) FindByID(ctx context.Context, id string) (*entity.Prospect, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Prospect, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Prospect), args.Error(1)
}

func (m *MockProspectRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProspectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProspectRepository) CountByAccount(ctx context.Context, accountID string, statuses ...string) (int, error) {
	callArgs := []interface{}{ctx, accountID}
	for _, s := range statuses {
		callArgs = append(callArgs, s)
	}
	args := m.Called(callArgs...)
	return args.Int(0), args.Error(1)
}

// MockAttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateBatch(ctx context.Context, attempts []*entity.OutreachAttempt) error {
	args := m.Called(ctx, attempts)
	return args.Error(0)
}

func (m *MockAttemptRepository) DeleteByProspect(ctx context.Context, prospectID string) error {
	args := m.Called(ctx, prospectID)
	return args.Error(0)
}

func (m *MockAttemptRepository) FindByID(ctx context.Context, id string) (*entity.OutreachAttempt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.OutreachAttempt), args.Error(1)
}

func (m *MockAttemptRepository) ListByProspect(ctx context.Context, prospectID string) ([]*entity.OutreachAttempt, error) {
	args := m.Called(ctx, prospectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.OutreachAttempt), args.Error(1)
}

func (m *MockAttemptRepository) FindPositiveByAccount(ctx context.Context, accountID string, limit int) ([]*entity.PositiveExemplar, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PositiveExemplar), args.Error(1)
}

func (m *MockAttemptRepository) ListOutcomesByAccount(ctx context.Context, accountID string) ([]entity.AttemptOutcomeRow, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AttemptOutcomeRow), args.Error(1)
}

func (m *MockAttemptRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockAttemptRepository) UpdateOutcome(ctx context.Context, a *entity.OutreachAttempt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

// MockScoredLeadRepository
type MockScoredLeadRepository struct {
	mock.Mock
}

func (m *MockScoredLeadRepository) Append(ctx context.Context, lead *entity.ScoredLead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockScoredLeadRepository) List(ctx context.Context) ([]*entity.ScoredLead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ScoredLead), args.Error(1)
}

func (m *MockScoredLeadRepository) CountByTier(ctx context.Context, tier string) (int, error) {
	args := m.Called(ctx, tier)
	return args.Int(0), args.Error(1)
}

// MockTextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockAgentRunner
type MockAgentRunner struct {
	mock.Mock
}

func (m *MockAgentRunner) RunAgent(ctx context.Context, system, prompt string) (*anthropic.AgentReply, error) {
	args := m.Called(ctx, system, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.AgentReply), args.Error(1)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePaymentLink(ctx context.Context, input stripe.PaymentLinkInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// fakeProducer captura o publish assíncrono num canal para o teste esperar.
type fakeProducer struct {
	published chan queue.HotLeadPayload
}

func newFakeProducer() *fakeProducer {
	return &fakeProducer{published: make(chan queue.HotLeadPayload, 1)}
}

func (f *fakeProducer) PublishHotLead(_ context.Context, payload queue.HotLeadPayload) error {
	f.published <- payload
	return nil
}
