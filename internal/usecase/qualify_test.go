package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/stripe"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

type stubQualifyRepo struct {
	created *entity.QualifyLead
}

func (s *stubQualifyRepo) Create(_ context.Context, lead *entity.QualifyLead) error {
	s.created = lead
	return nil
}

func (s *stubQualifyRepo) FindByID(_ context.Context, id string) (*entity.QualifyLead, error) {
	if s.created == nil || s.created.ID != id {
		return nil, entity.ErrLeadNotFound
	}
	return s.created, nil
}

func validQualifyInput() usecase.CreateQualifyLeadInput {
	return usecase.CreateQualifyLeadInput{
		CompanyName:     "Dental Sonrisa",
		ContactName:     "Carlos",
		Industry:        "odontología",
		MainProblem:     "Pierden pacientes por no responder WhatsApp",
		CompanySize:     entity.Team2To10,
		CurrentSolution: "una recepcionista",
		AgentType:       entity.AgentSupport,
		Price:           499,
	}
}

func TestQualifyCreateLeadBuildsCopy(t *testing.T) {
	repo := &stubQualifyRepo{}
	uc := usecase.NewQualifyUseCase(repo, nil, "https://app.example.com")

	output, err := uc.CreateLead(context.Background(), validQualifyInput())

	assert.NoError(t, err)
	assert.NotNil(t, repo.created)
	assert.Equal(t, "https://app.example.com/demo/"+output.Lead.ID, output.DemoURL)
	// O problema entra em minúsculas no meio da frase
	assert.Contains(t, output.WhatsAppMessage, "pierden pacientes por no responder whatsapp")
	assert.Contains(t, output.WhatsAppMessage, "Hola Carlos")
	assert.Contains(t, output.WhatsAppMessage, "tu equipo")
	assert.Contains(t, output.ProposalText, "Inversión: $499 USD")
	assert.NotContains(t, output.ProposalText, "Link de pago")
}

func TestQualifyCreateLeadValidation(t *testing.T) {
	uc := usecase.NewQualifyUseCase(&stubQualifyRepo{}, nil, "https://app.example.com")

	input := validQualifyInput()
	input.CompanyName = ""
	_, err := uc.CreateLead(context.Background(), input)

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}

func TestQualifyUnknownSizeFallsBackToSolo(t *testing.T) {
	uc := usecase.NewQualifyUseCase(&stubQualifyRepo{}, nil, "https://app.example.com")

	input := validQualifyInput()
	input.CompanySize = "tamanho_inventado"
	output, err := uc.CreateLead(context.Background(), input)

	assert.NoError(t, err)
	assert.Contains(t, output.WhatsAppMessage, "tu negocio")
}

func TestQualifyProposalWithPaymentLink(t *testing.T) {
	uc := usecase.NewQualifyUseCase(&stubQualifyRepo{}, nil, "https://app.example.com")
	lead := entity.NewQualifyLead("Dental Sonrisa", "Carlos", "odontología", "p", entity.Team2To10, "", entity.AgentSupport, 499)

	text := uc.ProposalText(lead, uc.DemoURL(lead.ID), "https://buy.stripe.com/abc")

	assert.True(t, strings.HasSuffix(text, "Link de pago: https://buy.stripe.com/abc"))
}

func TestQualifyCreatePaymentLink(t *testing.T) {
	gateway := new(MockPaymentGateway)
	gateway.On("CreatePaymentLink", mock.Anything, mock.MatchedBy(func(input stripe.PaymentLinkInput) bool {
		return input.AmountCents == 49900 &&
			input.Currency == "usd" &&
			input.Metadata["company"] == "Dental Sonrisa"
	})).Return("https://buy.stripe.com/abc", nil)

	uc := usecase.NewQualifyUseCase(&stubQualifyRepo{}, gateway, "https://app.example.com")
	lead := entity.NewQualifyLead("Dental Sonrisa", "Carlos", "odontología", "p", entity.Team2To10, "", entity.AgentSupport, 499)

	url := uc.CreatePaymentLink(context.Background(), lead)

	assert.Equal(t, "https://buy.stripe.com/abc", url)
	gateway.AssertExpectations(t)
}

// Stripe fora do ar não derruba a proposta: o link só fica vazio.
func TestQualifyPaymentLinkFailureReturnsEmpty(t *testing.T) {
	gateway := new(MockPaymentGateway)
	gateway.On("CreatePaymentLink", mock.Anything, mock.Anything).Return("", errors.New("stripe: 500"))

	uc := usecase.NewQualifyUseCase(&stubQualifyRepo{}, gateway, "https://app.example.com")
	lead := entity.NewQualifyLead("Dental Sonrisa", "Carlos", "odontología", "p", entity.Team2To10, "", entity.AgentSupport, 499)

	url := uc.CreatePaymentLink(context.Background(), lead)

	assert.Equal(t, "", url)
}

func TestQualifyGetLeadNotFound(t *testing.T) {
	uc := usecase.NewQualifyUseCase(&stubQualifyRepo{}, nil, "https://app.example.com")

	_, err := uc.GetLead(context.Background(), "nao-existe")

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}
