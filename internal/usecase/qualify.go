package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/stripe"
)

// Textos da ferramenta de qualificação. O mercado é hispanohablante, então a
// cópia sai em espanhol, igual ao que o operador manda hoje na mão.
var companySizeLabels = map[string]string{
	entity.TeamSolo:   "tu negocio",
	entity.Team2To10:  "tu equipo",
	entity.Team11To50: "tu empresa",
	entity.TeamOver50: "su organización",
}

var agentTypeLabels = map[string]string{
	entity.AgentSupport:   "Agente de Atención al Cliente",
	entity.AgentAnalytics: "Agente de Análisis de Datos",
	entity.AgentContent:   "Agente de Contenido y Marketing",
}

type QualifyUseCase struct {
	Repo    entity.QualifyLeadRepositoryInterface
	Gateway PaymentLinkGateway
	AppURL  string
}

func NewQualifyUseCase(repo entity.QualifyLeadRepositoryInterface, gateway PaymentLinkGateway, appURL string) *QualifyUseCase {
	return &QualifyUseCase{
		Repo:    repo,
		Gateway: gateway,
		AppURL:  appURL,
	}
}

// CreateLead guarda o lead sem pontuar: este caminho é da ferramenta manual,
// o operador já qualificou. Devolve o registro com a cópia pronta.
func (uc *QualifyUseCase) CreateLead(ctx context.Context, input CreateQualifyLeadInput) (*CreateQualifyLeadOutput, error) {
	if errs := ValidateCreateQualifyLeadInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	lead := entity.NewQualifyLead(
		input.CompanyName,
		input.ContactName,
		input.Industry,
		input.MainProblem,
		input.CompanySize,
		input.CurrentSolution,
		input.AgentType,
		input.Price,
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: err.Error()}
	}

	demoURL := uc.DemoURL(lead.ID)

	return &CreateQualifyLeadOutput{
		Lead:            lead,
		DemoURL:         demoURL,
		WhatsAppMessage: uc.WhatsAppMessage(lead, demoURL),
		ProposalText:    uc.ProposalText(lead, demoURL, ""),
	}, nil
}

func (uc *QualifyUseCase) GetLead(ctx context.Context, id string) (*entity.QualifyLead, error) {
	return uc.Repo.FindByID(ctx, id)
}

// DemoURL é pura construção de string: não confere se o lead existe.
func (uc *QualifyUseCase) DemoURL(leadID string) string {
	return fmt.Sprintf("%s/demo/%s", uc.AppURL, leadID)
}

func (uc *QualifyUseCase) WhatsAppMessage(lead *entity.QualifyLead, demoURL string) string {
	sizeLabel, ok := companySizeLabels[lead.CompanySize]
	if !ok {
		sizeLabel = companySizeLabels[entity.TeamSolo]
	}

	return fmt.Sprintf(`Hola %s, armé el agente para %s.

Basándome en lo que me contaste sobre %s, lo configuré específicamente para %s en %s.

Míralo en acción aquí: %s

¿Tienes 10 min esta semana para ver cómo se integra con lo que usan hoy?`,
		lead.ContactName,
		lead.CompanyName,
		strings.ToLower(lead.MainProblem),
		sizeLabel,
		lead.Industry,
		demoURL,
	)
}

func (uc *QualifyUseCase) ProposalText(lead *entity.QualifyLead, demoURL, paymentURL string) string {
	agentLabel, ok := agentTypeLabels[lead.AgentType]
	if !ok {
		agentLabel = agentTypeLabels[entity.AgentSupport]
	}

	lines := []string{
		fmt.Sprintf("Demo personalizada para %s:", lead.CompanyName),
		demoURL,
		"",
		"Lo que incluye:",
		fmt.Sprintf("• %s configurado para %s", agentLabel, lead.Industry),
		"• Integración con sus herramientas actuales",
		"• 30 días de soporte directo incluidos",
		"• Entrega en 48 horas",
		"",
		fmt.Sprintf("Inversión: $%d USD (pago único)", lead.Price),
	}

	if paymentURL != "" {
		lines = append(lines, "", "Link de pago: "+paymentURL)
	}

	return strings.Join(lines, "\n")
}

// CreatePaymentLink delega ao Stripe. Qualquer falha vira link ausente: o
// operador manda a proposta sem link e resolve depois.
func (uc *QualifyUseCase) CreatePaymentLink(ctx context.Context, lead *entity.QualifyLead) string {
	if uc.Gateway == nil {
		return ""
	}

	url, err := uc.Gateway.CreatePaymentLink(ctx, stripe.PaymentLinkInput{
		AmountCents: lead.Price * 100,
		Currency:    "usd",
		ProductName: fmt.Sprintf("Agente IA para %s (%s)", lead.CompanyName, lead.Industry),
		RedirectURL: uc.DemoURL(lead.ID) + "?paid=1",
		Metadata: map[string]string{
			"leadId":  lead.ID,
			"company": lead.CompanyName,
		},
	})
	if err != nil {
		log.Printf("⚠️ Stripe recusou o payment link para %s: %v", lead.CompanyName, err)
		return ""
	}

	return url
}
