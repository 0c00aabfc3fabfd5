package usecase

import "github.com/xavierca1/agents-outreach/internal/entity"

type CaptureLeadInput struct {
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

type CaptureLeadOutput struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Tier     string `json:"tier"`
	NextStep string `json:"next_step"`
}

type CreateProspectInput struct {
	Company     string `json:"company"`
	ContactName string `json:"contact_name"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Linkedin    string `json:"linkedin"`
	Industry    string `json:"industry"`
	PainPoints  string `json:"pain_points"`
	Context     string `json:"context"`
}

type CreateQualifyLeadInput struct {
	CompanyName     string `json:"company_name"`
	ContactName     string `json:"contact_name"`
	Industry        string `json:"industry"`
	MainProblem     string `json:"main_problem"`
	CompanySize     string `json:"company_size"`
	CurrentSolution string `json:"current_solution"`
	AgentType       string `json:"agent_type"`
	Price           int    `json:"price"`
}

type CreateQualifyLeadOutput struct {
	Lead            *entity.QualifyLead `json:"lead"`
	DemoURL         string              `json:"demo_url"`
	WhatsAppMessage string              `json:"whatsapp_message"`
	ProposalText    string              `json:"proposal_text"`
}

type PaymentLinkOutput struct {
	PaymentURL   string `json:"payment_url,omitempty"`
	ProposalText string `json:"proposal_text"`
}

type GenerateSequenceOutput struct {
	Prospect *entity.Prospect          `json:"prospect"`
	Sequence []*entity.OutreachAttempt `json:"sequence"`
}

type LeadOverviewOutput struct {
	Total int                  `json:"total"`
	Hot   int                  `json:"hot"`
	Warm  int                  `json:"warm"`
	Cold  int                  `json:"cold"`
	Leads []*entity.ScoredLead `json:"leads"`
}

type RunAgentInput struct {
	Prompt    string `json:"prompt"`
	AgentType string `json:"agent_type"`
	Context   string `json:"context,omitempty"`
}

type RunAgentOutput struct {
	Result           string `json:"result"`
	AgentName        string `json:"agent_name"`
	TokensUsed       int    `json:"tokens_used"`
	ProcessingTimeMS int64  `json:"processing_time_ms"`
	Model            string `json:"model"`
}

type AgentTypeInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UseCase     string `json:"use_case"`
}

type AngleRate struct {
	Angle string `json:"angle"`
	Rate  int    `json:"rate"` // % de outcomes positivos
}

type StatsOutput struct {
	Total      int         `json:"total"`
	Replied    int         `json:"replied"`
	Converted  int         `json:"converted"`
	ReplyRate  int         `json:"reply_rate"`
	BestAngles []AngleRate `json:"best_angles"`
}
