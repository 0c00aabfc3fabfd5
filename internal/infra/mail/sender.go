package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/xavierca1/agents-outreach/internal/infra/queue"
	"gopkg.in/gomail.v2"
)

const hotLeadAlertTmpl = `
<h2>🔥 Lead quente capturado</h2>
<p><b>{{.Name}}</b> ({{.Email}}) - {{.Company}}</p>
<p>Problema: {{.Problem}}</p>
<p>Agente pedido: {{.AgentType}} | Score: {{.Score}} | MRR estimado: ${{.EstimatedMRR}}</p>
<p>SLA: contato em até 2 horas.</p>
`

func NewEmailSender(host string, port int, user, password, salesTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		SalesTo:  salesTo,
	}
}

func (s *EmailSender) SendHotLeadAlert(payload queue.HotLeadPayload) error {
	data := HotLeadAlertData{
		Name:         payload.Name,
		Email:        payload.Email,
		Company:      payload.Company,
		Problem:      payload.Problem,
		AgentType:    payload.AgentType,
		Score:        payload.Score,
		EstimatedMRR: payload.EstimatedMRR,
	}

	t, err := template.New("hot-lead").Parse(hotLeadAlertTmpl)
	if err != nil {
		return fmt.Errorf("erro ao montar template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@agents-outreach.io")
	m.SetHeader("To", s.SalesTo)
	m.SetHeader("Subject", fmt.Sprintf("🔥 Lead quente: %s (score %d)", payload.Company, payload.Score))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
