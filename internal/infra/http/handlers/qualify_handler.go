package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/agents-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

type QualifyHandler struct {
	QualifyUC *usecase.QualifyUseCase
}

func NewQualifyHandler(uc *usecase.QualifyUseCase) *QualifyHandler {
	return &QualifyHandler{QualifyUC: uc}
}

// CreateLead devolve o lead junto com toda a cópia pronta pro operador
// (demo URL, mensagem de WhatsApp, proposta).
func (h *QualifyHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateQualifyLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.QualifyUC.CreateLead(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *QualifyHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.QualifyUC.GetLead(r.Context(), id)
	if err != nil {
		http.Error(w, "Lead not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type paymentLinkRequest struct {
	LeadID string `json:"lead_id"`
}

// CreatePaymentLink: falha do Stripe vira link ausente na resposta, nunca
// erro HTTP.
func (h *QualifyHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	var req paymentLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	lead, err := h.QualifyUC.GetLead(r.Context(), req.LeadID)
	if err != nil {
		http.Error(w, "Lead not found", http.StatusNotFound)
		return
	}

	paymentURL := h.QualifyUC.CreatePaymentLink(r.Context(), lead)
	if paymentURL == "" {
		middleware.RecordIntegrationError("stripe")
	}

	demoURL := h.QualifyUC.DemoURL(lead.ID)

	writeJSON(w, http.StatusOK, usecase.PaymentLinkOutput{
		PaymentURL:   paymentURL,
		ProposalText: h.QualifyUC.ProposalText(lead, demoURL, paymentURL),
	})
}
