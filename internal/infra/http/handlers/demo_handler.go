package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/agents-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

// DemoHandler atende a página pública de demo: o prospecto testa o agente
// antes de qualquer conversa comercial.
type DemoHandler struct {
	DemoUC *usecase.DemoUseCase
}

func NewDemoHandler(uc *usecase.DemoUseCase) *DemoHandler {
	return &DemoHandler{DemoUC: uc}
}

func (h *DemoHandler) Run(w http.ResponseWriter, r *http.Request) {
	var input usecase.RunAgentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.DemoUC.RunAgent(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("anthropic")
		}
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *DemoHandler) AgentTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, usecase.DemoAgentTypes())
}
