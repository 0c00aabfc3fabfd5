package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/agents-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

// ProspectingHandler: rotas autenticadas do agente prospector. Toda rota
// aqui assume o middleware RequireAccount no router.
type ProspectingHandler struct {
	ProspectUC *usecase.ProspectUseCase
	GenerateUC *usecase.GenerateSequenceUseCase
	OutcomeUC  *usecase.OutcomeUseCase
	StatsUC    *usecase.StatsUseCase
}

func NewProspectingHandler(
	prospectUC *usecase.ProspectUseCase,
	generateUC *usecase.GenerateSequenceUseCase,
	outcomeUC *usecase.OutcomeUseCase,
	statsUC *usecase.StatsUseCase,
) *ProspectingHandler {
	return &ProspectingHandler{
		ProspectUC: prospectUC,
		GenerateUC: generateUC,
		OutcomeUC:  outcomeUC,
		StatsUC:    statsUC,
	}
}

func (h *ProspectingHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())

	prospects, err := h.ProspectUC.List(r.Context(), accountID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prospects)
}

func (h *ProspectingHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())

	var input usecase.CreateProspectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	prospect, err := h.ProspectUC.Create(r.Context(), accountID, input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, prospect)
}

func (h *ProspectingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.ProspectUC.Delete(r.Context(), accountID, id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Generate cria (ou recria) a sequência completa de 5 mensagens.
func (h *ProspectingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())
	id := chi.URLParam(r, "id")

	output, err := h.GenerateUC.Execute(r.Context(), accountID, id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordSequenceGenerated()
	writeJSON(w, http.StatusOK, output)
}

func (h *ProspectingHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.OutcomeUC.MarkSent(r.Context(), accountID, id); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type outcomeRequest struct {
	Outcome string `json:"outcome"`
	Note    string `json:"note"`
}

// MarkOutcome fecha o feedback loop que alimenta gerações futuras.
func (h *ProspectingHandler) MarkOutcome(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())
	id := chi.URLParam(r, "id")

	var req outcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	attempt, err := h.OutcomeUC.MarkOutcome(r.Context(), accountID, id, req.Outcome, req.Note)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, attempt)
}

func (h *ProspectingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())

	stats, err := h.StatsUC.Execute(r.Context(), accountID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeUsecaseError(w http.ResponseWriter, err error) {
	if de, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		if de.Code == "FORBIDDEN" {
			status = http.StatusForbidden
		}
		http.Error(w, de.Message, status)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
