package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"isms-lab/internal/export"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// RisksHandler handles the risk register stage.
type RisksHandler struct {
	store    *workflow.Store
	exporter *export.Exporter
	logger   *logger.Logger
}

// NewRisksHandler creates a new RisksHandler
func NewRisksHandler(store *workflow.Store, exp *export.Exporter, log *logger.Logger) *RisksHandler {
	return &RisksHandler{
		store:    store,
		exporter: exp,
		logger:   log.WithComponent("risks-handler"),
	}
}

// List handles GET /api/v1/risks
func (h *RisksHandler) List(w http.ResponseWriter, r *http.Request) {
	risks := h.store.Risks()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"risks": risks,
		"total": len(risks),
	})
}

// Create handles POST /api/v1/risks - appends a blank entry
func (h *RisksHandler) Create(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, h.store.AddRisk())
}

// Update handles PUT /api/v1/risks/{id}
func (h *RisksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid risk id")
		return
	}

	var patch workflow.RiskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.store.UpdateRisk(id, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "risk not found")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/v1/risks/{id}
func (h *RisksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid risk id")
		return
	}
	if err := h.store.RemoveRisk(id); err != nil {
		respondError(w, http.StatusNotFound, "risk not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/v1/risks/export
func (h *RisksHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := h.exporter.RiskWorkbook(h.store.Risks())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build risk workbook")
		respondError(w, http.StatusInternalServerError, "failed to build risk workbook")
		return
	}
	if err := respondWorkbook(w, f, "ISMS_Risk_Register.xlsx"); err != nil {
		h.logger.Error().Err(err).Msg("failed to write risk workbook")
	}
}

// Complete handles POST /api/v1/risks/complete
func (h *RisksHandler) Complete(w http.ResponseWriter, r *http.Request) {
	completeStage(w, r, h.store, workflow.StageRisk)
}
