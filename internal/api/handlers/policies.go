package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"isms-lab/internal/config"
	"isms-lab/internal/export"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// PoliciesHandler handles the policy register stage.
type PoliciesHandler struct {
	store    *workflow.Store
	exporter *export.Exporter
	config   *config.Config
	logger   *logger.Logger
}

// NewPoliciesHandler creates a new PoliciesHandler
func NewPoliciesHandler(store *workflow.Store, exp *export.Exporter, cfg *config.Config, log *logger.Logger) *PoliciesHandler {
	return &PoliciesHandler{
		store:    store,
		exporter: exp,
		config:   cfg,
		logger:   log.WithComponent("policies-handler"),
	}
}

// List handles GET /api/v1/policies
func (h *PoliciesHandler) List(w http.ResponseWriter, r *http.Request) {
	policies := h.store.Policies()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"policies": policies,
		"total":    len(policies),
	})
}

// Create handles POST /api/v1/policies - adds a custom policy
func (h *PoliciesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respondJSON(w, http.StatusCreated, h.store.AddPolicy(req.Name))
}

// Update handles PUT /api/v1/policies/{id}
func (h *PoliciesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid policy id")
		return
	}

	var patch workflow.PolicyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.store.UpdatePolicy(id, patch)
	if err != nil {
		if errors.Is(err, workflow.ErrPolicyRequired) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusNotFound, "policy not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/v1/policies/{id}
func (h *PoliciesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid policy id")
		return
	}
	if err := h.store.RemovePolicy(id); err != nil {
		if errors.Is(err, workflow.ErrPolicyRequired) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusNotFound, "policy not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Upload handles POST /api/v1/policies/{id}/upload
func (h *PoliciesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid policy id")
		return
	}

	name, size, err := uploadedFileMeta(r, h.config.Upload.MaxFileSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.store.AttachPolicyFile(id, name, size)
	if err != nil {
		respondError(w, http.StatusNotFound, "policy not found")
		return
	}

	h.logger.Info().
		Str("policy", p.Name).
		Str("file", name).
		Msg("policy document recorded")

	respondJSON(w, http.StatusOK, p)
}

// Export handles GET /api/v1/policies/export - the register as CSV
func (h *PoliciesHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="ISMS_Policy_Register.csv"`)
	if err := h.exporter.PolicyCSV(w, h.store.Policies()); err != nil {
		h.logger.Error().Err(err).Msg("failed to write policy register")
	}
}

// Complete handles POST /api/v1/policies/complete
func (h *PoliciesHandler) Complete(w http.ResponseWriter, r *http.Request) {
	completeStage(w, r, h.store, workflow.StagePolicy)
}
