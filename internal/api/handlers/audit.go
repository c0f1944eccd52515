package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"isms-lab/internal/config"
	"isms-lab/internal/domain/models"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// AuditHandler handles the internal audit stage.
type AuditHandler struct {
	store  *workflow.Store
	config *config.Config
	logger *logger.Logger
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(store *workflow.Store, cfg *config.Config, log *logger.Logger) *AuditHandler {
	return &AuditHandler{
		store:  store,
		config: cfg,
		logger: log.WithComponent("audit-handler"),
	}
}

// Get handles GET /api/v1/audit
func (h *AuditHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Audit())
}

// Update handles PUT /api/v1/audit
func (h *AuditHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch workflow.AuditPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	respondJSON(w, http.StatusOK, h.store.UpdateAudit(patch))
}

// findingRequest is the body for adding an itemized finding.
type findingRequest struct {
	Control        string                 `json:"control"`
	Finding        string                 `json:"finding"`
	Severity       models.FindingSeverity `json:"severity"`
	Recommendation string                 `json:"recommendation"`
}

// AddFinding handles POST /api/v1/audit/findings
func (h *AuditHandler) AddFinding(w http.ResponseWriter, r *http.Request) {
	var req findingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Finding == "" {
		respondError(w, http.StatusBadRequest, "finding is required")
		return
	}

	f := h.store.AddFinding(req.Control, req.Finding, req.Severity, req.Recommendation)
	respondJSON(w, http.StatusCreated, f)
}

// DeleteFinding handles DELETE /api/v1/audit/findings/{id}
func (h *AuditHandler) DeleteFinding(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid finding id")
		return
	}
	if err := h.store.RemoveFinding(id); err != nil {
		respondError(w, http.StatusNotFound, "finding not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Upload handles POST /api/v1/audit/upload
func (h *AuditHandler) Upload(w http.ResponseWriter, r *http.Request) {
	name, size, err := uploadedFileMeta(r, h.config.Upload.MaxFileSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	audit := h.store.AttachAuditReport(name, size)

	h.logger.Info().Str("file", name).Msg("audit report recorded")
	respondJSON(w, http.StatusOK, audit)
}

// Complete handles POST /api/v1/audit/complete
func (h *AuditHandler) Complete(w http.ResponseWriter, r *http.Request) {
	completeStage(w, r, h.store, workflow.StageAudit)
}
