package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"isms-lab/internal/config"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// VAPTHandler handles the security assessment stage.
type VAPTHandler struct {
	store  *workflow.Store
	config *config.Config
	logger *logger.Logger
}

// NewVAPTHandler creates a new VAPTHandler
func NewVAPTHandler(store *workflow.Store, cfg *config.Config, log *logger.Logger) *VAPTHandler {
	return &VAPTHandler{
		store:  store,
		config: cfg,
		logger: log.WithComponent("vapt-handler"),
	}
}

// List handles GET /api/v1/vapt
func (h *VAPTHandler) List(w http.ResponseWriter, r *http.Request) {
	assessments := h.store.VAPT()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": assessments,
		"total":       len(assessments),
	})
}

// Update handles PUT /api/v1/vapt/{id}
func (h *VAPTHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}

	var patch workflow.VAPTPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.store.UpdateVAPT(id, patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "assessment not found")
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// Upload handles POST /api/v1/vapt/{id}/upload
func (h *VAPTHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}

	name, size, err := uploadedFileMeta(r, h.config.Upload.MaxFileSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.store.AttachVAPTReport(id, name, size)
	if err != nil {
		respondError(w, http.StatusNotFound, "assessment not found")
		return
	}

	h.logger.Info().
		Str("type", v.Type).
		Str("file", name).
		Msg("assessment report recorded")

	respondJSON(w, http.StatusOK, v)
}

// Complete handles POST /api/v1/vapt/complete
func (h *VAPTHandler) Complete(w http.ResponseWriter, r *http.Request) {
	completeStage(w, r, h.store, workflow.StageVAPT)
}
