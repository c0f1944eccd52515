package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"isms-lab/internal/config"
	"isms-lab/internal/domain/models"
	"isms-lab/internal/export"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// GapHandler handles the gap assessment stage.
type GapHandler struct {
	store    *workflow.Store
	exporter *export.Exporter
	config   *config.Config
	logger   *logger.Logger
}

// NewGapHandler creates a new GapHandler
func NewGapHandler(store *workflow.Store, exp *export.Exporter, cfg *config.Config, log *logger.Logger) *GapHandler {
	return &GapHandler{
		store:    store,
		exporter: exp,
		config:   cfg,
		logger:   log.WithComponent("gap-handler"),
	}
}

// List handles GET /api/v1/gap
func (h *GapHandler) List(w http.ResponseWriter, r *http.Request) {
	assessments := h.store.Assessments()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"assessments": assessments,
		"total":       len(assessments),
	})
}

// Get handles GET /api/v1/gap/{controlID}
func (h *GapHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.store.Assessment(chi.URLParam(r, "controlID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "assessment not found")
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// Update handles PUT /api/v1/gap/{controlID}
func (h *GapHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch workflow.AssessmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.store.UpdateAssessment(chi.URLParam(r, "controlID"), patch)
	if err != nil {
		respondError(w, http.StatusNotFound, "assessment not found")
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// Answers handles PUT /api/v1/gap/{controlID}/answers
func (h *GapHandler) Answers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.store.SetAnswers(chi.URLParam(r, "controlID"), req.Answers)
	if err != nil {
		respondError(w, http.StatusNotFound, "assessment not found")
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// Evidence handles POST /api/v1/gap/{controlID}/evidence - records
// uploaded evidence file metadata
func (h *GapHandler) Evidence(w http.ResponseWriter, r *http.Request) {
	name, size, err := uploadedFileMeta(r, h.config.Upload.MaxFileSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.store.AddEvidenceFiles(chi.URLParam(r, "controlID"),
		[]models.EvidenceFile{{Name: name, Size: size}})
	if err != nil {
		respondError(w, http.StatusNotFound, "assessment not found")
		return
	}

	h.logger.Info().
		Str("control", a.ControlID).
		Str("file", name).
		Msg("evidence file recorded")

	respondJSON(w, http.StatusOK, a)
}

// EvidenceTemplate handles GET /api/v1/gap/evidence-template
func (h *GapHandler) EvidenceTemplate(w http.ResponseWriter, r *http.Request) {
	f, err := h.exporter.EvidenceTemplate()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build evidence template")
		respondError(w, http.StatusInternalServerError, "failed to build evidence template")
		return
	}
	if err := respondWorkbook(w, f, "ISMS_Evidence_Template.xlsx"); err != nil {
		h.logger.Error().Err(err).Msg("failed to write evidence template")
	}
}

// ImportEvidence handles POST /api/v1/gap/evidence-template - parses a
// completed template and merges it into the assessments
func (h *GapHandler) ImportEvidence(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.config.Upload.MaxFileSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	updates, err := h.exporter.ParseEvidenceTemplate(file)
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to parse evidence template")
		respondError(w, http.StatusBadRequest, "failed to parse evidence template")
		return
	}

	applied := h.store.ApplyEvidence(updates)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rows":    len(updates),
		"applied": applied,
	})
}

// Export handles GET /api/v1/gap/export
func (h *GapHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := h.exporter.GapWorkbook(h.store.Assessments(), h.store.Profile())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build gap workbook")
		respondError(w, http.StatusInternalServerError, "failed to build gap workbook")
		return
	}
	if err := respondWorkbook(w, f, "ISMS_Gap_Assessment.xlsx"); err != nil {
		h.logger.Error().Err(err).Msg("failed to write gap workbook")
	}
}

// Complete handles POST /api/v1/gap/complete
func (h *GapHandler) Complete(w http.ResponseWriter, r *http.Request) {
	completeStage(w, r, h.store, workflow.StageGap)
}
