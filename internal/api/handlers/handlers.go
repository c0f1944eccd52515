package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xuri/excelize/v2"

	"isms-lab/internal/config"
	"isms-lab/internal/export"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health        *HealthHandler
	Questionnaire *QuestionnaireHandler
	Scoping       *ScopingHandler
	Gap           *GapHandler
	Risks         *RisksHandler
	Policies      *PoliciesHandler
	VAPT          *VAPTHandler
	Audit         *AuditHandler
	Workflow      *WorkflowHandler
	Report        *ReportHandler
}

// Dependencies holds dependencies for handlers
type Dependencies struct {
	Store    *workflow.Store
	Exporter *export.Exporter
	Config   *config.Config
	Logger   *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(deps.Config, deps.Logger),
		Questionnaire: NewQuestionnaireHandler(deps.Logger),
		Scoping:       NewScopingHandler(deps.Store, deps.Logger),
		Gap:           NewGapHandler(deps.Store, deps.Exporter, deps.Config, deps.Logger),
		Risks:         NewRisksHandler(deps.Store, deps.Exporter, deps.Logger),
		Policies:      NewPoliciesHandler(deps.Store, deps.Exporter, deps.Config, deps.Logger),
		VAPT:          NewVAPTHandler(deps.Store, deps.Config, deps.Logger),
		Audit:         NewAuditHandler(deps.Store, deps.Config, deps.Logger),
		Workflow:      NewWorkflowHandler(deps.Store, deps.Logger),
		Report:        NewReportHandler(deps.Store, deps.Exporter, deps.Logger),
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondWorkbook streams an xlsx workbook as a download.
func respondWorkbook(w http.ResponseWriter, f *excelize.File, filename string) error {
	defer f.Close()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return f.Write(w)
}

// completionRequest is the body of every stage completion endpoint.
type completionRequest struct {
	Override bool `json:"override"`
}

// completeStage runs a stage gate and writes the outcome. Re-posting
// with override set accepts a needs-confirmation result.
func completeStage(w http.ResponseWriter, r *http.Request, store *workflow.Store, stage workflow.Stage) {
	var req completionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	status, err := store.CompleteStage(stage, req.Override)
	if err != nil {
		if errors.Is(err, workflow.ErrStageIncomplete) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// uploadedFileMeta extracts the uploaded document's metadata from a
// multipart request. The document itself is discarded; only name and
// size are recorded.
func uploadedFileMeta(r *http.Request, maxSize int64) (string, int64, error) {
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return "", 0, errors.New("invalid multipart form")
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", 0, errors.New("file field is required")
	}
	file.Close()
	if maxSize > 0 && header.Size > maxSize {
		return "", 0, errors.New("file too large")
	}
	return header.Filename, header.Size, nil
}
