package handlers

import (
	"net/http"

	"isms-lab/internal/export"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// ReportHandler serves the aggregated compliance report.
type ReportHandler struct {
	store    *workflow.Store
	exporter *export.Exporter
	logger   *logger.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(store *workflow.Store, exp *export.Exporter, log *logger.Logger) *ReportHandler {
	return &ReportHandler{
		store:    store,
		exporter: exp,
		logger:   log.WithComponent("report-handler"),
	}
}

// Get handles GET /api/v1/report
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.BuildReport())
}

// Export handles GET /api/v1/report/export
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := h.exporter.CompleteReport(h.store.BuildReport())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build report workbook")
		respondError(w, http.StatusInternalServerError, "failed to build report workbook")
		return
	}
	if err := respondWorkbook(w, f, "ISMS_Complete_Report.xlsx"); err != nil {
		h.logger.Error().Err(err).Msg("failed to write report workbook")
	}
}
