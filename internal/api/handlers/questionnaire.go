package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"isms-lab/internal/domain/catalog"
	"isms-lab/pkg/logger"
)

// QuestionnaireHandler serves the static reference data: the scoping
// questionnaire and the Annex A control catalog.
type QuestionnaireHandler struct {
	logger *logger.Logger
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler
func NewQuestionnaireHandler(log *logger.Logger) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		logger: log.WithComponent("questionnaire"),
	}
}

// ListQuestions handles GET /api/v1/questionnaire
func (h *QuestionnaireHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sections": catalog.Sections(),
		"total":    catalog.TotalQuestions(),
	})
}

// ListControls handles GET /api/v1/catalog
func (h *QuestionnaireHandler) ListControls(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"groups": catalog.Groups(),
		"total":  catalog.TotalControls(),
	})
}

// GetControl handles GET /api/v1/catalog/{id}
func (h *QuestionnaireHandler) GetControl(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	control, err := catalog.FindControl(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "control not found")
		return
	}
	respondJSON(w, http.StatusOK, control)
}
