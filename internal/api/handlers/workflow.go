package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// WorkflowHandler handles wizard navigation.
type WorkflowHandler struct {
	store  *workflow.Store
	logger *logger.Logger
}

// NewWorkflowHandler creates a new WorkflowHandler
func NewWorkflowHandler(store *workflow.Store, log *logger.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		store:  store,
		logger: log.WithComponent("workflow-handler"),
	}
}

// Status handles GET /api/v1/workflow
func (h *WorkflowHandler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"current": h.store.CurrentStage(),
		"stages":  workflow.Stages(),
	})
}

// Goto handles POST /api/v1/workflow/goto - back-navigation to a
// reachable stage
func (h *WorkflowHandler) Goto(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Stage string `json:"stage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	stage, err := workflow.ParseStage(req.Stage)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Goto(stage); err != nil {
		if errors.Is(err, workflow.ErrStageUnreachable) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"current": h.store.CurrentStage(),
	})
}
