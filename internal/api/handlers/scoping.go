package handlers

import (
	"encoding/json"
	"net/http"

	"isms-lab/internal/domain/models"
	"isms-lab/internal/workflow"
	"isms-lab/pkg/logger"
)

// ScopingHandler handles the scoping questionnaire stage.
type ScopingHandler struct {
	store  *workflow.Store
	logger *logger.Logger
}

// NewScopingHandler creates a new ScopingHandler
func NewScopingHandler(store *workflow.Store, log *logger.Logger) *ScopingHandler {
	return &ScopingHandler{
		store:  store,
		logger: log.WithComponent("scoping-handler"),
	}
}

// Get handles GET /api/v1/scoping
func (h *ScopingHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"responses": h.store.Responses(),
	})
}

// Put handles PUT /api/v1/scoping - replaces the response set
func (h *ScopingHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Responses models.ScopingResponses `json:"responses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.store.SetResponses(req.Responses)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"responses": h.store.Responses(),
	})
}

// Complete handles POST /api/v1/scoping/complete
func (h *ScopingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	completeStage(w, r, h.store, workflow.StageScoping)
}

// Profile handles GET /api/v1/profile
func (h *ScopingHandler) Profile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Profile())
}
