package handlers

import (
	"encoding/json"
	"net/http"

	"sentiview/internal/contextutil"
	"sentiview/internal/service"
)

// ChangesHandler reports pending correction counts.
type ChangesHandler struct {
	reviews service.ReviewService
}

// NewChangesHandler creates a new ChangesHandler.
func NewChangesHandler(reviews service.ReviewService) *ChangesHandler {
	return &ChangesHandler{reviews: reviews}
}

// ServeHTTP handles GET /api/changes.
func (h *ChangesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	changes := h.reviews.Changes(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(changes); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
