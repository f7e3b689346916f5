package handlers

import (
	"encoding/json"
	"net/http"

	"sentiview/internal/contextutil"
	"sentiview/internal/service"
)

// OverviewHandler describes the loaded dataset so clients can populate
// their filter controls.
type OverviewHandler struct {
	reviews service.ReviewService
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(reviews service.ReviewService) *OverviewHandler {
	return &OverviewHandler{reviews: reviews}
}

// ServeHTTP handles GET /api/overview.
func (h *OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	overview := h.reviews.Overview(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(overview); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
