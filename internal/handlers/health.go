package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"sentiview/internal/contextutil"
	"sentiview/internal/service"
)

// HealthHandler reports whether the service has a usable dataset. A
// failed or empty load leaves the session unusable, which surfaces here.
type HealthHandler struct {
	reviews service.ReviewService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(reviews service.ReviewService) *HealthHandler {
	return &HealthHandler{reviews: reviews}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Issues    []string          `json:"issues,omitempty"`
}

// ServeHTTP handles GET /api/health. Returns 200 when a dataset is
// loaded, 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	checks := make(map[string]string)
	var issues []string

	if h.reviews.Overview(ctx).TotalRecords > 0 {
		checks["dataset"] = "ok"
	} else {
		checks["dataset"] = "error"
		issues = append(issues, "dataset_empty")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
