package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"sentiview/internal/contextutil"
	"sentiview/internal/export"
	"sentiview/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// serviceErrorStatus maps service-layer errors to HTTP status codes.
func serviceErrorStatus(err error) (int, string) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Message
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "Annotation not found"
	case errors.Is(err, export.ErrNoChanges):
		return http.StatusConflict, "No changes to download"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// ListHandler serves the filtered, sorted, paginated annotation view.
type ListHandler struct {
	reviews service.ReviewService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(reviews service.ReviewService) *ListHandler {
	return &ListHandler{reviews: reviews}
}

// ServeHTTP handles GET /api/annotations. All control state is carried in
// query parameters; an explicit page parameter outside the valid range is
// ignored and the current page is kept.
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	params := r.URL.Query()
	q := service.Query{
		From:    params.Get("from"),
		To:      params.Get("to"),
		Company: params.Get("company"),
		Search:  params.Get("q"),
		Sort:    params.Get("sort"),
		Group:   params.Get("group"),
	}
	if v := params.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		q.Page = page
	}
	if v := params.Get("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			h.writeError(w, http.StatusBadRequest, "page_size must be a positive integer")
			return
		}
		q.PageSize = size
	}

	result, err := h.reviews.List(ctx, q)
	if err != nil {
		logger.WarnContext(ctx, "list request failed", "error", err)
		status, msg := serviceErrorStatus(err)
		h.writeError(w, status, msg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *ListHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
