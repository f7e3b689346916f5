package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sentiview/internal/annotation"
	"sentiview/internal/contextutil"
	"sentiview/internal/service"
)

// AddAnnotationHandler attaches additional annotations to a record, for
// sentences carrying more than one appraisal.
type AddAnnotationHandler struct {
	reviews service.ReviewService
}

// NewAddAnnotationHandler creates a new AddAnnotationHandler.
func NewAddAnnotationHandler(reviews service.ReviewService) *AddAnnotationHandler {
	return &AddAnnotationHandler{reviews: reviews}
}

// AddRequest is the payload for attaching a new annotation.
type AddRequest struct {
	AttitudeType     string `json:"attitudeType"`
	AttitudeSubtype  string `json:"attitudeSubtype"`
	AttitudePolarity string `json:"attitudePolarity"`
	MatchedText      string `json:"matchedText"`
}

// AddResponse returns the created annotation and the updated change
// summary.
type AddResponse struct {
	Added         annotation.Added `json:"added"`
	ChangeSummary string           `json:"changeSummary"`
	ChangeCount   int              `json:"changeCount"`
}

// ServeHTTP handles POST /api/annotations/{id}/additions.
func (h *AddAnnotationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	added, err := h.reviews.AddAnnotation(ctx, id, service.AddInput{
		AttitudeType:     req.AttitudeType,
		AttitudeSubtype:  req.AttitudeSubtype,
		AttitudePolarity: req.AttitudePolarity,
		MatchedText:      req.MatchedText,
	})
	if err != nil {
		logger.WarnContext(ctx, "add annotation failed", "id", id, "error", err)
		status, msg := serviceErrorStatus(err)
		h.writeError(w, status, msg)
		return
	}

	changes := h.reviews.Changes(ctx)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(AddResponse{
		Added:         added,
		ChangeSummary: changes.Summary,
		ChangeCount:   changes.Count,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *AddAnnotationHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// RemoveAnnotationHandler removes an added annotation by index.
type RemoveAnnotationHandler struct {
	reviews service.ReviewService
}

// NewRemoveAnnotationHandler creates a new RemoveAnnotationHandler.
func NewRemoveAnnotationHandler(reviews service.ReviewService) *RemoveAnnotationHandler {
	return &RemoveAnnotationHandler{reviews: reviews}
}

// ServeHTTP handles DELETE /api/annotations/{id}/additions/{index}. An
// out-of-range index is a silent no-op: the response is 204 either way.
func (h *RemoveAnnotationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	if err := h.reviews.RemoveAnnotation(ctx, id, index); err != nil {
		logger.ErrorContext(ctx, "remove annotation failed", "id", id, "index", index, "error", err)
		status, msg := serviceErrorStatus(err)
		h.writeError(w, status, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeError writes an error response.
func (h *RemoveAnnotationHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
