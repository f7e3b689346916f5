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

// EditHandler applies reviewer edits to a record.
type EditHandler struct {
	reviews service.ReviewService
}

// NewEditHandler creates a new EditHandler.
func NewEditHandler(reviews service.ReviewService) *EditHandler {
	return &EditHandler{reviews: reviews}
}

// EditRequest is the payload for saving an edit. NewSentence is optional;
// leaving it empty keeps the original sentence.
type EditRequest struct {
	AttitudeType     string `json:"attitudeType"`
	AttitudeSubtype  string `json:"attitudeSubtype"`
	AttitudePolarity string `json:"attitudePolarity"`
	MatchedText      string `json:"matchedText"`
	NewSentence      string `json:"newSentence,omitempty"`
}

// EditResponse returns the recorded diff plus the updated change summary.
type EditResponse struct {
	Edit          annotation.EditRecord `json:"edit"`
	ChangeSummary string                `json:"changeSummary"`
	ChangeCount   int                   `json:"changeCount"`
}

// ServeHTTP handles POST /api/annotations/{id}/edit.
func (h *EditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var req EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	edit, err := h.reviews.SaveEdit(ctx, id, service.EditInput{
		AttitudeType:     req.AttitudeType,
		AttitudeSubtype:  req.AttitudeSubtype,
		AttitudePolarity: req.AttitudePolarity,
		MatchedText:      req.MatchedText,
		NewSentence:      req.NewSentence,
	})
	if err != nil {
		logger.WarnContext(ctx, "edit failed", "id", id, "error", err)
		status, msg := serviceErrorStatus(err)
		h.writeError(w, status, msg)
		return
	}

	changes := h.reviews.Changes(ctx)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(EditResponse{
		Edit:          edit,
		ChangeSummary: changes.Summary,
		ChangeCount:   changes.Count,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func (h *EditHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
