package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"sentiview/internal/contextutil"
	"sentiview/internal/service"
)

// ExportHandler serves a corrections download in one of the two
// interchangeable formats. A handler instance is bound to one format at
// construction.
type ExportHandler struct {
	encode func(ctx context.Context) (service.ExportFile, error)
}

// NewCSVExportHandler creates the tabular corrections download handler.
func NewCSVExportHandler(reviews service.ReviewService) *ExportHandler {
	return &ExportHandler{encode: reviews.ExportCSV}
}

// NewJSONExportHandler creates the structured corrections download
// handler.
func NewJSONExportHandler(reviews service.ReviewService) *ExportHandler {
	return &ExportHandler{encode: reviews.ExportJSON}
}

// ServeHTTP handles GET /api/export/{csv,json}. With zero pending changes
// no file is produced and the client gets a notice instead.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	file, err := h.encode(ctx)
	if err != nil {
		logger.WarnContext(ctx, "export refused", "error", err)
		status, msg := serviceErrorStatus(err)
		h.writeError(w, status, msg)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	if _, err := w.Write(file.Data); err != nil {
		logger.ErrorContext(ctx, "failed to write export", "error", err)
	}
}

// writeError writes an error response.
func (h *ExportHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
