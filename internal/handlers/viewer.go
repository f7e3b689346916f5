package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed viewer.html
var viewerHTML []byte

// ViewerHandler serves the embedded review page. The page is a thin
// client of the JSON API; all filtering, pagination, and edit tracking
// happens server side.
type ViewerHandler struct{}

// NewViewerHandler creates a new ViewerHandler.
func NewViewerHandler() *ViewerHandler {
	return &ViewerHandler{}
}

// ServeHTTP handles GET /.
func (h *ViewerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(viewerHTML)
}
