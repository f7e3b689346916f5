package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sentiview/internal/handlers"
	"sentiview/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Reviews service.ReviewService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(CORS)

	listHandler := handlers.NewListHandler(deps.Reviews)
	editHandler := handlers.NewEditHandler(deps.Reviews)
	addHandler := handlers.NewAddAnnotationHandler(deps.Reviews)
	removeHandler := handlers.NewRemoveAnnotationHandler(deps.Reviews)
	changesHandler := handlers.NewChangesHandler(deps.Reviews)
	csvHandler := handlers.NewCSVExportHandler(deps.Reviews)
	jsonHandler := handlers.NewJSONExportHandler(deps.Reviews)
	overviewHandler := handlers.NewOverviewHandler(deps.Reviews)
	healthHandler := handlers.NewHealthHandler(deps.Reviews)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/annotations", listHandler)
		r.Method(http.MethodPost, "/annotations/{id}/edit", editHandler)
		r.Method(http.MethodPost, "/annotations/{id}/additions", addHandler)
		r.Method(http.MethodDelete, "/annotations/{id}/additions/{index}", removeHandler)
		r.Method(http.MethodGet, "/changes", changesHandler)
		r.Method(http.MethodGet, "/export/csv", csvHandler)
		r.Method(http.MethodGet, "/export/json", jsonHandler)
		r.Method(http.MethodGet, "/overview", overviewHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Serve the viewer page and help document
	r.Method(http.MethodGet, "/", handlers.NewViewerHandler())
	r.Method(http.MethodGet, "/help", handlers.NewHelpHandler())

	return r
}
