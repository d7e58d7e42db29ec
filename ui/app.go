// Package ui serves the dashboard: KPI cards, distributions and CSV
// downloads over the latest refresh snapshot.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"paydash/internal/pipeline"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	refresher *pipeline.RefreshService
	templates *template.Template
}

// NewApp creates the dashboard application over a refresh service
func NewApp(refresher *pipeline.RefreshService) (*App, error) {
	funcMap := template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		refresher: refresher,
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Post("/refresh", a.handleRefresh)
	a.router.Get("/download/payments.csv", a.handleDownloadPayments)
	a.router.Get("/download/proposals.csv", a.handleDownloadProposals)
}

// Start starts the HTTP server on the given port. Blocks until the
// server exits.
func (a *App) Start(port string) error {
	addr := ":" + port
	log.Printf("[UI] dashboard listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Handler exposes the router for tests
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
