// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"bptrack/internal/app"
)

// Config holds the adapter's settings.
type Config struct {
	WebDir       string
	CORSOrigins  []string
	HistoryLimit int
	Log          zerolog.Logger
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	readings     *app.ReadingService
	assessment   *app.AssessmentService
	webDir       string
	corsOrigins  []string
	historyLimit int
	log          zerolog.Logger
}

// New creates a Server wired to the given application services.
func New(rs *app.ReadingService, as *app.AssessmentService, cfg Config) *Server {
	if cfg.HistoryLimit < 1 {
		cfg.HistoryLimit = 90
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return &Server{
		readings:     rs,
		assessment:   as,
		webDir:       cfg.WebDir,
		corsOrigins:  cfg.CORSOrigins,
		historyLimit: cfg.HistoryLimit,
		log:          cfg.Log.With().Str("component", "http").Logger(),
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(s.loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(withNoCache)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		})

		api.Route("/readings", func(rr chi.Router) {
			rr.Get("/", s.handleReadingsList)
			rr.Post("/", s.handleReadingsCreate)
			rr.Post("/undo-last", s.handleReadingsUndoLast)
			rr.Delete("/{id}", s.handleReadingsDelete)
		})

		api.Get("/evaluate", s.handleEvaluate)
		api.Get("/assessment", s.handleAssessment)
	})

	r.Handle("/*", spaFromDisk(s.webDir))
	return r
}
