// Package server exposes the analyzer over HTTP: manual entry, file upload,
// the in-memory history and a live websocket feed of new results.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"dna_analyzer_go/analysis"
	"dna_analyzer_go/history"
)

// Config holds server configuration
type Config struct {
	Log            zerolog.Logger
	History        *history.Store
	Analyzer       analysis.Analyzer
	Port           int
	DevMode        bool
	HistoryView    int   // default number of entries for GET /api/history
	MaxUploadBytes int64 // request body cap for analyze and upload
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	history        *history.Store
	analyzer       analysis.Analyzer
	port           int
	devMode        bool
	historyView    int
	maxUploadBytes int64
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	if cfg.History == nil {
		cfg.History = history.NewStore(100)
	}
	if cfg.HistoryView <= 0 {
		cfg.HistoryView = 10
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}

	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		history:        cfg.History,
		analyzer:       cfg.Analyzer,
		port:           cfg.Port,
		devMode:        cfg.DevMode,
		historyView:    cfg.HistoryView,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // websocket stream is long lived
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	// Long lived; kept out of the timeout group
	s.router.Get("/api/stream", s.handleStream)

	s.router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		if !s.devMode {
			r.Use(middleware.Compress(5))
		}

		r.Post("/api/analyze", s.handleAnalyze)
		r.Post("/api/upload", s.handleUpload)
		r.Get("/api/history", s.handleHistory)
		r.Get("/api/history/{id}", s.handleHistoryEntry)
		r.Get("/api/about", s.handleAbout)
		r.Get("/api/system", s.handleSystem)
	})
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
