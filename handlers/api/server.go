package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/nijaru/yt-digest/config"
	"github.com/nijaru/yt-digest/errors"
	"github.com/nijaru/yt-digest/middleware"
	"github.com/nijaru/yt-digest/services/analysis"
	"github.com/nijaru/yt-digest/utils"
	"github.com/nijaru/yt-digest/validation"
	"github.com/sirupsen/logrus"
)

type Server struct {
	analyze   *AnalyzeHandler
	config    *config.Config
	logger    *logrus.Logger
	server    *http.Server
	startTime time.Time
}

type ServerOption func(*Server)

// NewServer creates a new API server with the provided services and options
func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		config:    cfg,
		logger:    logrus.StandardLogger(),
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// WithAnalysisService sets up the analyze handler with the provided service
func WithAnalysisService(svc analysis.Service) ServerOption {
	return func(s *Server) {
		s.analyze = NewAnalyzeHandler(svc, validation.NewValidator(), s.logger)
	}
}

// WithLogger sets a custom logger for the server. Pass it before
// WithAnalysisService so the handler shares it.
func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// Handler exposes the routed middleware stack.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.WithField("port", s.config.ServerPort).Info("Starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(s.logger),
		middleware.Logging(s.logger),
		middleware.CORS(s.config.CORS),
		middleware.Timeout(s.config.RequestTimeout),
	)

	r.Get("/health", s.handleHealth)
	if s.analyze != nil {
		r.Post("/api/analyze", s.analyze.HandleAnalyze)
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.HandleError(w, errors.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.HandleError(w, "Not Found", http.StatusNotFound)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"version":   s.config.Version,
		"uptime":    time.Since(s.startTime).String(),
		"llm": map[string]bool{
			"summary": s.config.Summary.Enabled(),
			"related": s.config.Related.Enabled(),
		},
	})
}
