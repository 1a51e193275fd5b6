package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/rewrite"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Server exposes the analysis pipeline and the rewriter over HTTP
type Server struct {
	config   *model.Config
	pipeline *pipeline.Pipeline
	rewriter *rewrite.Rewriter
	logger   *zap.Logger
	http     *http.Server
}

// New creates a server wired to the given pipeline and rewriter.
// The rewriter may be nil or disabled; the rewrite endpoint then
// answers 503.
func New(cfg *model.Config, p *pipeline.Pipeline, rw *rewrite.Rewriter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		config:   cfg,
		pipeline: p,
		rewriter: rw,
		logger:   logger,
	}

	s.http = &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      s.routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/extract-claims", s.handleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	r.HandleFunc("/verify-claim/{id}", s.handleVerifyClaim).Methods(http.MethodPost)
	r.HandleFunc("/rewrite-comment", s.handleRewrite).Methods(http.MethodPost)
	r.HandleFunc("/sources", s.handleSources).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	return r
}

// Run starts the listener and blocks until ctx is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(started)))
	})
}
