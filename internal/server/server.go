// Package server exposes the handwriting pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/Ananya54321/handwritten/pkg/cache"
	"github.com/Ananya54321/handwritten/pkg/handwriting"
)

// Server serves the handwriting HTTP API. One Runner is shared across
// all requests so glyph stores load once per ink color.
type Server struct {
	cfg    Config
	logger *log.Logger
	runner *handwriting.Runner
	router chi.Router
}

// New builds a server with its cache backend and routes.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	// The key prefix versions server cache entries so a key-affecting
	// pipeline change can be rolled out without serving stale artifacts.
	keyer := cache.NewScopedKeyer(nil, "v1:")

	s := &Server{
		cfg:    cfg,
		logger: logger,
		runner: handwriting.NewRunner(c, keyer, logger),
	}
	s.routes()
	return s, nil
}

// newCache constructs the configured artifact cache backend.
func newCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case CacheBackendFile:
		dir := cfg.Dir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(base, "handwritten")
		}
		return cache.NewFileCache(dir)
	case CacheBackendRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	default:
		return cache.NewNullCache(), nil
	}
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
	})
	s.router = r
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", s.cfg.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return s.runner.Close()
	}
}
