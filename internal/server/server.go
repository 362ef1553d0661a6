// Package server implements the HTTP API of the voice detection service.
//
// The route table:
//
//	POST /detect_voice — classify a base64-encoded audio clip
//	GET  /             — service metadata
//	GET  /health       — liveness probe
//	GET  /readyz       — readiness probe (extractor self-test)
//	GET  /stats        — runtime counters and latency percentiles
//	GET  /metrics      — Prometheus exposition (when enabled)
//
// All routes are wrapped in the observability middleware, which traces each
// request, records its duration, and sets the X-Correlation-ID header.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/mvasanth/voxhound/internal/config"
	"github.com/mvasanth/voxhound/internal/feature"
	"github.com/mvasanth/voxhound/internal/health"
	"github.com/mvasanth/voxhound/internal/observe"
)

// Server owns the HTTP listener and routes for the detection API.
type Server struct {
	cfg       config.ServerConfig
	extractor *feature.Extractor
	metrics   *observe.Metrics
	stats     *DetectionStats
	health    *health.Handler
	validate  *validator.Validate

	metricsEnabled bool

	httpSrv *http.Server
}

// Option is a functional option for [New]. Use these to inject test doubles.
type Option func(*Server)

// WithMetrics injects a metrics instance instead of the package default.
func WithMetrics(m *observe.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithStats injects a DetectionStats instead of creating one from config.
func WithStats(ds *DetectionStats) Option {
	return func(s *Server) { s.stats = ds }
}

// WithHealth injects a health handler instead of the default extractor
// self-test checker.
func WithHealth(h *health.Handler) Option {
	return func(s *Server) { s.health = h }
}

// New creates a Server wired to the given extractor.
func New(cfg *config.Config, extractor *feature.Extractor, opts ...Option) *Server {
	s := &Server{
		cfg:            cfg.Server,
		extractor:      extractor,
		metricsEnabled: cfg.Telemetry.MetricsEnabled,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = observe.DefaultMetrics()
	}
	if s.stats == nil {
		s.stats = NewDetectionStats(cfg.Stats.Window)
	}
	if s.health == nil {
		s.health = health.New(health.Checker{
			Name:  "extractor",
			Check: extractor.SelfTest,
		})
	}

	s.httpSrv = &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	return s
}

// Handler returns the full route table wrapped in the observability
// middleware. Exposed so tests can drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /detect_voice", s.handleDetect)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /stats", s.handleStats)
	s.health.Register(mux)
	if s.metricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}
	return observe.Middleware(s.metrics)(mux)
}

// Run binds the listener and serves until ctx is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("server: listen %q: %w", s.cfg.ListenAddr, err)
	}
	slog.Info("http server listening", "addr", ln.Addr().String())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		slog.Info("http server drained")
		return nil
	})
	return g.Wait()
}
