// Package monitor implements app.Runner for the bridge monitor service.
package monitor

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apperrors "github.com/chainsafe/bridge-monitor/pkg/app/errors"
	apphttp "github.com/chainsafe/bridge-monitor/pkg/app/http"
	"github.com/chainsafe/bridge-monitor/pkg/app/httpserver"
	"github.com/chainsafe/bridge-monitor/pkg/auth"
	"github.com/chainsafe/bridge-monitor/pkg/config"
	"github.com/chainsafe/bridge-monitor/pkg/monitor"
	"github.com/chainsafe/bridge-monitor/pkg/pgutil"
	"github.com/chainsafe/bridge-monitor/pkg/reconciler"
	"github.com/chainsafe/bridge-monitor/pkg/reportdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// TODO: take these from config
const (
	defaultGracefulShutdownTimeout = 30 * time.Second
	defaultHTTPMiddlewareTimeout   = 60 * time.Second
	defaultHTTPReadTimeout         = 15 * time.Second
	defaultHTTPWriteTimeout        = 60 * time.Second
	defaultHTTPIdleTimeout         = 60 * time.Second
)

// Server holds configuration for the monitor process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new monitor Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run starts the periodic reconciliation and the HTTP API.
// It blocks until an OS shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bridge monitor", zap.Strings("bridges", cfg.MonitoredBridges()))

	chains := reconciler.NewChains(cfg, logger)
	defer chains.Close()

	bridges := make([]monitor.Bridge, 0, len(cfg.MonitoredBridges()))
	for _, name := range cfg.MonitoredBridges() {
		b, err := reconciler.BuildBridge(ctx, cfg, chains, name, reconciler.Overrides{}, logger.With(zap.String("bridge", name)))
		if err != nil {
			return fmt.Errorf("wire bridge %s: %w", name, err)
		}
		bridges = append(bridges, b)
	}

	opts := []monitor.Option{monitor.WithPassTimeout(cfg.Reconcile.Timeout)}
	if cfg.Monitor.Persist {
		db, err := pgutil.ConnectDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("connect report db: %w", err)
		}
		store := reportdb.NewStore(db)
		defer func() { _ = store.Close() }()
		logger.Info("Database connection established (snapshots are persisted)", zap.String("database", cfg.Database.Database))
		opts = append(opts, monitor.WithStore(store))
	}

	engine := monitor.NewEngine(bridges, cfg.Monitor.Interval, logger, opts...)
	engine.Start(ctx)
	defer engine.Stop()

	validator := auth.NewValidator(cfg.Server.Auth)
	if validator.Enabled() {
		logger.Info("API authentication enabled", zap.String("jwks_url", cfg.Server.Auth.JWKSURL))
	}
	router := NewRouter(engine, cfg.Monitoring, validator, logger)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return httpserver.ServeAndWait(ctx, logger, newHTTPServer(serverAddr, router), defaultGracefulShutdownTimeout)
}

// NewRouter builds the operational endpoints and mounts the monitor API under /api/v1.
// The API requires a bearer token when validator is enabled; health, readiness and metrics stay open.
func NewRouter(service monitor.Service, monitoring config.MonitoringConfig, validator *auth.Validator, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))
	r.Use(requestLogger(logger))
	r.MethodNotAllowed(apphttp.HandleError(logger, func(_ http.ResponseWriter, req *http.Request) error {
		return apperrors.NotSupportedError(nil, req.Method+" is not allowed on "+req.URL.Path)
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if !service.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(validator, logger))
		monitor.RegisterRoutes(r, service, logger)
	})

	return r
}

// requestLogger writes access logs through zap at debug level.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  defaultHTTPReadTimeout,
		WriteTimeout: defaultHTTPWriteTimeout,
		IdleTimeout:  defaultHTTPIdleTimeout,
	}
}
