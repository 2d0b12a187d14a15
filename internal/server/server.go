// Package server assembles the HTTP surface: router, middleware chain,
// endpoint handlers and the denylist garbage collector.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexdavis098/gamestore/internal/auth"
	"github.com/alexdavis098/gamestore/internal/config"
	"github.com/alexdavis098/gamestore/internal/server/handlers"
	"github.com/alexdavis098/gamestore/internal/server/jwt"
	"github.com/alexdavis098/gamestore/internal/server/middleware"
	"github.com/alexdavis098/gamestore/internal/server/storage"
)

// Store is the full persistence surface the server needs. The sqlite
// implementation satisfies all three interfaces.
type Store interface {
	storage.UserStorage
	storage.GameStorage
	storage.TokenStorage
}

// Server owns the HTTP listener and the background denylist GC.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      Store
	httpServer *http.Server
	limiter    *middleware.RateLimiter
}

// New wires handlers, middleware and routes into a runnable server.
func New(cfg *config.Config, logger *slog.Logger, store Store, version string) *Server {
	jwtSvc := jwt.NewService(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := auth.NewBcryptHasher(0)

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtSvc, hasher)
	gameHandler := handlers.NewGameHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, version)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Rate, cfg.RateLimit.Window, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.LoggingWithSkip(logger, []string{"/healthz", "/metrics"}))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		// Credential endpoints: public, rate limited.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Everything below requires a valid, unrevoked bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(logger, jwtSvc, store))

			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
			r.Post("/refresh", authHandler.Refresh)

			r.Route("/game", func(r chi.Router) {
				r.Get("/", gameHandler.List)
				r.Post("/", gameHandler.Create)
				r.Get("/{id}", gameHandler.Get)
				r.Put("/{id}", gameHandler.Update)
				r.Delete("/{id}", gameHandler.Delete)
			})
		})
	})

	return &Server{
		cfg:    cfg,
		logger: logger,
		store:  store,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      r,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		limiter: limiter,
	}
}

// Run serves until ctx is canceled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	gcDone := make(chan struct{})
	go s.runTokenGC(ctx, gcDone)

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Server.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		s.limiter.Stop()
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	s.limiter.Stop()
	<-gcDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// Handler exposes the assembled router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// runTokenGC periodically removes denylist rows for tokens that have
// passed their natural expiry.
func (s *Server) runTokenGC(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.cfg.JWT.GCInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.DeleteExpiredTokens(context.Background(), time.Now().UTC())
			if err != nil {
				s.logger.Error("failed to clean up revoked tokens", "error", err)
				continue
			}
			if n > 0 {
				s.logger.Info("cleaned up revoked tokens", "deleted", n)
			}
		}
	}
}
