// Package http provides the API server, route registration and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	authHTTP "github.com/stockpile/stockpile/internal/auth/http"
	authService "github.com/stockpile/stockpile/internal/auth/service"
	authUseCase "github.com/stockpile/stockpile/internal/auth/usecase"
	"github.com/stockpile/stockpile/internal/config"
	inventoryHTTP "github.com/stockpile/stockpile/internal/inventory/http"
	"github.com/stockpile/stockpile/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server and registers every route.
//
// The authentication middleware runs on all /v1 routes and only populates the
// request security context; the per-route role guards decide between 401 and
// 403. principalRepo may be nil, in which case the role claim embedded in the
// token is trusted.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	tokenCodec authService.TokenCodec,
	principalRepo authUseCase.PrincipalRepository,
	loginHandler *authHTTP.LoginHandler,
	itemHandler *inventoryHTTP.ItemHandler,
	metricsProvider *metrics.Provider,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Liveness and readiness stay outside authentication
	router.GET("/health", HealthHandler())
	router.GET("/ready", ReadinessHandler(db))

	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(tokenCodec, principalRepo, logger))

	login := v1.Group("/login")
	if cfg.RateLimitLoginEnabled {
		login.Use(authHTTP.LoginRateLimitMiddleware(
			cfg.RateLimitLoginRequestsPerSec,
			cfg.RateLimitLoginBurst,
			logger,
		))
	}
	login.POST("", loginHandler.LoginHandler)

	items := v1.Group("/items")
	{
		readRoles := []authDomain.Role{authDomain.AdminRole, authDomain.UserRole}

		items.GET("", authHTTP.RequireRole(logger, readRoles...), itemHandler.ListHandler)
		items.GET("/search", authHTTP.RequireRole(logger, readRoles...), itemHandler.SearchHandler)
		items.GET("/low-stock", authHTTP.RequireRole(logger, readRoles...), itemHandler.LowStockHandler)
		items.GET("/total-value", authHTTP.RequireRole(logger, readRoles...), itemHandler.TotalValueHandler)
		items.GET("/:id", authHTTP.RequireRole(logger, readRoles...), itemHandler.GetHandler)

		items.POST("", authHTTP.RequireRole(logger, authDomain.AdminRole), itemHandler.CreateHandler)
		items.PUT("/:id", authHTTP.RequireRole(logger, authDomain.AdminRole), itemHandler.UpdateHandler)
		items.DELETE("/:id", authHTTP.RequireRole(logger, authDomain.AdminRole), itemHandler.DeleteHandler)
	}

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
