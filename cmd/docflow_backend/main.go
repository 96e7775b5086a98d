package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/docflow_backend/internal/core/ports/repositories"
	"github.com/SscSPs/docflow_backend/internal/core/services"
	"github.com/SscSPs/docflow_backend/internal/handlers"
	"github.com/SscSPs/docflow_backend/internal/middleware"
	"github.com/SscSPs/docflow_backend/internal/platform/catalog"
	"github.com/SscSPs/docflow_backend/internal/platform/config"
	"github.com/SscSPs/docflow_backend/internal/platform/logger"
	"github.com/SscSPs/docflow_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/docflow_backend/internal/repositories/memory"
	"github.com/SscSPs/docflow_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title DocFlow Backend API
// @version 1.0
// @description Document lifecycle engine for finance, warehouse, procurement and QHSE back-office documents.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.LogLevel, os.Stdout)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, cleanup, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		log.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r.Use(
		middleware.StructuredLoggingMiddleware(log),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
		}),
		middleware.RateLimit(rateLimiter),
	)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", slog.String("error", err.Error()))
		return
	}
	log.Info("Server shutdown completed successfully")
}

// buildRepositories wires the document store and the reference data source.
// Reference data comes from Postgres when PGSQL_URL is set, otherwise from the catalog file.
func buildRepositories(ctx context.Context, cfg *config.Config, log *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		c, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		log.Info("Reference data loaded from catalog",
			slog.String("path", cfg.CatalogPath),
			slog.Int("suppliers", len(c.Suppliers)),
			slog.Int("employees", len(c.Employees)))
		return memory.NewRepositoryProvider(c), func() {}, nil
	}

	if cfg.RunMigrations {
		log.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		if applied {
			log.Info("Database migrations applied successfully.")
		} else {
			log.Info("No new migrations to apply.")
		}
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return repositories.RepositoryProvider{}, nil, err
	}
	log.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}
