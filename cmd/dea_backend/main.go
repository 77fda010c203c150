package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/duosplit/duo_expense_app/internal/cache"
	portsrepo "github.com/duosplit/duo_expense_app/internal/core/ports/repositories"
	"github.com/duosplit/duo_expense_app/internal/core/services"
	"github.com/duosplit/duo_expense_app/internal/handlers"
	"github.com/duosplit/duo_expense_app/internal/middleware"
	"github.com/duosplit/duo_expense_app/internal/platform/config"
	"github.com/duosplit/duo_expense_app/internal/repositories/memory"
	"github.com/duosplit/duo_expense_app/internal/repositories/sqlite"
)

// @title Duo Expense API
// @version 1.0
// @description Two-party shared-expense ledger: group expenses, settlements and derived summaries.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	entryRepo, cleanup, err := newEntryRepository(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize entry store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	ledgerSvc := services.NewLedgerService(entryRepo)
	reportingSvc := services.NewReportingService(entryRepo)

	idemCache := cache.NewLRUCache[middleware.CachedResponse](cfg.IdempotencyCacheSize, cfg.IdempotencyTTL)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.IdempotencyKeyHeader)
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, ledgerSvc, reportingSvc, idemCache)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.DataBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newEntryRepository selects the entry store backend. The cleanup func closes
// whatever the backend holds open.
func newEntryRepository(cfg *config.Config, logger *slog.Logger) (portsrepo.EntryRepositoryFacade, func(), error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		repo, err := sqlite.NewEntryRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using sqlite entry store", slog.String("path", cfg.SQLiteDBPath))
		return repo, func() {
			if cerr := repo.Close(); cerr != nil {
				logger.Error("Error closing sqlite entry store", slog.String("error", cerr.Error()))
			}
		}, nil
	default:
		logger.Info("Using in-memory entry store")
		return memory.NewEntryRepository(), func() {}, nil
	}
}
