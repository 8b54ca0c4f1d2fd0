package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/opsledger/ledgerd/internal/adapters/artifacts"
	portssvc "github.com/opsledger/ledgerd/internal/core/ports/services"
	"github.com/opsledger/ledgerd/internal/core/services"
	"github.com/opsledger/ledgerd/internal/handlers"
	"github.com/opsledger/ledgerd/internal/middleware"
	"github.com/opsledger/ledgerd/internal/platform/config"
	"github.com/opsledger/ledgerd/internal/repositories/database/pgsql"
	"github.com/opsledger/ledgerd/pkg/database"
)

// @title Ledgerd API
// @version 1.0
// @description Double-entry ledger engine with invoices, payments, receipts, and bank reconciliation.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	serviceContainer := buildServices(dbPool, cfg)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires repositories and services for the HTTP layer.
func buildServices(dbPool *pgxpool.Pool, cfg *config.Config) *portssvc.ServiceContainer {
	repos := pgsql.NewRepositoryProvider(dbPool)

	posting := services.PostingConfig{
		ReceivableAccountCode: cfg.ReceivableAccountCode,
		RevenueAccountCode:    cfg.RevenueAccountCode,
	}
	renderer := artifacts.NewFileReceiptRenderer(cfg.ReceiptArtifactDir, cfg.LedgerPrecision)

	referenceSvc := services.NewReferenceService(repos.ReferenceRepo)

	return &portssvc.ServiceContainer{
		Account:        services.NewAccountService(repos.AccountRepo),
		Journal:        services.NewJournalService(repos.JournalRepo, repos.AccountRepo, referenceSvc),
		Reference:      referenceSvc,
		Invoice:        services.NewInvoiceService(repos.InvoiceRepo, repos.PaymentRepo, repos.AccountRepo, referenceSvc, posting),
		Payment:        services.NewPaymentService(repos.InvoiceRepo, repos.PaymentRepo, repos.AccountRepo, referenceSvc, renderer, posting),
		Reconciliation: services.NewReconciliationService(repos.StatementRepo, repos.JournalRepo, repos.AccountRepo),
		Reporting:      services.NewReportingService(repos.ReportingRepo),
	}
}

// runMigrations applies all pending file-source migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
