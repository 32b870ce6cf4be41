package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/bankcore/txn_limit_app/internal/clients/openexchange"
	"github.com/bankcore/txn_limit_app/internal/core/domain"
	"github.com/bankcore/txn_limit_app/internal/core/services"
	"github.com/bankcore/txn_limit_app/internal/handlers"
	"github.com/bankcore/txn_limit_app/internal/middleware"
	"github.com/bankcore/txn_limit_app/internal/platform/clock"
	"github.com/bankcore/txn_limit_app/internal/platform/config"
	"github.com/bankcore/txn_limit_app/internal/repositories/database/pgsql"
	"github.com/bankcore/txn_limit_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

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

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerCustomValidators(logger)

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RequestRateLimit)
	if err != nil {
		logger.Error("Invalid REQUEST_RATE_LIMIT", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	repos := pgsql.NewRepositoryProvider(dbPool)
	provider := openexchange.NewClient(cfg.RateAPIBaseURL, cfg.RateAPIKey, &http.Client{Timeout: cfg.RateAPITimeout})
	calendar := domain.NewMarketCalendar(cfg.ExchangeTimezone, cfg.ExchangeCloseHour)
	serviceContainer := services.NewServiceContainer(repos, provider, clock.System{}, calendar)

	handlers.RegisterRoutes(r, serviceContainer, clock.System{}, cfg.ExchangeTimezone)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending database migrations from the migrations directory.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
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

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// registerCustomValidators adds binding validators used by the request DTOs.
func registerCustomValidators(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Error("Failed to access validator engine")
		os.Exit(1)
	}
	err := v.RegisterValidation("expensecategory", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseExpenseCategory(fl.Field().String())
		return err == nil
	})
	if err != nil {
		logger.Error("Failed to register expensecategory validator", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
