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
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SanTiwari07/AgroChain-sub001/cmd/docs"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/ledger"
	portsrepo "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/repositories"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/pricing"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/handlers"
	"github.com/SanTiwari07/AgroChain-sub001/internal/middleware"
	"github.com/SanTiwari07/AgroChain-sub001/internal/platform/config"
	"github.com/SanTiwari07/AgroChain-sub001/internal/repositories/database/pgsql"
	"github.com/SanTiwari07/AgroChain-sub001/internal/repositories/memory"
	"github.com/SanTiwari07/AgroChain-sub001/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title AgroChain Backend API
// @version 1.0
// @description Product traceability ledger for agricultural goods.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The process-wide traceability registry. It lives until shutdown; the
	// optional Postgres archive is the only durable mirror of its state.
	registry := ledger.New()

	archive, archivePool := setupArchive(cfg, logger)
	defer database.ClosePgxPool(archivePool)

	serviceContainer := services.NewServiceContainer(cfg, registry, memory.NewUserRepository(), archive)
	converter := pricing.NewConverter(cfg.PriceScale)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	if limiterMw := setupRateLimit(cfg, logger); limiterMw != nil {
		r.Use(limiterMw)
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Public surface: onboarding, login, and the read paths
	v1 := r.Group("/api/v1")
	handlers.RegisterPublicRoutes(v1, serviceContainer, converter)
	v1.GET("/example/helloworld", handlers.GetHome)

	// Mutating ledger operations require an authenticated identity + role
	protected := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	handlers.RegisterProtectedRoutes(protected, serviceContainer)

	setupSwaggerRoutes(r, cfg)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupArchive connects the Postgres custody archive and runs its schema
// migrations. Returns a no-op archiver and a nil pool when archiving is
// disabled.
func setupArchive(cfg *config.Config, logger *slog.Logger) (portsrepo.ArchiveRepository, *pgxpool.Pool) {
	if !cfg.ArchiveEnabled {
		logger.Info("Custody archive disabled; ledger state is in-memory only.")
		return memory.NewNoopArchiveRepository(), nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.ArchiveDatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize archive database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Archive database connection pool established.")

	runMigrations(cfg, logger)

	return pgsql.NewArchiveRepository(dbPool), dbPool
}

// runMigrations applies all pending "up" migrations to the archive schema.
func runMigrations(cfg *config.Config, logger *slog.Logger) {
	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.ArchiveDatabaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		os.Exit(1)
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		os.Exit(1)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Archive migrations applied successfully.")
	}
}

// setupRateLimit builds the per-IP rate limit middleware from config.
func setupRateLimit(cfg *config.Config, logger *slog.Logger) gin.HandlerFunc {
	if cfg.RateLimit == "" {
		return nil
	}
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Warn("Invalid RATE_LIMIT value; rate limiting disabled", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		return nil
	}
	return middleware.RateLimit(limiter.New(memorystore.NewStore(), rate))
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
