package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/webssis/ssis/internal/app/controllers"
	appMigrations "github.com/webssis/ssis/internal/app/migrations"
	appRepos "github.com/webssis/ssis/internal/app/repositories"
	appRoutes "github.com/webssis/ssis/internal/app/routes"
	appServices "github.com/webssis/ssis/internal/app/services"
	"github.com/webssis/ssis/internal/config"
	"github.com/webssis/ssis/internal/db"
	appMiddleware "github.com/webssis/ssis/internal/middleware"
	pkgAuth "github.com/webssis/ssis/internal/pkg/auth"
	"github.com/webssis/ssis/internal/pkg/email"
	"github.com/webssis/ssis/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Gateway     *db.Gateway
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the connection pool and, when enabled, applies pending
// migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	pool, err := db.NewPostgresPool(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if !cfg.Database.AutoMigrate {
		lgr.Info().Msg("Automatic migrations disabled")
		return pool, nil
	}

	if err := RunMigrations(ctx, pool, cfg, lgr); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// RunMigrations applies pending SQL files from the configured migrations
// directory.
func RunMigrations(ctx context.Context, pool db.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(pool, lgr).MigrateFromDirectory(ctx, migrationsDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations complete")
	return nil
}

// NewMailer builds the SMTP-backed notification sender from configuration
func NewMailer(cfg *config.Config, lgr zerolog.Logger) email.EmailService {
	return email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		UseSSL:    cfg.SMTP.UseSSL,
		Timeout:   cfg.SMTPTimeout(),
	}, lgr.With().Str("component", "email").Logger())
}

// BuildDependencies initializes the gateway, repositories, services and
// controllers over pool.
func BuildDependencies(cfg *config.Config, pool db.Pool, mailer email.EmailService, lgr zerolog.Logger) *Dependencies {
	gateway := db.NewGateway(pool, cfg.QueryTimeout(), lgr.With().Str("component", "db").Logger())
	repos := appRepos.NewRepositories(gateway)
	svcs := appServices.NewServices(repos, mailer, pkgAuth.NewHasher(), lgr)

	return &Dependencies{
		Gateway:  gateway,
		Repos:    repos,
		Services: svcs,
		Controllers: appRoutes.Controllers{
			College: appControllers.NewCollegeController(svcs.CollegeService),
			Program: appControllers.NewProgramController(svcs.ProgramService),
			Student: appControllers.NewStudentController(svcs.StudentService),
			Auth:    appControllers.NewAuthController(svcs.AuthService),
			Email:   appControllers.NewEmailController(svcs.NotificationService),
			Health:  appControllers.NewHealthController(gateway),
		},
		Logger: lgr,
	}
}

func ginMode(mode string) string {
	switch strings.ToLower(mode) {
	case "production", "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// SetupRouter builds the gin engine with the middleware chain and all routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))
	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Logger(lgr),
		appMiddleware.Recovery(lgr),
		appMiddleware.CORS(cfg.CORS.AllowedOrigins),
	)

	appRoutes.SetupRouter(router, deps.Controllers)

	lgr.Info().Int("routes", len(router.Routes())).Msg("Router configured")
	return router
}
