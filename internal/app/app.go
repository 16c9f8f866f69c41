package app

import (
	"fmt"

	"projectmart_backend/database"
	"projectmart_backend/internal/assets"
	"projectmart_backend/internal/config"
	"projectmart_backend/internal/email"
	"projectmart_backend/internal/forms"
	"projectmart_backend/internal/logger"
	"projectmart_backend/internal/middleware"
	"projectmart_backend/internal/payments"
	"projectmart_backend/internal/repositories"
	"projectmart_backend/internal/routes"
	"projectmart_backend/internal/services"
	"projectmart_backend/internal/storage"
	"projectmart_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the whole backend: config, logging, database, schema registry,
// storage, services, router. It blocks serving HTTP until the process dies.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("starting projectmart backend", "env", cfg.Server.Env, "port", cfg.Server.Port)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	registry, err := BuildRegistry()
	if err != nil {
		return err
	}

	if err := database.Migrate(db, registry); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	container, err := BuildServices(cfg, registry)
	if err != nil {
		return err
	}

	userRepo := repositories.NewUserRepository()
	if err := services.SeedFirstUser(db, userRepo, cfg.FirstUserName, cfg.FirstUserPassword); err != nil {
		return fmt.Errorf("seed first user: %w", err)
	}

	router := SetupRouter(cfg, db, registry, container)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("listening", "addr", addr)
	return router.Run(addr)
}

// BuildRegistry assembles the submission schema registry and fails fast if
// any schema's projector and column list disagree.
func BuildRegistry() (*forms.Registry, error) {
	registry, err := forms.NewRegistry(forms.DefaultEntries())
	if err != nil {
		return nil, fmt.Errorf("build schema registry: %w", err)
	}
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("schema registry invalid: %w", err)
	}
	return registry, nil
}

// BuildServices constructs the service container from configuration.
func BuildServices(cfg *config.Config, registry *forms.Registry) (*services.ServiceContainer, error) {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	assetStore := assets.NewStore(store, cfg.Upload.ThumbnailDim)

	var mail email.Provider = email.NoopProvider{}
	if cfg.SMTP.Host != "" {
		mail = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromEmail: cfg.SMTP.FromEmail,
			NotifyTo:  cfg.SMTP.NotifyTo,
		})
	}

	gateway := payments.NewRazorpayGateway(payments.RazorpayConfig{
		KeyID:    cfg.Payment.KeyID,
		Secret:   cfg.Payment.Secret,
		BaseURL:  cfg.Payment.BaseURL,
		Currency: cfg.Payment.Currency,
	})

	submissionRepo := repositories.NewSubmissionRepository()
	listingRepo := repositories.NewListingRepository()
	userRepo := repositories.NewUserRepository()

	return &services.ServiceContainer{
		SubmissionService: services.NewSubmissionService(registry, assetStore, submissionRepo, mail),
		ListingService:    services.NewListingQueryService(registry, listingRepo),
		AuthService:       services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL),
		PaymentGateway:    gateway,
		EmailService:      mail,
	}, nil
}

// SetupRouter builds the gin engine with the full middleware chain and all
// routes registered. Tests call it directly with their own db handle.
func SetupRouter(cfg *config.Config, db *gorm.DB, registry *forms.Registry, container *services.ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxSize

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	routes.RegisterRoutes(router, cfg, validator.New(), registry, container)

	return router
}
