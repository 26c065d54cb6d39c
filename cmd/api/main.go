package main

import (
	"log"
	"os"
	"time"

	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/config"
	"github.com/dealflowhq/dealflow-api/internal/infrastructure/database"
	"github.com/dealflowhq/dealflow-api/internal/infrastructure/repository"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/handler"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/routes"
	"github.com/dealflowhq/dealflow-api/pkg/email"
	"github.com/dealflowhq/dealflow-api/pkg/oauth"
	"github.com/dealflowhq/dealflow-api/pkg/revenuecat"
	"github.com/dealflowhq/dealflow-api/pkg/scanner"
	"github.com/dealflowhq/dealflow-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	coinFlipRepo := repository.NewCoinFlipRepository(db)
	scanUsageRepo := repository.NewScanUsageRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize the card recognition client
	var recognizer scanner.Client
	if cfg.Scan.WebhookURL != "" {
		recognizer = scanner.NewWebhookClient(cfg.Scan.WebhookURL, time.Duration(cfg.Scan.TimeoutSeconds)*time.Second)
	} else {
		log.Printf("Warning: no scan webhook configured, card recognition disabled")
		recognizer = scanner.NewNullClient()
	}

	// Initialize the subscription platform client
	var platform revenuecat.Client
	if cfg.RevenueCat.APIKey != "" {
		platform = revenuecat.NewClient(cfg.RevenueCat.APIKey)
	} else {
		log.Printf("Warning: no RevenueCat API key configured, platform entitlements disabled")
		platform = revenuecat.NewNullClient()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService)
	settingsService := service.NewSettingsService(settingsRepo)
	entitlementService := service.NewEntitlementService(userRepo, platform, cfg.RevenueCat.EntitlementID, cfg.Trial.Days)
	scanService := service.NewScanService(entitlementService, scanUsageRepo, recognizer, cfg.Scan.FreeDailyLimit)
	tradeService := service.NewTradeService(tradeRepo, folderRepo)
	folderService := service.NewFolderService(folderRepo, tradeRepo)
	coinFlipService := service.NewCoinFlipService(coinFlipRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, scanUsageRepo)
	billingService := service.NewBillingService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, googleOAuthService),
		Settings:    handler.NewSettingsHandler(settingsService),
		Entitlement: handler.NewEntitlementHandler(entitlementService),
		Scan:        handler.NewScanHandler(scanService),
		Trade:       handler.NewTradeHandler(tradeService),
		Folder:      handler.NewFolderHandler(folderService),
		CoinFlip:    handler.NewCoinFlipHandler(coinFlipService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
		Webhook:     handler.NewWebhookHandler(billingService, cfg.RevenueCat.WebhookSecret),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:         jwtManager,
		Cfg:                cfg,
		IdempotencyRepo:    idempotencyRepo,
		EntitlementService: entitlementService,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
