package routes

import (
	"time"

	"github.com/dealflowhq/dealflow-api/internal/application/service"
	"github.com/dealflowhq/dealflow-api/internal/config"
	"github.com/dealflowhq/dealflow-api/internal/domain/entitlement"
	domainRepo "github.com/dealflowhq/dealflow-api/internal/domain/repository"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/handler"
	"github.com/dealflowhq/dealflow-api/internal/presentation/http/middleware"
	"github.com/dealflowhq/dealflow-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Settings    *handler.SettingsHandler
	Entitlement *handler.EntitlementHandler
	Scan        *handler.ScanHandler
	Trade       *handler.TradeHandler
	Folder      *handler.FolderHandler
	CoinFlip    *handler.CoinFlipHandler
	Dashboard   *handler.DashboardHandler
	Webhook     *handler.WebhookHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager         *utils.JWTManager
	Cfg                *config.Config
	IdempotencyRepo    domainRepo.IdempotencyRepository
	EntitlementService *service.EntitlementService
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Billing webhook authenticates with a shared secret, not a JWT
		v1.POST("/webhooks/revenuecat", h.Webhook.HandleSubscriptionEvent)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Subscription status and trial
	protected.GET("/entitlements", h.Entitlement.GetStatus)
	protected.POST("/entitlements/trial", h.Entitlement.ActivateTrial)

	// Card scanning (quota is enforced inside the service, not by a gate,
	// so free users can use their daily allowance)
	protected.GET("/scans/quota", h.Scan.GetScanLimit)
	protected.POST("/scans", h.Scan.Scan)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)

	registerTradeRoutes(protected, h, deps)
	registerFolderRoutes(protected, h, deps)
	registerCoinFlipRoutes(protected, h)
}

func registerTradeRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	trades := protected.Group("/trades")
	{
		trades.GET("", h.Trade.ListTrades)
		// Saving history is a pro capability; idempotency protects against
		// mobile clients retrying the save
		trades.POST("",
			middleware.RequireFeature(deps.EntitlementService, entitlement.FeatureHistory),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Trade.SaveTrade)
		trades.GET("/:id", h.Trade.GetTrade)
		trades.DELETE("/:id", h.Trade.DeleteTrade)
		trades.PUT("/:id/folder",
			middleware.RequireFeature(deps.EntitlementService, entitlement.FeatureFolder),
			h.Trade.MoveTrade)
	}
}

func registerFolderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	folders := protected.Group("/folders")
	folders.Use(middleware.RequireFeature(deps.EntitlementService, entitlement.FeatureFolder))
	{
		folders.GET("", h.Folder.ListFolders)
		folders.POST("", h.Folder.CreateFolder)
		folders.PUT("/:id", h.Folder.UpdateFolder)
		folders.DELETE("/:id", h.Folder.DeleteFolder)
	}
}

func registerCoinFlipRoutes(protected *gin.RouterGroup, h *Handlers) {
	coinflips := protected.Group("/coinflips")
	{
		coinflips.GET("", h.CoinFlip.ListFlips)
		coinflips.POST("", h.CoinFlip.RecordFlip)
	}
}
