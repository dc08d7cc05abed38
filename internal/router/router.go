package router

import (
	"net/http"

	"kampala_finance_backend/internal/config"
	"kampala_finance_backend/internal/handlers"
	"kampala_finance_backend/internal/middleware"
	"kampala_finance_backend/internal/services"
	"kampala_finance_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store services.DataStore, cfg *config.Config) {
	// Initialize Services
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authService := services.NewAuthService(store, jwtManager)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(store)
	debtorHandler := handlers.NewDebtorHandler(store)
	inventoryHandler := handlers.NewInventoryHandler(store)
	settingsHandler := handlers.NewSettingsHandler(store)
	backupHandler := handlers.NewBackupHandler(store)
	reportHandler := handlers.NewReportHandler(store)

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := engine.Group("/api/v1")

	loginLimiter := middleware.NewIPRateLimiter(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler, loginLimiter)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware(authService))
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupTransactionRoutes(authenticated, transactionHandler)
		SetupDebtorRoutes(authenticated, debtorHandler)
		SetupInventoryRoutes(authenticated, inventoryHandler)
		SetupSettingsRoutes(authenticated, settingsHandler)
		SetupDataRoutes(authenticated, backupHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}

// CORS builds the CORS middleware for the dashboard origins.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	corsConfig.AllowCredentials = true
	return cors.New(corsConfig)
}

// SetupPublicAuthRoutes sets up the login route behind the rate limiter.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler, limiter *middleware.IPRateLimiter) {
	group.POST("/login", limiter.Middleware(), authHandler.LoginUser)
}

// SetupAuthenticatedAuthRoutes sets up the session routes.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/logout", authHandler.LogoutUser)
	group.GET("/me", authHandler.GetCurrentUser)
}
