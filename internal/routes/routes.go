// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sanjab/internal/config"
	"sanjab/internal/handlers"
	"sanjab/internal/middleware"
	"sanjab/internal/repositories"
	"sanjab/internal/services/auth"
	"sanjab/internal/services/checkout"
	"sanjab/internal/services/report"
	"sanjab/internal/services/split"
	"sanjab/internal/services/terminal"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	branchRepo := repositories.NewBranchRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	customerRepo := repositories.NewCustomerRepository(db, repositories.CacheService)
	transactionRepo := repositories.NewTransactionRepository(db, customerRepo)

	// Auth service and middleware
	authService := auth.NewService(merchantRepo, repositories.CacheService)
	authMiddleware := middleware.NewAuthMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService)

	// Terminal driver
	driver := terminal.NewSepehrDriver(terminal.SepehrConfig{
		BaseURL: config.GetEnv("TERMINAL_URL", "http://localhost:7070"),
		Timeout: config.GetDurationEnv("TERMINAL_TIMEOUT", 90*time.Second),
		Retries: config.GetIntEnv("TERMINAL_RETRIES", 0),
	})

	// Checkout service with the settlement split policy
	checkoutService := checkout.NewService(transactionRepo, driver, checkout.Config{
		Split: splitConfigFromEnv(),
	})

	reportService := report.NewService(transactionRepo)

	// Handlers
	branchHandler := handlers.NewBranchHandler(branchRepo)
	customerHandler := handlers.NewCustomerHandler(customerRepo)
	transactionHandler := handlers.NewTransactionHandler(checkoutService, customerRepo, merchantRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	// Public auth routes
	api.Post("/otp", authHandler.RequestOTP)
	api.Post("/otp/check", authHandler.VerifyOTP)
	api.Post("/otp/refresh", authHandler.Refresh)

	// Authenticated routes
	authed := api.Use(authMiddleware.Handler)
	authed.Post("/otp/logout", authHandler.Logout)
	authed.Get("/branch", branchHandler.ListBranches)
	authed.Get("/line/dropdown/:branchId", branchHandler.LinesDropdown)
	authed.Get("/customer/credit", customerHandler.GetCredit)
	authed.Post("/transaction", transactionHandler.Create)
	authed.Get("/reports", reportHandler.List)
}

// splitConfigFromEnv loads the split policy, falling back to the
// current production values.
func splitConfigFromEnv() split.Config {
	cfg := split.DefaultConfig()
	if raw := config.GetEnv("SPLIT_THRESHOLD", ""); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			cfg.Threshold = d
		}
	}
	cfg.AbovePercent = config.GetIntEnv("SPLIT_ABOVE_PERCENT", cfg.AbovePercent)
	cfg.BelowPercent = config.GetIntEnv("SPLIT_BELOW_PERCENT", cfg.BelowPercent)
	cfg.PlatformSheba = config.GetEnv("PLATFORM_SHEBA", cfg.PlatformSheba)
	return cfg
}
