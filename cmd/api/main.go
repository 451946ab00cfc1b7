package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	appmiddleware "fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	goalRepo := repositories.NewSavingsGoalRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	formatter := services.NewDisplayFormatter(&cfg.Display)
	passwordService := services.NewPasswordService(userRepo)
	tokenService := services.NewTokenService(&cfg.JWT)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	authService := services.NewAuthService(
		userRepo,
		refreshTokenRepo,
		blacklistedTokenRepo,
		passwordService,
		tokenService,
		categoryService,
		metrics,
		logger,
	)
	transactionService := services.NewTransactionService(transactionRepo, metrics, logger)
	goalService := services.NewSavingsGoalService(goalRepo, logger)
	summaryService := services.NewSummaryService(
		transactionRepo,
		goalRepo,
		categoryRepo,
		formatter,
		metrics,
		logger,
	)
	demoDataService := services.NewDemoDataService(transactionRepo, categoryRepo, goalRepo, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	goalHandler := handlers.NewSavingsGoalHandler(goalService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	devHandler := handlers.NewDevHandler(demoDataService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	protected := api.Group("", appmiddleware.RequireAuth(tokenService, blacklistedTokenRepo))

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateSavingsGoal)
	goals.GET("", goalHandler.ListSavingsGoals)
	goals.GET("/:id", goalHandler.GetSavingsGoal)
	goals.PUT("/:id", goalHandler.UpdateSavingsGoal)
	goals.DELETE("/:id", goalHandler.DeleteSavingsGoal)

	protected.GET("/summary", summaryHandler.GetSummary)
	protected.GET("/reports", summaryHandler.GetReport)

	// Seed endpoint is for local development only
	if !cfg.IsProduction() {
		protected.POST("/dev/seed", devHandler.SeedDemoData)
	}

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown failed:", err)
	}
}
