package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-manager/internal/config"
	"expense-manager/internal/database"
	"expense-manager/internal/handlers"
	custommw "expense-manager/internal/middleware"
	"expense-manager/internal/pdf"
	"expense-manager/internal/repositories"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	e := buildServer(cfg, db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server crashed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

func buildServer(cfg *config.Config, db *database.DB) *echo.Echo {
	expenseRepo := repositories.NewExpenseRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	backupRepo := repositories.NewBackupRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	aggregation := services.NewAggregationService()
	dateRange := services.NewDateRangeService()
	chartRenderer := services.NewChartRenderer()
	docBuilder := pdf.NewBuilder(&cfg.Report)

	expenseService := services.NewExpenseService(expenseRepo, metrics)
	budgetService := services.NewBudgetService(budgetRepo, metrics)
	categoryService := services.NewCategoryService(categoryRepo, metrics)
	reportService := services.NewReportService(
		expenseRepo, budgetRepo, aggregation, dateRange, chartRenderer, docBuilder, metrics, &cfg.Report)
	dashboardService := services.NewDashboardService(expenseRepo, budgetRepo, categoryRepo, dateRange, aggregation)
	backupService := services.NewBackupService(backupRepo, metrics)

	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	backupHandler := handlers.NewBackupHandler(backupService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	reports := api.Group("/reports")
	reports.GET("", reportHandler.GetReport)
	reports.GET("/download", reportHandler.DownloadReport)
	reports.GET("/status", reportHandler.GetReportStatus)

	api.GET("/dashboard/stats", dashboardHandler.GetDashboardStats)

	backup := api.Group("/backup")
	backup.GET("/export", backupHandler.ExportBackup)
	backup.POST("/import", backupHandler.ImportBackup)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(expenseRepo, backupRepo)
		dev := api.Group("/dev")
		dev.POST("/generate-test-data", devHandler.GenerateTestData)
		dev.DELETE("/test-data", devHandler.ClearTestData)
		slog.Info("development endpoints enabled")
	}

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	return e
}
