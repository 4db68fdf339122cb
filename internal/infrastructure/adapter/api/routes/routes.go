package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/expense-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-analyzer/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	expenseHandler *handler.ExpenseHandler,
	healthHandler *handler.HealthHandler,
) {
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		api.POST("/upload_csv", expenseHandler.UploadCSV)

		api.GET("/transactions", expenseHandler.ListTransactions)
		api.GET("/transactions/other", expenseHandler.ListUncategorized)
		api.GET("/transactions/export", expenseHandler.ExportCSV)

		api.POST("/update_category", expenseHandler.UpdateCategory)
		api.POST("/add_custom_category", expenseHandler.AddCustomCategory)

		api.GET("/expense_summary", expenseHandler.ExpenseSummary)
		api.GET("/categories", expenseHandler.ListCategories)
		api.GET("/rules", expenseHandler.ListRules)
		api.GET("/session", expenseHandler.CurrentSession)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	allowedOrigins []string,
) {
	// RequestID runs first so every later middleware can log the id
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
