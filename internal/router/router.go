// Package router assembles the HTTP API: services, handlers, middleware
// and routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "budgetly/internal/docs" // registers the swagger spec
	"budgetly/internal/handlers"
	"budgetly/internal/middleware"
	"budgetly/internal/repository"
	"budgetly/internal/services"
)

// Services is the business layer the routes are served from.
type Services struct {
	Users        services.UserServicer
	Categories   services.CategoryServicer
	Transactions services.TransactionServicer
	Budgets      services.BudgetServicer
	Dashboard    services.DashboardServicer
	Audit        services.AuditServicer
}

// NewServices wires repositories and services over db.
func NewServices(db *gorm.DB) Services {
	categories := repository.NewCategoryRepository(db)
	transactions := repository.NewTransactionRepository(db)
	budgets := repository.NewBudgetRepository(db)

	return Services{
		Users:        services.NewUserService(db),
		Categories:   services.NewCategoryService(categories),
		Transactions: services.NewTransactionService(transactions, categories),
		Budgets:      services.NewBudgetService(budgets, transactions, categories),
		Dashboard:    services.NewDashboardService(transactions, categories),
		Audit:        services.NewAuditService(db),
	}
}

// Options configures the HTTP surface.
type Options struct {
	CORSOrigin string
	Tokens     *middleware.TokenManager
}

// New builds the Gin engine.
func New(svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users, opts.Tokens)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Audit)
	budgetHandler := handlers.NewBudgetHandler(svc.Budgets, svc.Audit)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigin))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(opts.Tokens))

	protected.GET("/profile", authHandler.GetProfile)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/recent", transactionHandler.GetRecentTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.POST("", budgetHandler.UpsertBudget)
	budgets.GET("/analysis", budgetHandler.GetBudgetAnalysis)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	protected.GET("/dashboard/summary", dashboardHandler.GetSummary)

	return router
}
