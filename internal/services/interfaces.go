package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgetly/internal/analytics"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/repository"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(ctx context.Context, email, password, fullName string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(ctx context.Context, email, password string) (*models.User, error)
}

// CategoryServicer defines the contract for the shared category catalog.
type CategoryServicer interface {
	ListCategories(ctx context.Context, categoryType *models.CategoryType) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	EnsureDefaults(ctx context.Context) (int64, error)
}

// TransactionInput carries the caller-supplied fields of a transaction.
type TransactionInput struct {
	CategoryID  string
	Type        models.TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// TransactionServicer defines the contract for ledger business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID string, in TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID string, page pagination.PageRequest, filter repository.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetRecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
	ExportTransactions(ctx context.Context, userID string, filter repository.TransactionFilter) ([]models.Transaction, error)
}

// BudgetServicer defines the contract for monthly budgets.
type BudgetServicer interface {
	UpsertBudget(ctx context.Context, userID, categoryID string, month, year int, amount decimal.Decimal) (*models.Budget, error)
	ListBudgets(ctx context.Context, userID string, month, year *int) ([]models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
	GetBudgetAnalysis(ctx context.Context, userID string, month, year int) (*analytics.BudgetAnalysis, error)
}

// DashboardServicer defines the contract for the dashboard view.
type DashboardServicer interface {
	GetSummary(ctx context.Context, userID string, rng analytics.DateRange) (*analytics.DashboardSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
