package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"budgetly/internal/analytics"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/repository"
)

// Recent transaction limits.
const (
	DefaultRecentLimit = analytics.RecentTransactionsLimit
	MaxRecentLimit     = 50
)

// transactionService handles ledger business logic.
type transactionService struct {
	transactions repository.TransactionRepository
	categories   repository.CategoryRepository
	now          func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(transactions repository.TransactionRepository, categories repository.CategoryRepository) TransactionServicer {
	return &transactionService{
		transactions: transactions,
		categories:   categories,
		now:          time.Now,
	}
}

// validate checks the input, resolves its category and returns the
// normalised calendar date.
func (s *transactionService) validate(ctx context.Context, in *TransactionInput) (*models.Category, error) {
	in.Amount = analytics.RoundMoney(in.Amount)
	if !in.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if !in.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if in.CategoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category ID is required")
	}

	if in.Date.IsZero() {
		in.Date = s.now()
	}
	in.Date = analytics.DateOf(in.Date)

	category, err := s.categories.Get(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if string(category.Type) != string(in.Type) {
		return nil, apperrors.ErrCategoryTypeMismatch
	}
	return category, nil
}

// CreateTransaction records a new income or expense for the user.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, in TransactionInput) (*models.Transaction, error) {
	category, err := s.validate(ctx, &in)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		UserID:      userID,
		CategoryID:  in.CategoryID,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}

	tx.Category = category
	return tx, nil
}

// UpdateTransaction replaces every editable field of an existing transaction.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, in TransactionInput) (*models.Transaction, error) {
	tx, err := s.transactions.Get(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	category, err := s.validate(ctx, &in)
	if err != nil {
		return nil, err
	}

	tx.CategoryID = in.CategoryID
	tx.Type = in.Type
	tx.Amount = in.Amount
	tx.Description = in.Description
	tx.Date = in.Date
	tx.UpdatedAt = s.now()
	if err := s.transactions.Update(ctx, tx); err != nil {
		return nil, err
	}

	tx.Category = category
	return tx, nil
}

// DeleteTransaction permanently removes a transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	return s.transactions.Delete(ctx, userID, transactionID)
}

// GetTransactionByID returns a transaction owned by the user.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	return s.transactions.Get(ctx, userID, transactionID)
}

// GetUserTransactions returns one page of the user's filtered ledger,
// newest first.
func (s *transactionService) GetUserTransactions(
	ctx context.Context,
	userID string,
	page pagination.PageRequest,
	filter repository.TransactionFilter,
) (*pagination.PageResponse[models.Transaction], error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	page.Defaults()

	txs, total, err := s.transactions.ListPage(ctx, userID, filter, page)
	if err != nil {
		return nil, err
	}

	result := pagination.NewPageResponse(txs, page.Page, page.PageSize, total)
	return &result, nil
}

// GetRecentTransactions returns the user's newest transactions. A limit
// outside 1..MaxRecentLimit is replaced by the default or clamped.
func (s *transactionService) GetRecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	return s.transactions.ListRecent(ctx, userID, limit)
}

// ExportTransactions returns the full filtered ledger with categories
// attached, newest first.
func (s *transactionService) ExportTransactions(ctx context.Context, userID string, filter repository.TransactionFilter) ([]models.Transaction, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	txs, err := s.transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range txs {
		c, ok := byID[txs[i].CategoryID]
		if !ok {
			logger.Get().Errorw("transaction references unknown category",
				"user_id", userID, "transaction_id", txs[i].ID, "category_id", txs[i].CategoryID)
			return nil, apperrors.Wrap(apperrors.ErrInternalInconsistency,
				fmt.Errorf("transaction %s references unknown category %q", txs[i].ID, txs[i].CategoryID))
		}
		txs[i].Category = &c
	}
	return txs, nil
}

func validateFilter(f repository.TransactionFilter) error {
	if f.Type != nil && !f.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	return nil
}
