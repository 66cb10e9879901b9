package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
)

// TransactionFilter narrows a ledger query. Dates are inclusive calendar
// dates; nil fields are ignored.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionRepository stores the per-user ledger.
type TransactionRepository interface {
	// List returns every matching transaction of userID, newest first.
	List(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error)
	// ListPage returns one page of matching transactions and the total count.
	ListPage(ctx context.Context, userID string, filter TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error)
	// ListRecent returns the limit newest transactions with their category.
	ListRecent(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
	Get(ctx context.Context, userID, id string) (*models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) error
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, userID, id string) error
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a GORM-backed TransactionRepository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// newestFirst is the ledger order: date, then insertion time, then id.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC").Order("created_at DESC").Order("id DESC")
}

func (r *transactionRepository) filtered(ctx context.Context, userID string, f TransactionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)
	if f.StartDate != nil {
		q = q.Where("date >= ?", calendarDate(*f.StartDate))
	}
	if f.EndDate != nil {
		// Exclusive upper bound keeps the comparison correct whether the
		// driver stores DATE or a timestamp.
		q = q.Where("date < ?", calendarDate(*f.EndDate).AddDate(0, 0, 1))
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	return q
}

func (r *transactionRepository) List(ctx context.Context, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	if err := r.filtered(ctx, userID, filter).Scopes(newestFirst).Find(&txs).Error; err != nil {
		return nil, storeError(err, nil, "transaction.list")
	}
	return txs, nil
}

func (r *transactionRepository) ListPage(
	ctx context.Context,
	userID string,
	filter TransactionFilter,
	page pagination.PageRequest,
) ([]models.Transaction, int64, error) {
	page.Defaults()

	var total int64
	if err := r.filtered(ctx, userID, filter).Count(&total).Error; err != nil {
		return nil, 0, storeError(err, nil, "transaction.count")
	}

	txs := []models.Transaction{}
	err := r.filtered(ctx, userID, filter).
		Preload("Category").
		Scopes(newestFirst, pagination.Paginate(page)).
		Find(&txs).Error
	if err != nil {
		return nil, 0, storeError(err, nil, "transaction.list_page")
	}
	return txs, total, nil
}

func (r *transactionRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Scopes(newestFirst).
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, storeError(err, nil, "transaction.list_recent")
	}
	return txs, nil
}

func (r *transactionRepository) Get(ctx context.Context, userID, id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&tx).Error
	if err != nil {
		return nil, storeError(err, apperrors.ErrTransactionNotFound, "transaction.get")
	}
	return &tx, nil
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return storeError(r.db.WithContext(ctx).Omit("Category").Create(tx).Error, nil, "transaction.create")
}

func (r *transactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	res := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", tx.ID, tx.UserID).
		Updates(map[string]any{
			"category_id": tx.CategoryID,
			"type":        tx.Type,
			"amount":      tx.Amount,
			"description": tx.Description,
			"date":        tx.Date,
			"updated_at":  tx.UpdatedAt,
		})
	if res.Error != nil {
		return storeError(res.Error, nil, "transaction.update")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Transaction{})
	if res.Error != nil {
		return storeError(res.Error, nil, "transaction.delete")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
