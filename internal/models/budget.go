package models

import "github.com/shopspring/decimal"

// Budget is a monthly allocation for one expense category. At most one row
// exists per (user, category, month, year); writes go through an upsert on
// that key.
type Budget struct {
	Base
	UserID     string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_budgets_period" json:"userId"`
	CategoryID string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_budgets_period" json:"categoryId"`
	Month      int             `gorm:"not null;uniqueIndex:idx_budgets_period" json:"month"`
	Year       int             `gorm:"not null;uniqueIndex:idx_budgets_period" json:"year"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
