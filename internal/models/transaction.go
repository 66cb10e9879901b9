package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is a dated, categorised money movement owned by one user.
// Amount is always positive; the sign is carried by Type.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:varchar(36);not null;index:idx_transactions_user_date" json:"userId"`
	CategoryID  string          `gorm:"type:varchar(36);not null;index" json:"categoryId"`
	Type        TransactionType `gorm:"size:16;not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Description string          `gorm:"type:text;not null" json:"description"`
	// Date is a calendar date stored at UTC midnight.
	Date time.Time `gorm:"type:date;not null;index:idx_transactions_user_date" json:"date"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
