package models

import "github.com/shopspring/decimal"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Valid reports whether the transaction type is one of the known variants.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction represents a monetary event against an account.
// Amount is stored as TEXT and handled as a decimal everywhere to avoid
// binary floating-point drift. Time is an ISO-8601 string; the canonical
// read order is time descending.
//
// AccountID and CategoryID are enforced by the service layer at write time,
// not by a database-level foreign-key constraint.
type Transaction struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `gorm:"type:text;not null" json:"amount"`
	Time        string          `gorm:"not null" json:"time"`
	AccountID   uint            `gorm:"not null" json:"account_id"`
	CategoryID  uint            `gorm:"not null" json:"category_id"`
	Type        TransactionType `gorm:"not null;check:type IN ('expense','income','transfer')" json:"type"`
}

// Placeholder display values for transactions whose account or category has
// been deleted. The raw row is kept and still shown; only the display fields
// fall back.
const (
	UnknownAccountName  = "Unknown account"
	UnknownCategoryName = "Unknown category"
)

// TransactionDetail is a transaction joined with the display fields of its
// account and category. Rows whose account or category no longer exists are
// not dropped; their display fields resolve to the Unknown placeholders.
type TransactionDetail struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Time          string          `json:"time"`
	AccountID     uint            `json:"account_id"`
	CategoryID    uint            `json:"category_id"`
	Type          TransactionType `json:"type"`
	AccountName   string          `json:"account_name"`
	CategoryName  string          `json:"category_name"`
	CategoryIcon  string          `json:"category_icon"`
	CategoryColor string          `json:"category_color"`
}

// Row returns the raw transaction row behind a detail view, dropping the
// denormalized display fields.
func (d TransactionDetail) Row() Transaction {
	return Transaction{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Amount:      d.Amount,
		Time:        d.Time,
		AccountID:   d.AccountID,
		CategoryID:  d.CategoryID,
		Type:        d.Type,
	}
}
