package models

import "github.com/shopspring/decimal"

// CardType represents the kind of store of money an account is
type CardType string

const (
	CardTypeCash   CardType = "cash"
	CardTypeWallet CardType = "wallet"
	CardTypeBank   CardType = "bank"
)

// Valid reports whether the card type is one of the known variants.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeCash, CardTypeWallet, CardTypeBank:
		return true
	}
	return false
}

// Account represents a store of money (cash, wallet, or bank account).
// Amount is the opening balance; it is never mutated by transactions.
// Transaction activity is aggregated separately on read.
type Account struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	AccountName string          `gorm:"not null" json:"account_name"`
	Amount      decimal.Decimal `gorm:"type:text;not null" json:"amount"`
	CardType    CardType        `gorm:"not null;check:card_type IN ('cash','wallet','bank')" json:"card_type"`
	IsActive    bool            `gorm:"not null;default:1;check:is_active IN (0,1)" json:"is_active"`
	Color       string          `json:"color"`
}
