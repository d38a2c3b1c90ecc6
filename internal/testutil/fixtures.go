package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Dec parses a decimal string, failing the test on bad input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal fixture %q: %v", s, err)
	}
	return d
}

// CreateTestAccount creates a bank account with a zero opening balance.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithAmount(t, db, "0")
}

// CreateTestAccountWithAmount creates a bank account with the given opening balance.
func CreateTestAccountWithAmount(t *testing.T, db *gorm.DB, amount string) *models.Account {
	t.Helper()

	n := nextID()
	account := &models.Account{
		Name:        fmt.Sprintf("Holder %d", n),
		AccountName: fmt.Sprintf("Account %d", n),
		Amount:      Dec(t, amount),
		CardType:    models.CardTypeBank,
		IsActive:    true,
		Color:       "#2196F3",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  fmt.Sprintf("Category %d", nextID()),
		Icon:  "shopping_cart",
		Color: "#4CAF50",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction with the given type, amount,
// and ISO-8601 timestamp.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID, categoryID uint, txType models.TransactionType, amount, timestamp string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		Name:       fmt.Sprintf("Transaction %d", nextID()),
		Amount:     Dec(t, amount),
		Time:       timestamp,
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       txType,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
