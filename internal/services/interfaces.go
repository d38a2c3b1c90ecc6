package services

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// ProfileServicer defines the contract for the singleton profile row.
type ProfileServicer interface {
	Get() (*models.Profile, error)
	Update(name, currency string) (*models.Profile, error)
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	Create(account *models.Account) (*models.Account, error)
	GetAll() ([]models.Account, error)
	GetByID(id uint) (*models.Account, error)
	Update(account *models.Account) (bool, error)
	Delete(id uint) (bool, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	Create(category *models.Category) (*models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Update(category *models.Category) (bool, error)
	Delete(id uint) (bool, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	Create(transaction *models.Transaction) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	GetByID(id uint) (*models.Transaction, error)
	Update(transaction *models.Transaction) (bool, error)
	Delete(id uint) (bool, error)
	GetPage(page pagination.PageRequest, accountID *uint) (*pagination.PageResponse[models.TransactionDetail], error)
	GetAllDetails(accountID *uint) ([]models.TransactionDetail, error)
}

// AccountSummary combines an account with its derived totals.
// CurrentBalance = opening amount + income - expense, scoped to the
// account's transactions.
type AccountSummary struct {
	Account        models.Account  `json:"account"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// SummaryCard holds the global totals across all accounts and transactions.
// Every field is zero, never null, when the tables are empty.
type SummaryCard struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// DateGroup is one calendar date's transactions with a signed subtotal
// (income positive, expense negative; transfers listed but not counted).
type DateGroup struct {
	Date         string                     `json:"date"`
	TotalAmount  decimal.Decimal            `json:"total_amount"`
	Transactions []models.TransactionDetail `json:"transactions"`
}

// SummaryServicer defines the contract for the derived aggregation views.
type SummaryServicer interface {
	AccountSummaries() ([]AccountSummary, error)
	Card() (*SummaryCard, error)
	GroupedByDate(accountID *uint) ([]DateGroup, error)
}

// BackupServicer defines the contract for full-dataset export and restore.
type BackupServicer interface {
	Export() ([]byte, error)
	Restore(raw []byte) error
}
