package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// summaryService computes the derived aggregation views. All sums are done
// with decimal arithmetic on the stored TEXT amounts; nothing here
// accumulates in binary floating point.
type summaryService struct {
	db                 *gorm.DB
	accountService     AccountServicer
	transactionService TransactionServicer
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB, accountService AccountServicer, transactionService TransactionServicer) SummaryServicer {
	return &summaryService{
		db:                 db,
		accountService:     accountService,
		transactionService: transactionService,
	}
}

// accountTotals is the income/expense pair accumulated per account.
type accountTotals struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

// AccountSummaries computes income, expense, and current balance per
// account, ordered by account id ascending. Accounts with no transactions
// yield zero totals and a current balance equal to the opening amount.
func (s *summaryService) AccountSummaries() ([]AccountSummary, error) {
	accounts, err := s.accountService.GetAll()
	if err != nil {
		return nil, err
	}

	var rows []models.Transaction
	if err := s.db.
		Select("account_id", "amount", "type").
		Where("type IN ?", []models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense}).
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totals := make(map[uint]accountTotals, len(accounts))
	for _, row := range rows {
		t := totals[row.AccountID]
		switch row.Type {
		case models.TransactionTypeIncome:
			t.income = t.income.Add(row.Amount)
		case models.TransactionTypeExpense:
			t.expense = t.expense.Add(row.Amount)
		}
		totals[row.AccountID] = t
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		t := totals[account.ID]
		summaries = append(summaries, AccountSummary{
			Account:        account,
			TotalIncome:    t.income,
			TotalExpense:   t.expense,
			CurrentBalance: account.Amount.Add(t.income).Sub(t.expense),
		})
	}
	return summaries, nil
}

// Card computes the global summary: opening balance across all accounts
// plus income minus expense across all transactions. Empty tables yield
// zeroes, never nulls.
func (s *summaryService) Card() (*SummaryCard, error) {
	accounts, err := s.accountService.GetAll()
	if err != nil {
		return nil, err
	}

	opening := decimal.Zero
	for _, account := range accounts {
		opening = opening.Add(account.Amount)
	}

	var rows []models.Transaction
	if err := s.db.
		Select("amount", "type").
		Where("type IN ?", []models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense}).
		Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, row := range rows {
		switch row.Type {
		case models.TransactionTypeIncome:
			income = income.Add(row.Amount)
		case models.TransactionTypeExpense:
			expense = expense.Add(row.Amount)
		}
	}

	return &SummaryCard{
		OpeningBalance: opening,
		TotalIncome:    income,
		TotalExpense:   expense,
		CurrentBalance: opening.Add(income).Sub(expense),
	}, nil
}

// GroupedByDate partitions transactions by the date portion of their
// timestamp, optionally filtered to one account. Groups come back ordered
// by date descending, transactions within a group by time descending; the
// group subtotal counts income positive and expense negative, with
// transfers listed but excluded from the total.
func (s *summaryService) GroupedByDate(accountID *uint) ([]DateGroup, error) {
	details, err := s.transactionService.GetAllDetails(accountID)
	if err != nil {
		return nil, err
	}

	var groups []DateGroup
	index := make(map[string]int)
	for _, detail := range details {
		date := dateOf(detail.Time)
		i, ok := index[date]
		if !ok {
			// details arrive newest first, so first-seen order is already
			// date descending
			i = len(groups)
			index[date] = i
			groups = append(groups, DateGroup{Date: date, TotalAmount: decimal.Zero})
		}
		switch detail.Type {
		case models.TransactionTypeIncome:
			groups[i].TotalAmount = groups[i].TotalAmount.Add(detail.Amount)
		case models.TransactionTypeExpense:
			groups[i].TotalAmount = groups[i].TotalAmount.Sub(detail.Amount)
		}
		groups[i].Transactions = append(groups[i].Transactions, detail)
	}
	if groups == nil {
		groups = []DateGroup{}
	}
	return groups, nil
}

// dateOf extracts the YYYY-MM-DD portion of an ISO-8601 timestamp.
func dateOf(timestamp string) string {
	if len(timestamp) < 10 {
		return timestamp
	}
	return timestamp[:10]
}
