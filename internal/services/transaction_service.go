package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// timeLayouts are the accepted ISO-8601 timestamp shapes, tried in order.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// Create creates a new transaction. The id is assigned by the database.
// The referenced account and category must exist at write time; the schema
// carries no database-level foreign keys, so this is where the relation is
// enforced.
func (s *transactionService) Create(transaction *models.Transaction) (*models.Transaction, error) {
	if transaction.ID != 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction id is auto-assigned")
	}
	if transaction.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction name is required")
	}
	if !transaction.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	if transaction.Time == "" {
		transaction.Time = time.Now().Format(time.RFC3339)
	} else if !validTimestamp(transaction.Time) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "time must be an ISO-8601 timestamp")
	}

	if err := s.checkReferences(transaction.AccountID, transaction.CategoryID); err != nil {
		return nil, err
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetAll retrieves all raw transaction rows, newest first.
func (s *transactionService) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("time DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetByID retrieves a transaction by id.
func (s *transactionService) GetByID(id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// Update overwrites a transaction. Returns false when no row was affected.
func (s *transactionService) Update(transaction *models.Transaction) (bool, error) {
	if transaction.ID == 0 {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "transaction id is required")
	}
	if !transaction.Type.Valid() {
		return false, apperrors.ErrInvalidTransactionType
	}
	if !validTimestamp(transaction.Time) {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "time must be an ISO-8601 timestamp")
	}
	if err := s.checkReferences(transaction.AccountID, transaction.CategoryID); err != nil {
		return false, err
	}

	res := s.db.Model(&models.Transaction{}).
		Where("id = ?", transaction.ID).
		Select("name", "description", "amount", "time", "account_id", "category_id", "type").
		Updates(transaction)
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a transaction by id.
func (s *transactionService) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// GetPage retrieves one page of joined transaction details, newest first.
//
// The response's HasMore flag is the full-page heuristic; ordering across
// pages is stable only for a write-free paging session. Concurrent inserts
// can shift offsets so that a row repeats or is skipped between pages.
func (s *transactionService) GetPage(page pagination.PageRequest, accountID *uint) (*pagination.PageResponse[models.TransactionDetail], error) {
	page.Defaults()

	var details []models.TransactionDetail
	if err := s.detailQuery(accountID).
		Scopes(pagination.Paginate(page)).
		Scan(&details).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(details, page.Page, page.PageSize)
	return &result, nil
}

// GetAllDetails retrieves every joined transaction detail, newest first,
// optionally filtered to one account.
func (s *transactionService) GetAllDetails(accountID *uint) ([]models.TransactionDetail, error) {
	var details []models.TransactionDetail
	if err := s.detailQuery(accountID).Scan(&details).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return details, nil
}

// detailQuery joins transactions with account and category display fields.
// LEFT JOINs keep rows whose account or category has been deleted; their
// display fields resolve to the Unknown placeholders instead of the row
// silently vanishing from views.
func (s *transactionService) detailQuery(accountID *uint) *gorm.DB {
	q := s.db.Table("transactions AS t").
		Select(`t.id, t.name, t.description, t.amount, t.time, t.account_id, t.category_id, t.type,
			COALESCE(a.name, ?) AS account_name,
			COALESCE(c.name, ?) AS category_name,
			COALESCE(c.icon, '') AS category_icon,
			COALESCE(c.color, '') AS category_color`,
			models.UnknownAccountName, models.UnknownCategoryName).
		Joins("LEFT JOIN accounts AS a ON a.id = t.account_id").
		Joins("LEFT JOIN categories AS c ON c.id = t.category_id")
	if accountID != nil {
		q = q.Where("t.account_id = ?", *accountID)
	}
	return q.Order("t.time DESC, t.id DESC")
}

// checkReferences verifies that the referenced account and category exist.
func (s *transactionService) checkReferences(accountID, categoryID uint) error {
	var count int64
	if err := s.db.Model(&models.Account{}).Where("id = ?", accountID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrAccountNotFound
	}

	if err := s.db.Model(&models.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// validTimestamp reports whether s parses as one of the accepted ISO-8601 layouts.
func validTimestamp(s string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
