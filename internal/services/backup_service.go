package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// BackupDocument is the JSON serialization of the entire dataset. Transaction
// entries carry the denormalized account/category display fields so the file
// is readable on its own; only the raw columns are written back on restore.
type BackupDocument struct {
	Accounts     []models.Account           `json:"accounts"`
	Categories   []models.Category          `json:"categories"`
	Transactions []models.TransactionDetail `json:"transactions"`
}

// backupService serializes and atomically restores the full dataset.
type backupService struct {
	db                 *gorm.DB
	accountService     AccountServicer
	categoryService    CategoryServicer
	transactionService TransactionServicer
}

// NewBackupService creates a new BackupServicer.
func NewBackupService(db *gorm.DB, accountService AccountServicer, categoryService CategoryServicer, transactionService TransactionServicer) BackupServicer {
	return &backupService{
		db:                 db,
		accountService:     accountService,
		categoryService:    categoryService,
		transactionService: transactionService,
	}
}

// Export reads all three tables through the entity services and returns the
// dataset as UTF-8 JSON with two-space indentation.
func (s *backupService) Export() ([]byte, error) {
	accounts, err := s.accountService.GetAll()
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryService.GetAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionService.GetAllDetails(nil)
	if err != nil {
		return nil, err
	}

	doc := BackupDocument{
		Accounts:     accounts,
		Categories:   categories,
		Transactions: transactions,
	}
	raw, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return raw, nil
}

// Restore atomically replaces the entire dataset with the document's
// contents. Parsing and validation happen before any mutation; afterwards a
// single database transaction deletes transactions, accounts, then
// categories, and inserts categories, accounts, then transactions, each row
// keeping its original primary key so relationships encoded by id survive.
// Any failure rolls the whole transaction back and the prior dataset stays
// intact.
func (s *backupService) Restore(raw []byte) error {
	var doc BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return apperrors.Wrap(apperrors.ErrMalformedBackup, err)
	}
	if err := validateDocument(&doc); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Delete order matters: transactions hold the foreign keys, so they
		// go first; inserts run in the reverse order.
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Account{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
			return err
		}

		if len(doc.Categories) > 0 {
			if err := tx.Create(&doc.Categories).Error; err != nil {
				return err
			}
		}
		if len(doc.Accounts) > 0 {
			if err := tx.Create(&doc.Accounts).Error; err != nil {
				return err
			}
		}
		if len(doc.Transactions) > 0 {
			rows := make([]models.Transaction, 0, len(doc.Transactions))
			for _, detail := range doc.Transactions {
				rows = append(rows, detail.Row())
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrRestoreFailed, err)
	}
	return nil
}

// validateDocument rejects documents with missing ids or unknown enum
// variants before any database mutation begins.
func validateDocument(doc *BackupDocument) error {
	for _, account := range doc.Accounts {
		if account.ID == 0 {
			return apperrors.WithMessage(apperrors.ErrMalformedBackup, "account with missing id")
		}
		if !account.CardType.Valid() {
			return apperrors.ErrInvalidCardType
		}
	}
	for _, category := range doc.Categories {
		if category.ID == 0 {
			return apperrors.WithMessage(apperrors.ErrMalformedBackup, "category with missing id")
		}
	}
	for _, transaction := range doc.Transactions {
		if transaction.ID == 0 {
			return apperrors.WithMessage(apperrors.ErrMalformedBackup, "transaction with missing id")
		}
		if !transaction.Type.Valid() {
			return apperrors.ErrInvalidTransactionType
		}
	}
	return nil
}
