package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// Create creates a new account. The id is assigned by the database;
// caller-supplied ids are rejected.
func (s *accountService) Create(account *models.Account) (*models.Account, error) {
	if account.ID != 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account id is auto-assigned")
	}
	if account.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "holder name is required")
	}
	if account.AccountName == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}
	if !account.CardType.Valid() {
		return nil, apperrors.ErrInvalidCardType
	}

	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// GetAll retrieves all accounts in insertion order.
func (s *accountService) GetAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("id ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetByID retrieves an account by id.
func (s *accountService) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// Update overwrites an account. Returns false when no row was affected;
// a missing row is a no-op, not an error.
func (s *accountService) Update(account *models.Account) (bool, error) {
	if account.ID == 0 {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "account id is required")
	}
	if !account.CardType.Valid() {
		return false, apperrors.ErrInvalidCardType
	}

	res := s.db.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Select("name", "account_name", "amount", "card_type", "is_active", "color").
		Updates(account)
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes an account by id. Deletion does not cascade to
// transactions; rows referencing the account keep their foreign key and
// resolve to a placeholder in joined reads.
func (s *accountService) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.Account{}, id)
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected > 0, nil
}
