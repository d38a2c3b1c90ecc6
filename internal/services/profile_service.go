package services

import (
	"errors"
	"unicode"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// profileService handles the singleton profile row.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// Get retrieves the singleton profile row.
func (s *profileService) Get() (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, models.ProfileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// Update overwrites the profile row in place. The row identity is fixed;
// only name and currency change.
func (s *profileService) Update(name, currency string) (*models.Profile, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "profile name is required")
	}
	if !validCurrency(currency) {
		return nil, apperrors.ErrInvalidCurrency
	}

	res := s.db.Model(&models.Profile{}).
		Where("id = ?", models.ProfileID).
		Updates(map[string]interface{}{"name": name, "currency": currency})
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrProfileNotFound
	}

	return s.Get()
}

// validCurrency reports whether s is a 3-letter currency code.
func validCurrency(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
