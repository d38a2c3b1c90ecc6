package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// Create creates a new category. The id is assigned by the database.
func (s *categoryService) Create(category *models.Category) (*models.Category, error) {
	if category.ID != 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category id is auto-assigned")
	}
	if category.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// GetAll retrieves all categories in insertion order.
func (s *categoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetByID retrieves a category by id.
func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// Update overwrites a category. Returns false when no row was affected.
func (s *categoryService) Update(category *models.Category) (bool, error) {
	if category.ID == 0 {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "category id is required")
	}

	res := s.db.Model(&models.Category{}).
		Where("id = ?", category.ID).
		Select("name", "description", "icon", "color").
		Updates(category)
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes a category by id. Transactions referencing it are kept.
func (s *categoryService) Delete(id uint) (bool, error) {
	res := s.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected > 0, nil
}
