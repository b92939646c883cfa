package repository

import (
	"servicehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// CategoryRepository defines the interface for service category data operations.
type CategoryRepository interface {
	Create(category *models.ServiceCategory) error
	FindAll() ([]models.ServiceCategory, error)
	FindByID(id int64) (*models.ServiceCategory, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.ServiceCategory) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindAll() ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(id int64) (*models.ServiceCategory, error) {
	var category models.ServiceCategory
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
