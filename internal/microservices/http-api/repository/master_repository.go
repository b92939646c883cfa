package repository

import (
	"servicehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// MasterRepository defines the interface for master profile data operations.
type MasterRepository interface {
	Create(master *models.Master) error
	FindByID(id int64) (*models.Master, error)
	FindByUserID(userID int64) (*models.Master, error)
	FindAll() ([]models.Master, error)
	FindByCategory(categoryID int64) ([]models.Master, error)
	UpdateRating(masterID int64, rating float64, reviewCount int) error
}

type masterRepository struct {
	db *gorm.DB
}

func NewMasterRepository(db *gorm.DB) MasterRepository {
	return &masterRepository{db: db}
}

func (r *masterRepository) Create(master *models.Master) error {
	return r.db.Create(master).Error
}

func (r *masterRepository) FindByID(id int64) (*models.Master, error) {
	var master models.Master
	if err := r.db.Preload("User").Preload("Services").First(&master, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &master, nil
}

func (r *masterRepository) FindByUserID(userID int64) (*models.Master, error) {
	var master models.Master
	if err := r.db.Where("user_id = ?", userID).First(&master).Error; err != nil {
		return nil, err
	}
	return &master, nil
}

func (r *masterRepository) FindAll() ([]models.Master, error) {
	var masters []models.Master
	if err := r.db.Preload("User").Preload("Services").Find(&masters).Error; err != nil {
		return nil, err
	}
	return masters, nil
}

func (r *masterRepository) FindByCategory(categoryID int64) ([]models.Master, error) {
	var masters []models.Master
	// masters offering at least one service in the category
	sub := r.db.Model(&models.Service{}).Select("master_id").Where("category_id = ?", categoryID)
	if err := r.db.Preload("User").Preload("Services").Where("id IN (?)", sub).Find(&masters).Error; err != nil {
		return nil, err
	}
	return masters, nil
}

func (r *masterRepository) UpdateRating(masterID int64, rating float64, reviewCount int) error {
	return r.db.Model(&models.Master{}).
		Where("id = ?", masterID).
		Updates(map[string]any{"rating": rating, "review_count": reviewCount}).Error
}
