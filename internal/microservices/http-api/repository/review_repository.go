package repository

import (
	"servicehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations.
type ReviewRepository interface {
	Create(review *models.Review) error
	FindByMaster(masterID int64) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByMaster(masterID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("master_id = ?", masterID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
