package service

import (
	"errors"

	"gorm.io/gorm"

	"servicehub/internal/microservices/http-api/dto"
	"servicehub/internal/microservices/http-api/models"
	"servicehub/internal/microservices/http-api/repository"
)

var ErrMasterNotFound = errors.New("master not found")

type ReviewService interface {
	CreateReview(clientID int64, req dto.CreateReviewRequest) (*models.Review, error)
	GetReviewsByMaster(masterID int64) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	masterRepo repository.MasterRepository
	userRepo   repository.UserRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	masterRepo repository.MasterRepository,
	userRepo repository.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		masterRepo: masterRepo,
		userRepo:   userRepo,
	}
}

// CreateReview stores the review and recomputes the master's aggregate rating.
func (s *reviewService) CreateReview(clientID int64, req dto.CreateReviewRequest) (*models.Review, error) {
	if _, err := s.masterRepo.FindByID(req.MasterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMasterNotFound
		}
		return nil, err
	}

	client, err := s.userRepo.FindByID(clientID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		MasterID:   req.MasterID,
		ClientID:   clientID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		ClientName: client.FullName(),
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	// Recompute the aggregate from all reviews rather than incrementally,
	// matching how the rating was maintained before
	reviews, err := s.reviewRepo.FindByMaster(req.MasterID)
	if err != nil {
		return nil, err
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	if err := s.masterRepo.UpdateRating(req.MasterID, avg, len(reviews)); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *reviewService) GetReviewsByMaster(masterID int64) ([]models.Review, error) {
	return s.reviewRepo.FindByMaster(masterID)
}
