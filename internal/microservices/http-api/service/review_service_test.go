package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"servicehub/internal/microservices/http-api/dto"
	"servicehub/internal/microservices/http-api/models"
)

func TestReviewService_CreateReview_RecomputesRating(t *testing.T) {
	reviewRepo := new(mockReviewRepository)
	masterRepo := new(mockMasterRepository)
	userRepo := new(mockUserRepository)
	svc := NewReviewService(reviewRepo, masterRepo, userRepo)

	masterRepo.On("FindByID", int64(5)).Return(&models.Master{ID: 5}, nil)
	userRepo.On("FindByID", int64(1)).Return(&models.User{ID: 1, FirstName: "Anna", LastName: "Petrova"}, nil)
	reviewRepo.On("Create", mock.AnythingOfType("*models.Review")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Review).ID = 3
		}).
		Return(nil)
	// the new review plus two prior ones: (5+4+3)/3 = 4.0
	reviewRepo.On("FindByMaster", int64(5)).Return([]models.Review{
		{Rating: 5}, {Rating: 4}, {Rating: 3},
	}, nil)
	masterRepo.On("UpdateRating", int64(5), 4.0, 3).Return(nil)

	review, err := svc.CreateReview(1, dto.CreateReviewRequest{
		MasterID:  5,
		BookingID: 42,
		Rating:    5,
		Comment:   "great work",
	})

	require.NoError(t, err)
	assert.Equal(t, "Anna Petrova", review.ClientName)
	masterRepo.AssertExpectations(t)
}

func TestReviewService_CreateReview_UnknownMaster(t *testing.T) {
	masterRepo := new(mockMasterRepository)
	svc := NewReviewService(new(mockReviewRepository), masterRepo, new(mockUserRepository))

	masterRepo.On("FindByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateReview(1, dto.CreateReviewRequest{MasterID: 404, BookingID: 42, Rating: 5, Comment: "x"})
	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestReviewService_GetReviewsByMaster(t *testing.T) {
	reviewRepo := new(mockReviewRepository)
	svc := NewReviewService(reviewRepo, new(mockMasterRepository), new(mockUserRepository))

	reviewRepo.On("FindByMaster", int64(5)).Return([]models.Review{{ID: 1, Rating: 5}}, nil)

	reviews, err := svc.GetReviewsByMaster(5)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
