package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"servicehub/internal/microservices/http-api/dto"
	"servicehub/internal/microservices/http-api/middleware"
	"servicehub/internal/microservices/http-api/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes (parent group carries auth middleware)
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("", h.Create)
}

// Create stores a review and refreshes the master's rating
// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	clientID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(clientID, req)
	if err != nil {
		if errors.Is(err, service.ErrMasterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
