package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"servicehub/internal/microservices/http-api/dto"
	"servicehub/internal/microservices/http-api/service"
)

type MasterHandler struct {
	masterService service.MasterService
	reviewService service.ReviewService
}

func NewMasterHandler(masterService service.MasterService, reviewService service.ReviewService) *MasterHandler {
	return &MasterHandler{
		masterService: masterService,
		reviewService: reviewService,
	}
}

// RegisterRoutes registers master directory routes
func (h *MasterHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.GET("/:id", h.GetByID)
	router.GET("/:id/reviews", h.ListReviews)
}

// List returns the master directory, optionally filtered by category
// GET /api/masters?category=
func (h *MasterHandler) List(c *gin.Context) {
	var categoryID int64
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
			return
		}
		categoryID = parsed
	}

	masters, err := h.masterService.ListMasters(c.Request.Context(), categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load masters"})
		return
	}
	c.JSON(http.StatusOK, masters)
}

// GetByID returns one master with user, services, and category
// GET /api/masters/:id
func (h *MasterHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid master ID"})
		return
	}

	master, err := h.masterService.GetMaster(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "master not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load master"})
		return
	}

	c.JSON(http.StatusOK, master)
}

// ListReviews returns all reviews for a master
// GET /api/masters/:id/reviews
func (h *MasterHandler) ListReviews(c *gin.Context) {
	masterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid master ID"})
		return
	}

	reviews, err := h.reviewService.GetReviewsByMaster(masterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Search filters the master directory
// GET /api/search?query=&city=&category=
func (h *MasterHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters"})
		return
	}

	masters, err := h.masterService.SearchMasters(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, masters)
}
