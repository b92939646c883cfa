package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"servicehub/internal/microservices/http-api/dto"
	"servicehub/internal/microservices/http-api/service"
)

type AuthHandler struct {
	authService service.AuthService
	tokenTTL    int64 // access token lifetime in seconds, for responses
}

func NewAuthHandler(authService service.AuthService, tokenTTLSeconds int64) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTLSeconds}
}

// RegisterRoutes registers auth routes; the group should carry rate limiting.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/refresh", h.RefreshToken)
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(service.RegisterInput{
		Username:       req.Username,
		Password:       req.Password,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		UserType:       req.UserType,
		Category:       req.Category,
		City:           req.City,
		BirthDate:      req.BirthDate,
		Gender:         req.Gender,
		About:          req.About,
		Specialization: req.Specialization,
		Description:    req.Description,
		Experience:     req.Experience,
		HourlyRate:     req.HourlyRate,
	})
	if err == service.ErrNameInUse || err == service.ErrEmailInUse {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login authenticates and returns tokens
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		ExpiresIn:    h.tokenTTL,
	})
}

// RefreshToken issues a new access token from a stored refresh token
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newAccessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		AccessToken: newAccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   h.tokenTTL,
	})
}
