package dto

import "servicehub/internal/microservices/http-api/models"

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=8"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	UserType  string `json:"userType" binding:"required,oneof=client master"`
	Category  string `json:"category"`
	City      string `json:"city"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
	About     string `json:"about"`

	// Master profile fields, required only when userType is "master"
	Specialization string  `json:"specialization"`
	Description    string  `json:"description"`
	Experience     string  `json:"experience"`
	HourlyRate     float64 `json:"hourlyRate"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful authentication
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
	ExpiresIn    int64        `json:"expiresIn"` // seconds
}

// RefreshTokenRequest: payload for refreshing access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshResponse: response payload after refreshing access token
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"` // e.g., "Bearer"
	ExpiresIn   int64  `json:"expiresIn"` // seconds
}
