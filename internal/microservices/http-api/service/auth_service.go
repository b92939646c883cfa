package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"servicehub/internal/config"
	"servicehub/internal/microservices/http-api/middleware/auth"
	"servicehub/internal/microservices/http-api/models"
	"servicehub/internal/microservices/http-api/repository"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is the verified identity carried by an access token.
type Claims struct {
	UserID   int64
	Email    string
	UserType string
}

// RegisterInput carries the registration payload into the service layer.
type RegisterInput struct {
	Username   string
	Password   string
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	UserType   string
	City       string
	BirthDate  string
	Gender     string
	About      string
	Category   string

	// Master profile fields, used when UserType is "master"
	Specialization string
	Description    string
	Experience     string
	HourlyRate     float64
}

type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(email, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(refreshToken string) (newAccessToken string, err error)
	ValidateToken(tokenString string) (*Claims, error)
	// VerifyCredential is the websocket gateway's credential check: bearer
	// token in, verified user id out.
	VerifyCredential(tokenString string) (int64, error)
}

type authService struct {
	userRepo         repository.UserRepository
	masterRepo       repository.MasterRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	masterRepo repository.MasterRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		masterRepo:       masterRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        cfg.JWTSecret,
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
	}
}

// Register creates a new user and, for master accounts, the master profile.
func (s *authService) Register(input RegisterInput) (*models.User, error) {
	// Check if user exists
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, ErrNameInUse
	}

	// Check if email exists
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailInUse
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	userType := input.UserType
	if userType == "" {
		userType = models.UserTypeClient
	}

	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashedPassword,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		UserType:  userType,
		Category:  input.Category,
		City:      input.City,
		BirthDate: input.BirthDate,
		Gender:    input.Gender,
		About:     input.About,
	}

	if err := s.userRepo.Create(user); err != nil {
		// the existence checks above race with concurrent registrations
		if repository.IsDuplicateKey(err) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	if userType == models.UserTypeMaster {
		master := &models.Master{
			UserID:         user.ID,
			Specialization: input.Specialization,
			Description:    input.Description,
			Experience:     input.Experience,
			HourlyRate:     input.HourlyRate,
		}
		if err := s.masterRepo.Create(master); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// Login authenticates a user and returns access and refresh tokens upon success.
func (s *authService) Login(email, password string) (string, string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return "", "", nil, err
	}

	return accessToken, refreshToken, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"user_type": user.UserType,
		"exp":       time.Now().Add(s.accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) generateRefreshToken(user *models.User) (string, error) {
	refreshToken := &models.RefreshToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return refreshToken.Token, nil
}

func (s *authService) RefreshAccessToken(refreshTokenString string) (string, error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(refreshTokenString)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}

	// Check expiration
	if time.Now().After(refreshToken.ExpiresAt) {
		s.refreshTokenRepo.Delete(refreshToken.ID)
		return "", errors.New("refresh token expired")
	}

	user, err := s.userRepo.FindByID(refreshToken.UserID)
	if err != nil {
		return "", err
	}

	return s.generateAccessToken(user)
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// JSON numbers decode as float64
	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	userType, _ := mapClaims["user_type"].(string)

	return &Claims{
		UserID:   int64(userID),
		Email:    email,
		UserType: userType,
	}, nil
}

func (s *authService) VerifyCredential(tokenString string) (int64, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
