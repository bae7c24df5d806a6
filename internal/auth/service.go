package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"farm-assets-backend/internal/database/models"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the user lookups needed by the auth service
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthService issues and verifies bearer tokens and checks credentials
type AuthService struct {
	config    *AuthConfig
	userRepo  UserRepository
	validator *validation.Validator
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uint `json:"user_id" example:"1"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SessionRequest represents the request body for opening a session
type SessionRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

// SessionUser is the public view of the authenticated user
type SessionUser struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Ana Souza"`
	Email string `json:"email" example:"ana@example.com"`
	CPF   string `json:"cpf" example:"52998224725"`
}

// SessionResponse represents the response of a successful sign in
type SessionResponse struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, userRepo UserRepository, validator *validation.Validator) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		userRepo:  userRepo,
		validator: validator,
	}, nil
}

// CreateSession checks the credentials and returns the user with a fresh token
func (s *AuthService) CreateSession(req *SessionRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSessionUserUnknown
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrSessionBadPassword
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &SessionResponse{
		User: SessionUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			CPF:   user.CPF,
		},
		Token: token,
	}, nil
}

// GenerateJWT creates a signed token for the user
func (s *AuthService) GenerateJWT(userID uint) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID != 0 {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HashPassword returns the bcrypt hash of password
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash
func (s *AuthService) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
