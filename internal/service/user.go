package service

import (
	"errors"
	"fmt"

	"farm-assets-backend/internal/database/models"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/repository"
	"farm-assets-backend/internal/taxid"
	"farm-assets-backend/internal/validation"

	"gorm.io/gorm"
)

// UserService handles registration and self-service profile updates
type UserService struct {
	repo      repository.UserRepositoryInterface
	hasher    PasswordHasher
	validator *validation.Validator
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, hasher PasswordHasher, validator *validation.Validator) *UserService {
	return &UserService{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
	}
}

// RegisterUserRequest represents the data needed to sign up
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required" example:"Ana Souza"`
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	CPF      string `json:"cpf" validate:"required" example:"529.982.247-25"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
}

// UpdateUserRequest represents the data needed to update the signed in user.
// A new password needs the current one and a matching confirmation.
type UpdateUserRequest struct {
	Name            string `json:"name" validate:"required" example:"Ana Souza"`
	Email           string `json:"email" validate:"required,email" example:"ana@example.com"`
	CPF             string `json:"cpf" validate:"required" example:"529.982.247-25"`
	OldPassword     string `json:"oldPassword" validate:"required_with=Password" example:"secret123"`
	Password        string `json:"password" validate:"required_with=OldPassword,omitempty,min=6" example:"secret456"`
	ConfirmPassword string `json:"confirmPassword" validate:"required_with=Password,omitempty,eqfield=Password" example:"secret456"`
}

// UserResponse represents the public view of a user
type UserResponse struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Ana Souza"`
	Email string `json:"email" example:"ana@example.com"`
	CPF   string `json:"cpf" example:"52998224725"`
}

// Register creates a user after checking email and CPF uniqueness
func (s *UserService) Register(req *RegisterUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	existing, err := s.find(s.repo.GetByEmail, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicatedEmail
	}

	if !taxid.Validate(req.CPF) {
		return nil, apperrors.ErrInvalidCPF
	}
	cpf := taxid.Normalize(req.CPF)

	existing, err = s.find(s.repo.GetByCPF, cpf)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicatedCPF
	}

	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		CPF:          cpf,
		PasswordHash: hash,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// Update changes the profile of userID and, when requested, its password
func (s *UserService) Update(userID uint, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Email != req.Email {
		existing, err := s.find(s.repo.GetByEmail, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.ErrEmailTaken
		}
	}

	if !taxid.Validate(req.CPF) {
		return nil, apperrors.ErrInvalidCPF
	}
	cpf := taxid.Normalize(req.CPF)

	if user.CPF != cpf {
		existing, err := s.find(s.repo.GetByCPF, cpf)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.ErrCPFTaken
		}
	}

	if req.OldPassword != "" && !s.hasher.CheckPassword(user.PasswordHash, req.OldPassword) {
		return nil, apperrors.ErrPasswordMismatch
	}

	user.Name = req.Name
	user.Email = req.Email
	user.CPF = cpf
	if req.Password != "" {
		hash, err := s.hasher.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return toUserResponse(user), nil
}

// find runs a unique lookup, returning nil without error when nothing matches
func (s *UserService) find(lookup func(string) (*models.User, error), key string) (*models.User, error) {
	user, err := lookup(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		CPF:   user.CPF,
	}
}
