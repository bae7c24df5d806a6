package service_test

import (
	"errors"
	"testing"

	"farm-assets-backend/internal/database/models"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/mocks"
	"farm-assets-backend/internal/service"
	"farm-assets-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	mockHasher  *mocks.MockPasswordHasher
	userService *service.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockHasher = mocks.NewMockPasswordHasher(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockRepo, suite.mockHasher, validation.New())
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validRegistration() *service.RegisterUserRequest {
	return &service.RegisterUserRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		CPF:      "529.982.247-25",
		Password: "secret123",
	}
}

func storedUser() *models.User {
	return &models.User{
		BaseModel:    models.BaseModel{ID: 7},
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		CPF:          "52998224725",
		PasswordHash: "stored-hash",
	}
}

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	var validationErr *apperrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	messages := make([]string, len(validationErr.Messages))
	for i, m := range validationErr.Messages {
		messages[i] = m.Message
	}
	return messages
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	req := validRegistration()

	suite.mockRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByCPF("52998224725").Return(nil, gorm.ErrRecordNotFound)
	suite.mockHasher.EXPECT().HashPassword("secret123").Return("hashed", nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		assert.Equal(suite.T(), "52998224725", user.CPF)
		assert.Equal(suite.T(), "hashed", user.PasswordHash)
		user.ID = 1
		return nil
	})

	resp, err := suite.userService.Register(req)

	suite.Require().NoError(err)
	suite.Equal(&service.UserResponse{ID: 1, Name: "Ana Souza", Email: "ana@example.com", CPF: "52998224725"}, resp)
}

func (suite *UserServiceTestSuite) TestRegister_MissingFields() {
	_, err := suite.userService.Register(&service.RegisterUserRequest{})

	suite.Equal([]string{
		"name is a required field",
		"email is a required field",
		"cpf is a required field",
		"password is a required field",
	}, messagesOf(suite.T(), err))
}

func (suite *UserServiceTestSuite) TestRegister_DuplicatedEmail() {
	suite.mockRepo.EXPECT().GetByEmail("ana@example.com").Return(storedUser(), nil)

	_, err := suite.userService.Register(validRegistration())

	suite.ErrorIs(err, apperrors.ErrDuplicatedEmail)
}

func (suite *UserServiceTestSuite) TestRegister_InvalidCPF() {
	req := validRegistration()
	req.CPF = "123.456.789-01"
	suite.mockRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Register(req)

	suite.ErrorIs(err, apperrors.ErrInvalidCPF)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicatedCPF() {
	suite.mockRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().GetByCPF("52998224725").Return(storedUser(), nil)

	_, err := suite.userService.Register(validRegistration())

	suite.ErrorIs(err, apperrors.ErrDuplicatedCPF)
	suite.NotErrorIs(err, apperrors.ErrDuplicatedEmail)
}

func (suite *UserServiceTestSuite) TestRegister_RepositoryError() {
	suite.mockRepo.EXPECT().GetByEmail("ana@example.com").Return(nil, errors.New("connection refused"))

	_, err := suite.userService.Register(validRegistration())

	suite.Error(err)
	suite.Contains(err.Error(), "connection refused")
}

func (suite *UserServiceTestSuite) TestUpdate_ProfileOnly() {
	user := storedUser()
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(user, nil)
	suite.mockRepo.EXPECT().Update(user).Return(nil)

	resp, err := suite.userService.Update(7, &service.UpdateUserRequest{
		Name:  "Ana Maria Souza",
		Email: "ana@example.com",
		CPF:   "529.982.247-25",
	})

	suite.Require().NoError(err)
	suite.Equal("Ana Maria Souza", resp.Name)
	suite.Equal("stored-hash", user.PasswordHash)
}

func (suite *UserServiceTestSuite) TestUpdate_ChangesPassword() {
	user := storedUser()
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(user, nil)
	suite.mockHasher.EXPECT().CheckPassword("stored-hash", "secret123").Return(true)
	suite.mockHasher.EXPECT().HashPassword("secret456").Return("new-hash", nil)
	suite.mockRepo.EXPECT().Update(user).Return(nil)

	_, err := suite.userService.Update(7, &service.UpdateUserRequest{
		Name:            "Ana Souza",
		Email:           "ana@example.com",
		CPF:             "52998224725",
		OldPassword:     "secret123",
		Password:        "secret456",
		ConfirmPassword: "secret456",
	})

	suite.Require().NoError(err)
	suite.Equal("new-hash", user.PasswordHash)
}

func (suite *UserServiceTestSuite) TestUpdate_WrongOldPassword() {
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(storedUser(), nil)
	suite.mockHasher.EXPECT().CheckPassword("stored-hash", "wrong-one").Return(false)

	_, err := suite.userService.Update(7, &service.UpdateUserRequest{
		Name:            "Ana Souza",
		Email:           "ana@example.com",
		CPF:             "52998224725",
		OldPassword:     "wrong-one",
		Password:        "secret456",
		ConfirmPassword: "secret456",
	})

	suite.ErrorIs(err, apperrors.ErrPasswordMismatch)
}

func (suite *UserServiceTestSuite) TestUpdate_PasswordRules() {
	tests := []struct {
		name     string
		req      service.UpdateUserRequest
		expected []string
	}{
		{
			name:     "confirmation differs",
			req:      service.UpdateUserRequest{OldPassword: "secret123", Password: "secret456", ConfirmPassword: "secret457"},
			expected: []string{"confirmPassword must match password"},
		},
		{
			name:     "new password without old one",
			req:      service.UpdateUserRequest{Password: "secret456", ConfirmPassword: "secret456"},
			expected: []string{"oldPassword is a required field"},
		},
		{
			name:     "old password without new one",
			req:      service.UpdateUserRequest{OldPassword: "secret123"},
			expected: []string{"password is a required field"},
		},
		{
			name:     "new password without confirmation",
			req:      service.UpdateUserRequest{OldPassword: "secret123", Password: "secret456"},
			expected: []string{"confirmPassword is a required field"},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := tt.req
			req.Name, req.Email, req.CPF = "Ana Souza", "ana@example.com", "52998224725"

			_, err := suite.userService.Update(7, &req)

			suite.Equal(tt.expected, messagesOf(suite.T(), err))
		})
	}
}

func (suite *UserServiceTestSuite) TestUpdate_EmailTaken() {
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(storedUser(), nil)
	suite.mockRepo.EXPECT().GetByEmail("bruno@example.com").Return(&models.User{BaseModel: models.BaseModel{ID: 8}}, nil)

	_, err := suite.userService.Update(7, &service.UpdateUserRequest{
		Name:  "Ana Souza",
		Email: "bruno@example.com",
		CPF:   "52998224725",
	})

	suite.ErrorIs(err, apperrors.ErrEmailTaken)
}

func (suite *UserServiceTestSuite) TestUpdate_InvalidCPF() {
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(storedUser(), nil)

	_, err := suite.userService.Update(7, &service.UpdateUserRequest{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		CPF:   "111.111.111-11",
	})

	suite.ErrorIs(err, apperrors.ErrInvalidCPF)
}

func (suite *UserServiceTestSuite) TestUpdate_CPFTaken() {
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(storedUser(), nil)
	suite.mockRepo.EXPECT().GetByCPF("71410700011").Return(&models.User{BaseModel: models.BaseModel{ID: 8}}, nil)

	_, err := suite.userService.Update(7, &service.UpdateUserRequest{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		CPF:   "714.107.000-11",
	})

	suite.ErrorIs(err, apperrors.ErrCPFTaken)
}

func (suite *UserServiceTestSuite) TestUpdate_UserGone() {
	suite.mockRepo.EXPECT().GetByID(uint(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.Update(7, &service.UpdateUserRequest{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		CPF:   "52998224725",
	})

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
