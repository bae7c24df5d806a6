package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"farm-assets-backend/internal/api/handlers"
	apperrors "farm-assets-backend/internal/errors"
	"farm-assets-backend/internal/mocks"
	"farm-assets-backend/internal/service"
	"farm-assets-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// signedInAs stands in for the auth middleware
func signedInAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	handler := handlers.NewUserHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/users", handler.Register)
	suite.http.Router.PUT("/users", signedInAs(7), handler.Update)
}

func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestRegister_Success() {
	req := &service.RegisterUserRequest{Name: "Ana", Email: "ana@example.com", CPF: "529.982.247-25", Password: "secret123"}
	suite.mockService.EXPECT().Register(req).Return(&service.UserResponse{ID: 1, Name: "Ana", Email: "ana@example.com", CPF: "52998224725"}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/users", req)

	var got service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal("52998224725", got.CPF)
}

func (suite *UserHandlerTestSuite) TestRegister_ValidationMessages() {
	suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, apperrors.NewValidationError(
		apperrors.FieldMessage{Message: "name is a required field", Path: "name", Type: "required"},
		apperrors.FieldMessage{Message: "email is a required field", Path: "email", Type: "required"},
	))

	w := suite.http.MakeRequest(http.MethodPost, "/users", map[string]string{})

	var body struct {
		Error    string                   `json:"error"`
		Messages []apperrors.FieldMessage `json:"messages"`
	}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &body)
	suite.Equal("Validations fails", body.Error)
	suite.Require().Len(body.Messages, 2)
	suite.Equal("name is a required field", body.Messages[0].Message)
	suite.Equal("email", body.Messages[1].Path)
}

func (suite *UserHandlerTestSuite) TestRegister_BusinessErrors() {
	tests := []struct {
		err     error
		message string
	}{
		{apperrors.ErrDuplicatedEmail, "Duplicated email"},
		{apperrors.ErrDuplicatedCPF, "Duplicated CPF"},
		{apperrors.ErrInvalidCPF, "Not a valid CPF"},
	}

	for _, tt := range tests {
		suite.Run(tt.message, func() {
			suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, tt.err)

			w := suite.http.MakeRequest(http.MethodPost, "/users", map[string]string{"name": "Ana"})

			testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, tt.message)
		})
	}
}

func (suite *UserHandlerTestSuite) TestRegister_MalformedBody() {
	w := suite.http.MakeRequest(http.MethodPost, "/users", "not an object")

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "")
}

func (suite *UserHandlerTestSuite) TestRegister_UnexpectedError() {
	suite.mockService.EXPECT().Register(gomock.Any()).Return(nil, errors.New("connection reset"))

	w := suite.http.MakeRequest(http.MethodPost, "/users", map[string]string{"name": "Ana"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Internal server error")
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *UserHandlerTestSuite) TestUpdate_UsesSignedInUser() {
	suite.mockService.EXPECT().Update(uint(7), gomock.Any()).DoAndReturn(
		func(_ uint, req *service.UpdateUserRequest) (*service.UserResponse, error) {
			suite.Equal("secret123", req.OldPassword)
			return &service.UserResponse{ID: 7, Name: req.Name}, nil
		})

	w := suite.http.MakeRequest(http.MethodPut, "/users", map[string]string{
		"name":            "Ana",
		"email":           "ana@example.com",
		"cpf":             "52998224725",
		"oldPassword":     "secret123",
		"password":        "secret456",
		"confirmPassword": "secret456",
	})

	var got service.UserResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	suite.Equal(uint(7), got.ID)
}

func (suite *UserHandlerTestSuite) TestUpdate_PasswordMismatch() {
	suite.mockService.EXPECT().Update(uint(7), gomock.Any()).Return(nil, apperrors.ErrPasswordMismatch)

	w := suite.http.MakeRequest(http.MethodPut, "/users", map[string]string{"name": "Ana"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Password does not match")
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
