package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "Production does not exists", ErrProductionNotFound.Error())
		assert.Equal(t, "Livestock does not exists", ErrLivestockNotFound.Error())
		assert.Equal(t, "Farm does not exists", ErrFarmNotFound.Error())
	})

	t.Run("Error message falls back to entity", func(t *testing.T) {
		err := &NotFoundError{Entity: "farm"}
		assert.Equal(t, "farm not found", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "farm"}, ErrFarmNotFound))
		assert.False(t, errors.Is(ErrFarmNotFound, ErrProductionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrLivestockNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrFarmNotFound)))
		assert.False(t, IsNotFound(ErrCapacityExceeded))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "Duplicated email", ErrDuplicatedEmail.Error())
		assert.Equal(t, "user already exists", (&AlreadyExistsError{Entity: "user"}).Error())
	})

	t.Run("errors.Is distinguishes messages", func(t *testing.T) {
		assert.True(t, errors.Is(ErrDuplicatedCPF, ErrDuplicatedCPF))
		assert.False(t, errors.Is(ErrDuplicatedCPF, ErrDuplicatedEmail))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrCPFTaken))
		assert.False(t, IsAlreadyExists(ErrFarmNotFound))
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(
		FieldMessage{Message: "farms is a required field", Path: "farms", Type: "required"},
	)

	assert.Equal(t, "Validations fails", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrInvalidCPF))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Messages, 1)
}

func TestBusinessRuleError(t *testing.T) {
	assert.Equal(t, "Hectares planted is higher than sum of hectares land from farms ", ErrCapacityExceeded.Error())
	assert.True(t, IsBusinessRule(ErrPasswordMismatch))
	assert.True(t, errors.Is(fmt.Errorf("ctx: %w", ErrInvalidCPF), ErrInvalidCPF))
	assert.False(t, errors.Is(ErrInvalidCPF, ErrCapacityExceeded))
}

func TestAuthenticationError(t *testing.T) {
	assert.Equal(t, "Token is not provided", ErrTokenNotProvided.Error())
	assert.True(t, IsAuthentication(NewAuthenticationError("x")))
	assert.True(t, errors.Is(ErrTokenInvalid, &AuthenticationError{Message: "Token invalid"}))
	assert.False(t, IsAuthentication(ErrPasswordMismatch))
}

func TestTransactionError(t *testing.T) {
	t.Run("wraps store errors", func(t *testing.T) {
		cause := errors.New("FOREIGN KEY constraint failed")
		err := NewTransactionError("create agriculture production", cause)

		assert.True(t, IsTransaction(err))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "create agriculture production")
	})

	t.Run("passes domain errors through", func(t *testing.T) {
		assert.Same(t, ErrProductionNotFound, NewTransactionError("update", ErrProductionNotFound))
		assert.False(t, IsTransaction(NewTransactionError("update", ErrCapacityExceeded)))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewTransactionError("update", nil))
	})
}

func TestResponse(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"not found", ErrProductionNotFound, 400, "Production does not exists"},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrLivestockNotFound), 400, "Livestock does not exists"},
		{"capacity", ErrCapacityExceeded, 400, "Hectares planted is higher than sum of hectares land from farms "},
		{"duplicate", ErrDuplicatedCPF, 400, "Duplicated CPF"},
		{"token", ErrTokenInvalid, 401, "Token invalid"},
		{"transaction", NewTransactionError("create", errors.New("boom")), 500, "Internal server error"},
		{"unknown", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Response(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.body, body["error"])
		})
	}

	t.Run("validation carries messages", func(t *testing.T) {
		messages := []FieldMessage{{Message: "name is a required field", Path: "name", Type: "required"}}
		status, body := Response(NewValidationError(messages...))
		assert.Equal(t, 400, status)
		assert.Equal(t, "Validations fails", body["error"])
		assert.Equal(t, messages, body["messages"])
	})
}
