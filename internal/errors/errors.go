package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found.
// Message is the client-facing text; Entity drives errors.Is comparison.
type NotFoundError struct {
	Entity  string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when a unique attribute is already taken
type AlreadyExistsError struct {
	Entity  string
	Message string
}

func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Message == t.Message
}

// FieldMessage is a single schema violation
type FieldMessage struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Type    string `json:"type"`
}

// ValidationError carries every schema violation of a payload, in declaration order
type ValidationError struct {
	Messages []FieldMessage
}

func (e *ValidationError) Error() string {
	return "Validations fails"
}

// BusinessRuleError represents a payload that is well-formed but violates a domain rule
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for BusinessRuleError
func (e *BusinessRuleError) Is(target error) bool {
	t, ok := target.(*BusinessRuleError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthenticationError
func (e *AuthenticationError) Is(target error) bool {
	t, ok := target.(*AuthenticationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// TransactionError wraps a store failure that aborted a transaction
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction failed during %s: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user", Message: "User does not exists"}
	ErrFarmNotFound       = &NotFoundError{Entity: "farm", Message: "Farm does not exists"}
	ErrProductionNotFound = &NotFoundError{Entity: "agriculture production", Message: "Production does not exists"}
	ErrLivestockNotFound  = &NotFoundError{Entity: "livestock production", Message: "Livestock does not exists"}
)

// Already Exists Errors
var (
	ErrDuplicatedEmail = &AlreadyExistsError{Entity: "user", Message: "Duplicated email"}
	ErrDuplicatedCPF   = &AlreadyExistsError{Entity: "user", Message: "Duplicated CPF"}
	ErrEmailTaken      = &AlreadyExistsError{Entity: "user", Message: "Email already exists"}
	ErrCPFTaken        = &AlreadyExistsError{Entity: "user", Message: "CPF already exists"}
)

// Business Logic Errors
var (
	ErrCapacityExceeded = &BusinessRuleError{Message: "Hectares planted is higher than sum of hectares land from farms "}
	ErrInvalidCPF       = &BusinessRuleError{Message: "Not a valid CPF"}
	ErrPasswordMismatch = &BusinessRuleError{Message: "Password does not match"}
)

// Authentication Errors
var (
	ErrTokenNotProvided   = &AuthenticationError{Message: "Token is not provided"}
	ErrTokenInvalid       = &AuthenticationError{Message: "Token invalid"}
	ErrSessionUserUnknown = &AuthenticationError{Message: "User not found"}
	ErrSessionBadPassword = &AuthenticationError{Message: "Password does not match"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsBusinessRule checks if an error is a BusinessRuleError
func IsBusinessRule(err error) bool {
	var ruleErr *BusinessRuleError
	return errors.As(err, &ruleErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsTransaction checks if an error is a TransactionError
func IsTransaction(err error) bool {
	var txErr *TransactionError
	return errors.As(err, &txErr)
}

// NewValidationError creates a ValidationError from an ordered list of violations
func NewValidationError(messages ...FieldMessage) error {
	return &ValidationError{Messages: messages}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewTransactionError wraps err as a TransactionError, leaving domain errors untouched
func NewTransactionError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsNotFound(err) || IsBusinessRule(err) || IsAlreadyExists(err) {
		return err
	}
	return &TransactionError{Op: op, Err: err}
}

// Response maps err to an HTTP status and a JSON body.
// Not-found is reported as 400 to stay compatible with existing clients.
func Response(err error) (int, map[string]interface{}) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, map[string]interface{}{
			"error":    validationErr.Error(),
			"messages": validationErr.Messages,
		}
	}

	var (
		authErr     *AuthenticationError
		notFoundErr *NotFoundError
		existsErr   *AlreadyExistsError
		ruleErr     *BusinessRuleError
	)
	switch {
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, map[string]interface{}{"error": authErr.Error()}
	case errors.As(err, &notFoundErr):
		return http.StatusBadRequest, map[string]interface{}{"error": notFoundErr.Error()}
	case errors.As(err, &existsErr):
		return http.StatusBadRequest, map[string]interface{}{"error": existsErr.Error()}
	case errors.As(err, &ruleErr):
		return http.StatusBadRequest, map[string]interface{}{"error": ruleErr.Error()}
	default:
		return http.StatusInternalServerError, map[string]interface{}{"error": "Internal server error"}
	}
}
