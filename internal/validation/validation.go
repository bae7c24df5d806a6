// Package validation wraps go-playground/validator so request schemas report every
// violation at once, in field declaration order, using JSON field names.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	apperrors "farm-assets-backend/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator checks request structs tagged with `validate`
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with English messages
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		// only fails on a malformed built-in translation table
		panic(fmt.Sprintf("register validator translations: %v", err))
	}

	return &Validator{validate: v, trans: trans}
}

// Struct validates s and returns an *apperrors.ValidationError listing every violation, or nil
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validate request: %w", err)
	}

	return apperrors.NewValidationError(v.Messages(fieldErrors)...)
}

// Messages converts validator field errors to client messages, keeping their order
func (v *Validator) Messages(fieldErrors validator.ValidationErrors) []apperrors.FieldMessage {
	messages := make([]apperrors.FieldMessage, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, apperrors.FieldMessage{
			Message: v.message(fe),
			Path:    fe.Field(),
			Type:    fe.Tag(),
		})
	}
	return messages
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_with", "required_if":
		return fmt.Sprintf("%s is a required field", fe.Field())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be a positive number", fe.Field())
		}
	case "eqfield":
		return fmt.Sprintf("%s must match %s", fe.Field(), lowerFirst(fe.Param()))
	}
	return fe.Translate(v.trans)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
