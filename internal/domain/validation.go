package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidationError represents a single invalid input field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects all invalid fields of a struct
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Validate checks struct tags on an input model
func Validate(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("failed %q", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed %q (%s)", fe.Tag(), fe.Param())
		}
		out = append(out, ValidationError{Field: fe.Namespace(), Message: msg})
	}
	return out
}

// NewUserFinancialProfile validates and returns the profile
func NewUserFinancialProfile(p UserFinancialProfile) (UserFinancialProfile, error) {
	if err := Validate(p); err != nil {
		return UserFinancialProfile{}, fmt.Errorf("invalid financial profile: %w", err)
	}
	return p, nil
}
