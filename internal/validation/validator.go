// Package validation collects field-level input checks. A Validator
// accumulates errors so a response can report everything wrong at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors is the error returned for invalid input. Handlers map it to 422.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

type Validator struct {
	errors Errors
}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Err returns the accumulated errors, or nil when everything passed.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return v.errors
}

func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "is required")
}

func (v *Validator) Email(field, value string) {
	v.Check(emailRegex.MatchString(value), field, "is not a valid email address")
}

func (v *Validator) MinLength(field, value string, n int) {
	v.Check(len(value) >= n, field, fmt.Sprintf("must be at least %d characters", n))
}
