// Package errs holds the API error taxonomy and its mapping onto HTTP statuses.
//
// Services return *HTTPError values; the fiber error handler is the only place
// where they are turned into response bodies.
package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConfig     = "CONFIG_ERROR"
	CodeServer     = "SERVER_ERROR"
)

// FieldError is a single violated constraint, keyed by the JSON field name.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

// Error returns the client-facing message. Server errors already embed their cause.
func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewValidationError is a 422 carrying every failed field.
func NewValidationError(message string, fields []FieldError) *HTTPError {
	return &HTTPError{
		Code:    CodeValidation,
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Errors:  fields,
	}
}

// NewConfigError is a 400 for a missing credential on the server side.
func NewConfigError(message string) *HTTPError {
	return &HTTPError{
		Code:    CodeConfig,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

// NewServerError is a 500 that forwards the collaborator's message, prefixed for context.
func NewServerError(prefix string, err error) *HTTPError {
	msg := prefix
	if err != nil {
		msg = fmt.Sprintf("%s: %s", prefix, err.Error())
	}
	return &HTTPError{
		Code:    CodeServer,
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// FromStatus builds an error for a status produced outside the services (404, 405, body limits).
func FromStatus(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// As extracts an *HTTPError from err, if any.
func As(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// MakeUpperCaseWithUnderscores turns "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
