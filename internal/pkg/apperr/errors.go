package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeConfiguration  = "CONFIGURATION_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a query is invalid.
	ErrInvalidReq = New(CodeInvalidRequest, "invalid request: some or all query parameters are invalid")

	// ErrConfiguration is returned when a required collaborator has not been configured.
	// It is fatal: retrying the same call will never succeed.
	ErrConfiguration = New(CodeConfiguration, "required collaborator is not configured")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(CodeInternalError, "internal error occurred")
)

type Extras map[string]interface{}

type AppError struct {
	ErrorCode string
	Message   string
	Extras    *Extras
}

func New(errorCode string, message string) *AppError {
	return &AppError{
		ErrorCode: errorCode,
		Message:   message,
	}
}

func (e AppError) Msg(format string, parts ...interface{}) *AppError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e AppError) WithExtras(extras Extras) *AppError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *AppError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

// Is reports whether target carries the same error code, so that errors.Is(err, ErrConfiguration)
// holds for every derived copy produced by Msg or WithExtras.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.ErrorCode == e.ErrorCode
}

// IsFatal reports whether err originates from a configuration problem.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
