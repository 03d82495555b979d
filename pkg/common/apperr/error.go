package apperr

import (
	"github.com/pkg/errors"
)

// AppError carries an application error code, an HTTP status and the
// underlying cause with its stack trace.
type AppError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Cause      error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError. A non-nil cause is wrapped so that it carries a
// stack trace.
func New(code int, msg string, httpStatus int, cause error) *AppError {
	if cause != nil {
		cause = errors.WithStack(cause)
	}
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: httpStatus,
		Cause:      cause,
	}
}

// Wrap annotates err with msg and wraps it into an AppError.
func Wrap(err error, code int, msg string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: httpStatus,
		Cause:      errors.Wrap(err, msg),
	}
}
