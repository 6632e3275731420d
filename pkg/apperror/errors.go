package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError by how the process reacts to it.
type Kind string

const (
	KindConfig       Kind = "config"
	KindParse        Kind = "parse"
	KindDecode       Kind = "decode"
	KindSubscription Kind = "subscription"
	KindNotFound     Kind = "not_found"
	KindInternal     Kind = "internal"
)

// AppError is a structured error that maps to HTTP responses and exit policy.
type AppError struct {
	Kind       Kind   `json:"-"`
	Code       string `json:"error_code"`
	Message    string `json:"error"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Fatal reports whether the error must stop the process.
func (e *AppError) Fatal() bool {
	switch e.Kind {
	case KindConfig, KindParse, KindSubscription:
		return true
	}
	return false
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Startup (CFG, SEED) ----

func ErrConfig(message string) *AppError {
	return New(KindConfig, "CFG_001", message, http.StatusInternalServerError)
}

func WrapConfig(message string, err error) *AppError {
	return Wrap(KindConfig, "CFG_001", message, http.StatusInternalServerError, err)
}

func ErrParse(message string, err error) *AppError {
	return Wrap(KindParse, "SEED_001", message, http.StatusInternalServerError, err)
}

// ---- Steady state (LOG, SUB) ----

func ErrDecode(message string, err error) *AppError {
	return Wrap(KindDecode, "LOG_001", message, http.StatusUnprocessableEntity, err)
}

func ErrSubscription(message string, err error) *AppError {
	return Wrap(KindSubscription, "SUB_001", message, http.StatusServiceUnavailable, err)
}

// ---- Read API (API) ----

func ErrNotFound() *AppError {
	return New(KindNotFound, "API_404", "Not found", http.StatusNotFound)
}

func ErrRateLimitExceeded() *AppError {
	return New(KindInternal, "API_429", "Rate limit exceeded", http.StatusTooManyRequests)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Is reports whether err carries an AppError of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsFatal reports whether err carries a fatal AppError.
func IsFatal(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Fatal()
	}
	return false
}
