package apperror

import (
	"fmt"
	"net/http"
)

// AppError is the error surface services return to the transport layer.
// The error handler middleware maps it to {error:{message}} JSON.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports a missing required field or an update body
// with no recognized fields.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewNotFoundError covers unknown ids as well as malformed ones; callers
// never learn the difference.
func NewNotFoundError(entityName string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: fmt.Sprintf("%s doesn't exist", entityName)}
}

// NewConstraintError reports a write that referenced a nonexistent row.
func NewConstraintError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}
