package errors

import "fmt"

// ErrorCode represents a SmartDraft error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrNoteTooLong    ErrorCode = "NOTE_TOO_LONG"   // 413
	ErrValidation     ErrorCode = "VALIDATION"      // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// DraftError represents a structured error with code, status, and details.
type DraftError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *DraftError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *DraftError {
	return &DraftError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing entity.
func NewNotFound(identifier string) *DraftError {
	return &DraftError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewNoteTooLong creates a 413 error when a focus note exceeds the bound.
func NewNoteTooLong(max, actual int) *DraftError {
	return &DraftError{
		Code:    ErrNoteTooLong,
		Status:  413,
		Message: fmt.Sprintf("note exceeds maximum length: %d chars (max %d)", actual, max),
		Details: map[string]any{"max_chars": max, "actual_chars": actual},
	}
}

// NewValidation creates a 422 error carrying per-field validation messages.
func NewValidation(fields map[string]string) *DraftError {
	details := make(map[string]any, len(fields))
	for k, v := range fields {
		details[k] = v
	}
	return &DraftError{
		Code:    ErrValidation,
		Status:  422,
		Message: fmt.Sprintf("validation failed for %d field(s)", len(fields)),
		Details: details,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *DraftError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &DraftError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a DraftError with the given code.
func Is(err error, code ErrorCode) bool {
	if dErr, ok := err.(*DraftError); ok {
		return dErr.Code == code
	}
	return false
}
