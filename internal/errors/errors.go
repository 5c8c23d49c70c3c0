package errors

import "fmt"

// ErrorCode represents a Tickmark error code.
type ErrorCode string

const (
	ErrInvalidRequest   ErrorCode = "INVALID_REQUEST"    // 400
	ErrNotFound         ErrorCode = "NOT_FOUND"          // 404
	ErrDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND" // 404
	ErrMarkersNotFound  ErrorCode = "MARKERS_NOT_FOUND"  // 422
	ErrAmbiguousMatch   ErrorCode = "AMBIGUOUS_MATCH"    // 409
	ErrSyncInProgress   ErrorCode = "SYNC_IN_PROGRESS"   // 409
	ErrIOFailure        ErrorCode = "IO_FAILURE"         // 502
	ErrInternal         ErrorCode = "INTERNAL"           // 500
)

// TickError represents a structured error with code, status, and details.
type TickError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TickError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TickError {
	return &TickError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a reminder cannot be found.
func NewNotFound(identifier string) *TickError {
	return &TickError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("reminder not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewDocumentNotFound creates a 404 error for when no daily note exists for a date.
func NewDocumentNotFound(date string) *TickError {
	return &TickError{
		Code:    ErrDocumentNotFound,
		Status:  404,
		Message: fmt.Sprintf("no daily note found for %s", date),
		Details: map[string]any{"date": date},
	}
}

// NewMarkersNotFound creates a 422 error for when a note lacks the section markers.
func NewMarkersNotFound(document string) *TickError {
	return &TickError{
		Code:    ErrMarkersNotFound,
		Status:  422,
		Message: fmt.Sprintf("section markers not found in %s", document),
		Details: map[string]any{"document": document},
	}
}

// NewAmbiguousMatch creates a 409 error for when a title prefix matches multiple reminders.
func NewAmbiguousMatch(prefix string, count int) *TickError {
	return &TickError{
		Code:    ErrAmbiguousMatch,
		Status:  409,
		Message: fmt.Sprintf("title prefix %q matches %d reminders; use a key", prefix, count),
		Details: map[string]any{"prefix": prefix, "count": count},
	}
}

// NewSyncInProgress creates a 409 error for when a sync is already running.
func NewSyncInProgress() *TickError {
	return &TickError{
		Code:    ErrSyncInProgress,
		Status:  409,
		Message: "a sync is already in progress",
	}
}

// NewIOFailure creates a 502 error wrapping a document store read/write failure.
func NewIOFailure(err error) *TickError {
	msg := "document store failure"
	if err != nil {
		msg = err.Error()
	}
	return &TickError{
		Code:    ErrIOFailure,
		Status:  502,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TickError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TickError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a TickError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := err.(*TickError); ok {
		return tErr.Code == code
	}
	return false
}
