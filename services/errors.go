package services

import "net/http"

// Failure categories returned by the service layer. All of them are
// client-facing and recoverable; anything else bubbles up to gin's
// generic 500 recovery handler.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeLimitExceeded    = "LIMIT_EXCEEDED"
	CodePriorityConflict = "PRIORITY_CONFLICT"
)

// FieldError is one per-field violation in a VALIDATION_ERROR details payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a categorized service failure.
type Error struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// HTTPStatus maps the failure category to its response status.
func (e *Error) HTTPStatus() int {
	if e.Code == CodeNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func notFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func limitExceeded(msg string) *Error {
	return &Error{Code: CodeLimitExceeded, Message: msg}
}

func priorityConflict(msg string) *Error {
	return &Error{Code: CodePriorityConflict, Message: msg}
}

func validation(msg string, details []FieldError) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}
