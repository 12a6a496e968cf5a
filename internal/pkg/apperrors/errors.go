// Package apperrors defines the typed error kinds the HTTP facade maps to
// status codes and response bodies.
package apperrors

import "fmt"

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

type AuthError struct {
	Message string
	Status  int // 401 or 403
}

func (e *AuthError) Error() string { return e.Message }

func NewUnauthenticatedError() *AuthError {
	return &AuthError{Message: "authentication required", Status: 401}
}

func NewForbiddenError(message string) *AuthError {
	return &AuthError{Message: message, Status: 403}
}

// QuotaError carries both a machine-readable code ("meeting_limit",
// "limit_reached", "rate_limited") and a human message.
type QuotaError struct {
	Code    string
	Message string
	Status  int // 403 or 429
}

func (e *QuotaError) Error() string { return e.Message }

func NewQuotaError(code, message string, status int) *QuotaError {
	return &QuotaError{Code: code, Message: message, Status: status}
}

// NotFoundError also represents "not owned" — I-OwnerOnly masks ownership
// mismatches as plain not-found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("%s not found", resource)}
}

// ConflictError represents the single-active-session violation.
type ConflictError struct {
	Message   string
	SessionId string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message, sessionId string) *ConflictError {
	return &ConflictError{Message: message, SessionId: sessionId}
}

// UpstreamError wraps a provider-call failure. Status/Body are logged
// internally (truncated) and never surfaced to the client.
type UpstreamError struct {
	Message string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string { return e.Message }

func NewUpstreamError(message string, status int, body string) *UpstreamError {
	return &UpstreamError{Message: message, Status: status, Body: body}
}

// DecodeError represents a tolerant-decoder failure. The raw response is
// retained for truncated logging; the user sees a generic message.
type DecodeError struct {
	RawResponse string
}

func (e *DecodeError) Error() string { return "failed to parse AI response" }

func NewDecodeError(rawResponse string) *DecodeError {
	return &DecodeError{RawResponse: rawResponse}
}

// StorageError is never recovered locally.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(err error) *StorageError {
	return &StorageError{Err: err}
}
