package domain

import "errors"

// Sentinels for the failure classes the HTTP layer distinguishes. Wrap one
// in a DomainError to attach a message; match with errors.Is or the Is*
// helpers below.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("conflict")
	ErrCorruptDocument = errors.New("corrupt stored document")
)

// DomainError pairs a sentinel with a caller-facing message. Field names
// the offending input on validation failures.
type DomainError struct {
	Base    error
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	msg := e.Base.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Field != "" {
		msg += " (field: " + e.Field + ")"
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.Base
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: message}
}

// NewValidationError reports a rejected input field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Message: message, Field: field}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Base: ErrConflict, Message: message}
}

func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Base: ErrUnauthorized, Message: message}
}

func IsNotFound(err error) bool        { return errors.Is(err, ErrNotFound) }
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }
func IsConflict(err error) bool        { return errors.Is(err, ErrConflict) }
func IsUnauthorized(err error) bool    { return errors.Is(err, ErrUnauthorized) }
func IsCorruptDocument(err error) bool { return errors.Is(err, ErrCorruptDocument) }
