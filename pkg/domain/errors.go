package domain

import (
	"errors"
	"fmt"
)

// Sentinel error categories shared across domains.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// DomainError wraps a sentinel category with a caller-facing message and,
// where relevant, the identifier of the entity involved.
type DomainError struct {
	Err      error
	Message  string
	EntityID string
}

func (e *DomainError) Error() string { return e.Message }

func (e *DomainError) Unwrap() error { return e.Err }

// NewNotFoundError creates a DomainError for a missing entity. entityID is
// kept for diagnostics and does not appear in the message.
func NewNotFoundError(message, entityID string) *DomainError {
	return &DomainError{
		Err:      ErrNotFound,
		Message:  message,
		EntityID: entityID,
	}
}

// NewInvalidStateError creates a DomainError for an illegal state transition.
func NewInvalidStateError(from, to string) *DomainError {
	return &DomainError{
		Err:     ErrInvalidState,
		Message: fmt.Sprintf("invalid state transition from %s to %s", from, to),
	}
}

// IsNotFound reports whether err is (or wraps) a not-found domain error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
