package member

import (
	"github.com/google/uuid"

	"github.com/clubpulse/service-membership/pkg/domain"
)

// NotFoundMessage is the caller-facing text for an unknown member. Clients
// match on it, so it must not change.
const NotFoundMessage = "Member not found"

// NewNotFoundError builds the domain error for an unknown member, keeping
// the identifier for diagnostics.
func NewNotFoundError(id uuid.UUID) *domain.DomainError {
	return domain.NewNotFoundError(NotFoundMessage, id.String())
}
