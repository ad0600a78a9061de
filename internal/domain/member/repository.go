package member

import (
	"context"

	"github.com/google/uuid"
)

// MemberRepository defines persistence operations for members. The lifecycle
// never creates or deletes members; registration is owned elsewhere.
type MemberRepository interface {
	// FindByID retrieves a member, returning a not-found domain error when
	// the identifier is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)

	// FindAll returns the complete current set of members.
	FindAll(ctx context.Context) ([]*Member, error)

	// Update persists the member's current field values, keyed by its ID.
	Update(ctx context.Context, m *Member) error
}
