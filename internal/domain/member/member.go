package member

import (
	"time"

	"github.com/google/uuid"
)

// Member is the aggregate root for club membership. The active flag is a
// cached entitlement: it is set by renewal and cleared by the expiry sweep,
// never recomputed from the subscription end on read. Between sweeps the flag
// may lag behind the clock.
type Member struct {
	id              uuid.UUID
	displayName     string
	active          bool
	subscriptionEnd *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// New creates a Member as the registration flow hands it over: inactive,
// with no subscription established.
func New(id uuid.UUID, displayName string) *Member {
	now := time.Now().UTC()
	return &Member{
		id:          id,
		displayName: displayName,
		createdAt:   now,
		updatedAt:   now,
	}
}

// Reconstruct rebuilds a Member from persistence.
func Reconstruct(id uuid.UUID, displayName string, active bool, subscriptionEnd *time.Time, createdAt, updatedAt time.Time) *Member {
	return &Member{
		id:              id,
		displayName:     displayName,
		active:          active,
		subscriptionEnd: subscriptionEnd,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Getters.
func (m *Member) ID() uuid.UUID              { return m.id }
func (m *Member) DisplayName() string        { return m.displayName }
func (m *Member) IsActive() bool             { return m.active }
func (m *Member) SubscriptionEnd() *time.Time { return m.subscriptionEnd }
func (m *Member) CreatedAt() time.Time       { return m.createdAt }
func (m *Member) UpdatedAt() time.Time       { return m.updatedAt }

// Renew activates the member and moves the subscription end to now plus the
// given number of whole days. The new end is always computed from now, not
// from any remaining period on the previous subscription.
func (m *Member) Renew(now time.Time, durationDays int) {
	end := now.Add(time.Duration(durationDays) * 24 * time.Hour)
	m.active = true
	m.subscriptionEnd = &end
	m.updatedAt = now
}

// Deactivate clears the entitlement flag. The subscription end is kept as a
// record of when the membership lapsed.
func (m *Member) Deactivate(now time.Time) {
	m.active = false
	m.updatedAt = now
}

// ExpiredAt reports whether the subscription end has passed as of now. A
// member with no subscription end never expires.
func (m *Member) ExpiredAt(now time.Time) bool {
	return m.subscriptionEnd != nil && !m.subscriptionEnd.After(now)
}
