package member

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsInactiveWithoutSubscription(t *testing.T) {
	m := New(uuid.New(), "Dana Whitcombe")

	assert.False(t, m.IsActive())
	assert.Nil(t, m.SubscriptionEnd())
}

func TestRenew_SetsActiveAndEndFromNow(t *testing.T) {
	m := New(uuid.New(), "Dana Whitcombe")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m.Renew(now, 30)

	assert.True(t, m.IsActive())
	require.NotNil(t, m.SubscriptionEnd())
	assert.True(t, m.SubscriptionEnd().Equal(now.Add(30*24*time.Hour)))
	assert.True(t, m.UpdatedAt().Equal(now))
}

func TestRenew_DoesNotStackOnRemainingPeriod(t *testing.T) {
	m := New(uuid.New(), "Dana Whitcombe")
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Renew(first, 30)

	// Renewing 10 days in, the new end counts from the second renewal, not
	// from the 20 days still outstanding.
	second := first.Add(10 * 24 * time.Hour)
	m.Renew(second, 30)

	require.NotNil(t, m.SubscriptionEnd())
	assert.True(t, m.SubscriptionEnd().Equal(second.Add(30*24*time.Hour)))
}

func TestDeactivate_ClearsFlagKeepsEnd(t *testing.T) {
	m := New(uuid.New(), "Dana Whitcombe")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.Renew(now, 30)

	m.Deactivate(now.Add(31 * 24 * time.Hour))

	assert.False(t, m.IsActive())
	assert.NotNil(t, m.SubscriptionEnd())
}

func TestExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no subscription never expires", func(t *testing.T) {
		m := New(uuid.New(), "Dana Whitcombe")
		assert.False(t, m.ExpiredAt(now))
	})

	t.Run("future end is not expired", func(t *testing.T) {
		end := now.Add(24 * time.Hour)
		m := Reconstruct(uuid.New(), "Dana Whitcombe", true, &end, now, now)
		assert.False(t, m.ExpiredAt(now))
	})

	t.Run("past end is expired", func(t *testing.T) {
		end := now.Add(-24 * time.Hour)
		m := Reconstruct(uuid.New(), "Dana Whitcombe", true, &end, now, now)
		assert.True(t, m.ExpiredAt(now))
	})

	t.Run("end exactly at now is expired", func(t *testing.T) {
		end := now
		m := Reconstruct(uuid.New(), "Dana Whitcombe", true, &end, now, now)
		assert.True(t, m.ExpiredAt(now))
	})
}

func TestReconstruct_RoundTripsFields(t *testing.T) {
	id := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(12 * 24 * time.Hour)

	m := Reconstruct(id, "Priya Raman", true, &end, now.Add(-time.Hour), now)

	assert.Equal(t, id, m.ID())
	assert.Equal(t, "Priya Raman", m.DisplayName())
	assert.True(t, m.IsActive())
	require.NotNil(t, m.SubscriptionEnd())
	assert.True(t, m.SubscriptionEnd().Equal(end))
}
