package application

import (
	"context"
	"fmt"

	"github.com/WatchBeam/clock"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/clubpulse/service-membership/internal/adapter"
	"github.com/clubpulse/service-membership/internal/domain/member"
)

// Notification texts sent by the lifecycle. Clients and the notification
// service match on them, so they must not change.
const (
	RenewalNotification = "Subscription renewed!"
	ExpiryNotification  = "Membership expired"
)

// RenewRequest holds the payload for a renewal over HTTP. Amount and
// duration are passed through to the collaborators as-is; whether a zero or
// negative charge is acceptable is the payment provider's call.
type RenewRequest struct {
	Amount       float64 `json:"amount"`
	DurationDays int     `json:"duration_days"`
}

// MembershipService owns the subscription lifecycle: payment-verified
// renewal and the batch expiry sweep. It holds no state of its own, so it is
// safe for concurrent use as long as its collaborators are.
type MembershipService struct {
	repo     member.MemberRepository
	payments adapter.PaymentGateway
	notifier adapter.Notifier
	clock    clock.Clock
	logger   *zap.Logger
}

// NewMembershipService creates a MembershipService.
func NewMembershipService(
	repo member.MemberRepository,
	payments adapter.PaymentGateway,
	notifier adapter.Notifier,
	c clock.Clock,
	logger *zap.Logger,
) *MembershipService {
	return &MembershipService{
		repo:     repo,
		payments: payments,
		notifier: notifier,
		clock:    c,
		logger:   logger,
	}
}

// Renew verifies payment of amount for the member and, on success, activates
// the membership for durationDays from now.
//
// The result is false with a nil error when the payment was declined: a
// normal negative outcome with zero side effects, distinct from the
// not-found error raised for an unknown member. On success the member is
// mutated, persisted and notified, in that order; once persistence has
// succeeded the renewal is durable even if the notification then fails.
func (s *MembershipService) Renew(ctx context.Context, memberID uuid.UUID, amount float64, durationDays int) (bool, error) {
	m, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		return false, err
	}

	authorized, err := s.payments.VerifyCharge(ctx, memberID, amount)
	if err != nil {
		return false, fmt.Errorf("payment verification failed: %w", err)
	}
	if !authorized {
		s.logger.Info("renewal declined by payment gateway",
			zap.String("member_id", memberID.String()),
			zap.Float64("amount", amount),
		)
		return false, nil
	}

	// One clock read covers the whole commit.
	now := s.clock.Now().UTC()
	m.Renew(now, durationDays)

	if err := s.repo.Update(ctx, m); err != nil {
		return false, fmt.Errorf("failed to persist renewal: %w", err)
	}

	if err := s.notifier.Send(ctx, memberID, RenewalNotification); err != nil {
		return true, fmt.Errorf("member renewed but notification failed: %w", err)
	}

	s.logger.Info("membership renewed",
		zap.String("member_id", memberID.String()),
		zap.Int("duration_days", durationDays),
		zap.Time("subscription_end", *m.SubscriptionEnd()),
	)
	return true, nil
}

// DeactivateExpired scans every member and deactivates those whose
// subscription end has passed, persisting and notifying each one.
//
// Members with no subscription end never expire, and members already
// inactive are left alone even when their end date is in the past, so
// running the sweep twice in a row touches nothing on the second pass. Each
// member is handled independently: a store or notifier failure for one is
// collected and the sweep moves on to the rest.
func (s *MembershipService) DeactivateExpired(ctx context.Context) error {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}

	now := s.clock.Now().UTC()

	var sweepErr *multierror.Error
	deactivated, failures := 0, 0
	for _, m := range members {
		if !m.IsActive() || !m.ExpiredAt(now) {
			continue
		}

		m.Deactivate(now)
		if err := s.repo.Update(ctx, m); err != nil {
			sweepErr = multierror.Append(sweepErr, fmt.Errorf("deactivate member %s: %w", m.ID(), err))
			failures++
			continue
		}

		if err := s.notifier.Send(ctx, m.ID(), ExpiryNotification); err != nil {
			sweepErr = multierror.Append(sweepErr, fmt.Errorf("notify member %s: %w", m.ID(), err))
			failures++
			continue
		}

		deactivated++
	}

	s.logger.Info("expiry sweep completed",
		zap.Int("scanned", len(members)),
		zap.Int("deactivated", deactivated),
		zap.Int("failures", failures),
	)
	return sweepErr.ErrorOrNil()
}
