// Package events defines the topics and payloads shared between ClubPulse
// services on the event bus.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics.
const (
	TopicMemberEvents  = "member.events"
	TopicPaymentEvents = "payment.events"
)

// Event types.
const (
	MemberNotification = "member.notification"
	PaymentCaptured    = "payment.captured"
)

// MemberNotificationEvent carries a message addressed to a single member.
// Delivery transport (email, push) is owned by the notification service.
type MemberNotificationEvent struct {
	MemberID   uuid.UUID `json:"member_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentCapturedEvent is published by the payment service once a membership
// charge has been captured. It drives the asynchronous renewal path.
type PaymentCapturedEvent struct {
	MemberID     uuid.UUID `json:"member_id"`
	Amount       float64   `json:"amount"`
	DurationDays int       `json:"duration_days"`
	OccurredAt   time.Time `json:"occurred_at"`
}
