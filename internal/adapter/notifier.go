package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clubpulse/service-membership/pkg/events"
	"github.com/clubpulse/service-membership/pkg/kafka"
)

// Notifier delivers a message to a single member. Delivery is fire-and-forget
// from the lifecycle's perspective: a nil return means the message was
// accepted, not that it reached the member.
type Notifier interface {
	Send(ctx context.Context, memberID uuid.UUID, message string) error
}

// KafkaNotifier publishes member notifications to the event bus, where the
// notification service picks them up for delivery.
type KafkaNotifier struct {
	producer *kafka.Producer
	source   string
	logger   *zap.Logger
}

// NewKafkaNotifier creates a Notifier backed by the given producer.
func NewKafkaNotifier(producer *kafka.Producer, source string, logger *zap.Logger) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, source: source, logger: logger}
}

// Send publishes a MemberNotificationEvent for the member.
func (n *KafkaNotifier) Send(ctx context.Context, memberID uuid.UUID, message string) error {
	event := events.MemberNotificationEvent{
		MemberID:   memberID,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}

	ce, err := kafka.NewCloudEvent(n.source, events.MemberNotification, event)
	if err != nil {
		return fmt.Errorf("failed to create notification event: %w", err)
	}

	if err := n.producer.PublishEvent(ctx, events.TopicMemberEvents, ce); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.logger.Debug("notification queued",
		zap.String("member_id", memberID.String()),
		zap.String("message", message),
	)
	return nil
}
