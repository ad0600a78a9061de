package events

import (
	"context"
	"strings"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/clubpulse/service-membership/internal/application"
	"github.com/clubpulse/service-membership/pkg/domain"
	"github.com/clubpulse/service-membership/pkg/events"
	"github.com/clubpulse/service-membership/pkg/kafka"
)

// PaymentEventConsumer listens to payment events and drives the asynchronous
// renewal path: a captured membership charge renews the member without an
// HTTP call.
type PaymentEventConsumer struct {
	consumer  *kafka.Consumer
	lifecycle *application.MembershipService
	logger    *zap.Logger
}

// NewPaymentEventConsumer creates a new consumer for payment events.
func NewPaymentEventConsumer(
	brokers []string,
	groupID string,
	lifecycle *application.MembershipService,
	logger *zap.Logger,
) *PaymentEventConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, events.TopicPaymentEvents, logger)
	return &PaymentEventConsumer{
		consumer:  consumer,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// Start begins consuming payment events. It blocks until the context is
// cancelled.
func (c *PaymentEventConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// handleMessage routes incoming Kafka messages to the appropriate handler.
func (c *PaymentEventConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from payment topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return err
	}

	c.logger.Info("received payment event",
		zap.String("type", cloudEvent.Type),
		zap.String("id", cloudEvent.ID),
	)

	switch {
	case strings.EqualFold(cloudEvent.Type, events.PaymentCaptured):
		return c.handlePaymentCaptured(ctx, cloudEvent)

	default:
		c.logger.Debug("ignoring unhandled payment event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

// handlePaymentCaptured processes a PaymentCapturedEvent by renewing the
// member it names.
func (c *PaymentEventConsumer) handlePaymentCaptured(ctx context.Context, ce kafka.CloudEvent) error {
	var event events.PaymentCapturedEvent
	if err := ce.ParseData(&event); err != nil {
		c.logger.Error("failed to parse PaymentCapturedEvent data", zap.Error(err))
		return err
	}

	renewed, err := c.lifecycle.Renew(ctx, event.MemberID, event.Amount, event.DurationDays)
	if err != nil {
		if domain.IsNotFound(err) {
			c.logger.Warn("payment captured for unknown member, skipping renewal",
				zap.String("member_id", event.MemberID.String()),
			)
			return nil
		}
		return err
	}

	if !renewed {
		c.logger.Warn("payment captured but charge verification declined renewal",
			zap.String("member_id", event.MemberID.String()),
			zap.Float64("amount", event.Amount),
		)
	}
	return nil
}

// Close closes the underlying Kafka consumer.
func (c *PaymentEventConsumer) Close() error {
	return c.consumer.Close()
}
