package adapter

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway defines the Anti-Corruption Layer interface for the
// external payment provider. The gateway answers a single question: was this
// charge for this member authorized? It must not touch member state.
type PaymentGateway interface {
	VerifyCharge(ctx context.Context, memberID uuid.UUID, amount float64) (bool, error)
}

// MockPaymentGateway is a development/testing implementation of
// PaymentGateway. It approves every charge without contacting a provider.
type MockPaymentGateway struct {
	logger *zap.Logger
}

// NewMockPaymentGateway creates a mock gateway for development.
func NewMockPaymentGateway(logger *zap.Logger) *MockPaymentGateway {
	return &MockPaymentGateway{logger: logger}
}

// VerifyCharge approves the charge and logs it.
func (g *MockPaymentGateway) VerifyCharge(ctx context.Context, memberID uuid.UUID, amount float64) (bool, error) {
	g.logger.Info("[MOCK GATEWAY] charge verified",
		zap.String("member_id", memberID.String()),
		zap.Float64("amount", amount),
	)
	return true, nil
}
