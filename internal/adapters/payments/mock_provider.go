package payments

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Aryan9369/HonestWork/internal/domain/providers"
)

// ConfirmFunc is called when the gateway reports a successful payment
type ConfirmFunc func(ctx context.Context, sessionID string) error

// MockProvider simulates a payment gateway for local development. Every
// checkout succeeds after a fixed delay, then the confirm callback runs.
// One-shot, no retry: a failed confirm is logged and dropped.
type MockProvider struct {
	delay   time.Duration
	confirm ConfirmFunc
}

// NewMockProvider creates a mock payment provider
func NewMockProvider(delay time.Duration, confirm ConfirmFunc) providers.PaymentProvider {
	return &MockProvider{
		delay:   delay,
		confirm: confirm,
	}
}

// InitiateCheckout schedules a successful confirmation after the delay.
// The wait is detached from the caller's context: the booking request
// finishes long before the gateway reports back, and a confirmation
// must not die with it.
func (m *MockProvider) InitiateCheckout(ctx context.Context, sessionID string) error {
	detached := context.WithoutCancel(ctx)
	timer := time.NewTimer(m.delay)
	go func() {
		defer timer.Stop()
		<-timer.C
		if err := m.confirm(detached, sessionID); err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("mock payment confirmation failed")
		}
	}()
	return nil
}
