package providers

import (
	"context"
)

// PaymentProvider is the external checkout collaborator. The gateway
// signals success by invoking the confirm callback registered at
// construction time; no real transaction semantics are implied.
type PaymentProvider interface {
	// InitiateCheckout starts a checkout for a chat session. The
	// provider confirms (or not) asynchronously.
	InitiateCheckout(ctx context.Context, sessionID string) error
}
