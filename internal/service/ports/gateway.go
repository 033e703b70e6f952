package ports

import (
	"context"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

type InitiatePayment struct {
	BookingID   string
	AmountMinor int64
	Currency    string
	PayerEmail  string
}

type PaymentGateway interface {
	// Initiate opens a payment session with the provider. The returned
	// reference is globally unique.
	Initiate(ctx context.Context, in InitiatePayment) (*domain.PaymentSession, error)

	// Verify asks the provider for the session's outcome. Network and
	// provider-side faults surface as domain.ErrGatewayUnavailable,
	// never as a failure outcome.
	Verify(ctx context.Context, reference string) (*domain.GatewayOutcome, error)
}
