package ports

import (
	"context"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

// PaymentLedger is the audit trail of gateway outcomes, keyed by
// reference. One row per reference; later outcomes update in place.
type PaymentLedger interface {
	Upsert(ctx context.Context, rec *domain.PaymentRecord) error
	GetByReference(ctx context.Context, reference string) (*domain.PaymentRecord, error)
}
