package ports

import (
	"context"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

type BookingRepo interface {
	// Reserve checks availability on every referenced unit, decrements
	// it, prices the booking and inserts the record, all in one
	// transaction. On any failure nothing is applied.
	Reserve(ctx context.Context, b *domain.Booking) error

	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)

	// SetReference assigns the gateway reference once; a second
	// assignment is rejected.
	SetReference(ctx context.Context, bookingID, reference string) error

	// Settle applies the settlement reducer to the booking under a row
	// lock and returns the post-transition record.
	Settle(ctx context.Context, bookingID, reference string, out domain.Outcome) (*domain.Booking, error)

	// Cancel restores the booking's units and marks it cancelled. Units
	// that no longer exist are skipped and reported in the second
	// return value; the cancellation still lands.
	Cancel(ctx context.Context, bookingID string) (*domain.Booking, []string, error)

	// Purge deletes the record, restoring inventory if the booking was
	// still holding reserved units.
	Purge(ctx context.Context, bookingID string) error

	// ListUnsettled returns pending/pending bookings that already carry
	// a gateway reference and were created at least minAge ago.
	ListUnsettled(ctx context.Context, minAge time.Duration) ([]*domain.Booking, error)
}
