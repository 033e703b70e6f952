package ports

import (
	"context"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
	NotifyPaymentFailed(ctx context.Context, b *domain.Booking)
}
