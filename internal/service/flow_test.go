package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/repository/inmem"
	"github.com/Emmilex20/air-classic-travel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// The full reserve-pay-settle cycle over the in-memory repositories,
// with both settlement triggers firing concurrently.
func TestFlow_ReserveThenConcurrentSettlement(t *testing.T) {
	ctx := context.Background()
	store := inmem.NewStore()
	gw := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	units := NewUnitService(store.Units())
	bookings := NewBookingService(store.Bookings(), store.Units(), gw, notifier, "NGN", log)
	settlements := NewSettlementService(store.Bookings(), store.Payments(), gw, notifier, log)

	unit, err := units.Create(ctx, domain.CreateUnitInput{
		Kind:        domain.UnitKindFlight,
		Label:       "LOS-ABV morning",
		Origin:      "LOS",
		Destination: "ABV",
		DepartsAt:   time.Now().Add(24 * time.Hour),
		ArrivesAt:   time.Now().Add(25 * time.Hour),
		Capacity:    50,
		Price:       120.00,
	})
	require.NoError(t, err)

	gw.EXPECT().Initiate(mock.Anything, mock.Anything).
		Return(&domain.PaymentSession{Reference: "ref-flow", AccessURL: "https://pay/x"}, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything).Return().Maybe()

	booking, session, err := bookings.Reserve(ctx, domain.ReserveInput{
		UserID:       "5c0c3f44-0000-4000-8000-000000000001",
		OutboundID:   unit.ID,
		Quantity:     2,
		ContactEmail: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 240.00, booking.TotalPrice)
	assert.Equal(t, "ref-flow", session.Reference)

	held, _ := units.GetByID(ctx, unit.ID)
	assert.Equal(t, 48, held.Available)

	outcome := domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 24000,
		Currency:    "NGN",
		PaidAt:      time.Now(),
		Channel:     "card",
	}
	gw.EXPECT().Verify(mock.Anything, "ref-flow").Return(&outcome, nil).Maybe()

	// Webhook and client verification race each other.
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := settlements.Settle(ctx, "", "ref-flow", outcome)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := settlements.Verify(ctx, booking.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := store.Bookings().GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, final.BookingStatus)
	assert.Equal(t, domain.PaymentStatusCompleted, final.PaymentStatus)

	// The ledger converged onto one row for the reference.
	rec, err := store.Payments().GetByReference(ctx, "ref-flow")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, rec.Status)
	assert.Equal(t, int64(24000), rec.AmountMinor)

	// Still at 48: settlement never touches inventory.
	held, _ = units.GetByID(ctx, unit.ID)
	assert.Equal(t, 48, held.Available)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

// A failed payment leaves the reservation holding its inventory; only
// an explicit cancellation releases it.
func TestFlow_FailedPaymentThenCancel(t *testing.T) {
	ctx := context.Background()
	store := inmem.NewStore()
	gw := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	units := NewUnitService(store.Units())
	bookings := NewBookingService(store.Bookings(), store.Units(), gw, notifier, "NGN", log)
	settlements := NewSettlementService(store.Bookings(), store.Payments(), gw, notifier, log)

	unit, err := units.Create(ctx, domain.CreateUnitInput{
		Kind:      domain.UnitKindRoom,
		Label:     "Deluxe suite",
		DepartsAt: time.Now().Add(24 * time.Hour),
		ArrivesAt: time.Now().Add(72 * time.Hour),
		Capacity:  5,
		Price:     200.00,
	})
	require.NoError(t, err)

	gw.EXPECT().Initiate(mock.Anything, mock.Anything).
		Return(&domain.PaymentSession{Reference: "ref-fail"}, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyPaymentFailed(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything).Return().Maybe()

	owner := domain.Principal{UserID: "5c0c3f44-0000-4000-8000-000000000002", Role: domain.RoleUser}
	booking, _, err := bookings.Reserve(ctx, domain.ReserveInput{
		UserID:       owner.UserID,
		OutboundID:   unit.ID,
		Quantity:     1,
		ContactEmail: "bob@example.com",
	})
	require.NoError(t, err)

	settled, err := settlements.Settle(ctx, "", "ref-fail", domain.GatewayOutcome{
		Outcome:     domain.OutcomeFailure,
		AmountMinor: booking.AmountMinor(),
		Currency:    "NGN",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, settled.PaymentStatus)
	assert.Equal(t, domain.BookingStatusPending, settled.BookingStatus)

	held, _ := units.GetByID(ctx, unit.ID)
	assert.Equal(t, 4, held.Available, "failed payment does not release inventory")

	cancelled, err := bookings.Cancel(ctx, booking.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.BookingStatus)

	held, _ = units.GetByID(ctx, unit.ID)
	assert.Equal(t, 5, held.Available, "cancellation restores the held quantity")

	time.Sleep(50 * time.Millisecond)
}
