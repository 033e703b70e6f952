package service

import (
	"context"
	"testing"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSettlementService(t *testing.T) (*SettlementService, *mocks.MockBookingRepo, *mocks.MockPaymentLedger, *mocks.MockPaymentGateway, *mocks.MockBookingNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	ledger := mocks.NewMockPaymentLedger(t)
	gw := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := NewSettlementService(bookingRepo, ledger, gw, notifier, newTestLogger(t))
	return svc, bookingRepo, ledger, gw, notifier
}

func pendingBooking(id, reference string, price float64) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		UserID:           "u1",
		TotalPrice:       price,
		BookingStatus:    domain.BookingStatusPending,
		PaymentStatus:    domain.PaymentStatusPending,
		GatewayReference: reference,
	}
}

func TestSettlementService_Settle_Success(t *testing.T) {
	svc, bookingRepo, ledger, _, notifier := newSettlementService(t)

	booking := pendingBooking("b1", "ref-1", 100.00)
	confirmed := pendingBooking("b1", "ref-1", 100.00)
	confirmed.BookingStatus = domain.BookingStatusConfirmed
	confirmed.PaymentStatus = domain.PaymentStatusCompleted

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Settle(mock.Anything, "b1", "ref-1", domain.OutcomeSuccess).Return(confirmed, nil)
	ledger.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed).Return()

	settled, err := svc.Settle(context.Background(), "b1", "ref-1", domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 10000,
		Currency:    "NGN",
		PaidAt:      time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, settled.PaymentStatus)
	assert.Equal(t, domain.BookingStatusConfirmed, settled.BookingStatus)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestSettlementService_Settle_ByReferenceOnly(t *testing.T) {
	svc, bookingRepo, ledger, _, notifier := newSettlementService(t)

	booking := pendingBooking("b1", "ref-1", 50.00)
	confirmed := pendingBooking("b1", "ref-1", 50.00)
	confirmed.BookingStatus = domain.BookingStatusConfirmed
	confirmed.PaymentStatus = domain.PaymentStatusCompleted

	bookingRepo.EXPECT().GetByReference(mock.Anything, "ref-1").Return(booking, nil)
	bookingRepo.EXPECT().Settle(mock.Anything, "b1", "ref-1", domain.OutcomeSuccess).Return(confirmed, nil)
	ledger.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed).Return()

	settled, err := svc.Settle(context.Background(), "", "ref-1", domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 5000,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, settled.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

// A webhook for a reference no booking carries is acknowledged and
// dropped, not retried forever by the provider.
func TestSettlementService_Settle_UnknownBookingIgnored(t *testing.T) {
	svc, bookingRepo, _, _, _ := newSettlementService(t)

	bookingRepo.EXPECT().GetByReference(mock.Anything, "ghost").Return(nil, domain.ErrBookingNotFound)

	settled, err := svc.Settle(context.Background(), "", "ghost", domain.GatewayOutcome{
		Outcome: domain.OutcomeSuccess,
	})

	assert.NoError(t, err)
	assert.Nil(t, settled)
}

func TestSettlementService_Settle_ReferenceMismatch(t *testing.T) {
	svc, bookingRepo, _, _, _ := newSettlementService(t)

	booking := pendingBooking("b1", "ref-real", 100.00)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Settle(context.Background(), "b1", "ref-forged", domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 10000,
	})

	assert.ErrorIs(t, err, domain.ErrReferenceMismatch)
}

// A success reported for the wrong amount settles as a failure. The
// booking must never confirm on money that was not actually charged.
func TestSettlementService_Settle_AmountMismatchForcesFailure(t *testing.T) {
	svc, bookingRepo, ledger, _, notifier := newSettlementService(t)

	booking := pendingBooking("b1", "ref-1", 100.00)
	failed := pendingBooking("b1", "ref-1", 100.00)
	failed.PaymentStatus = domain.PaymentStatusFailed

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Settle(mock.Anything, "b1", "ref-1", domain.OutcomeFailure).Return(failed, nil)
	ledger.EXPECT().Upsert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rec *domain.PaymentRecord) {
			assert.Equal(t, domain.OutcomeFailure, rec.Status)
			assert.Equal(t, int64(1), rec.AmountMinor)
		}).Return(nil)
	notifier.EXPECT().NotifyPaymentFailed(mock.Anything, failed).Return()

	settled, err := svc.Settle(context.Background(), "b1", "ref-1", domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 1, // one kobo instead of 10000
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, settled.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_Settle_PendingOutcomeNoOp(t *testing.T) {
	svc, bookingRepo, _, _, _ := newSettlementService(t)

	booking := pendingBooking("b1", "ref-1", 100.00)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	settled, err := svc.Settle(context.Background(), "b1", "ref-1", domain.GatewayOutcome{
		Outcome: domain.OutcomePending,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, settled.PaymentStatus)
}

// A second settlement with the same outcome lands on the same state
// and, since nothing changed, sends no second notification.
func TestSettlementService_Settle_RepeatDoesNotRenotify(t *testing.T) {
	svc, bookingRepo, ledger, _, _ := newSettlementService(t)

	confirmed := pendingBooking("b1", "ref-1", 100.00)
	confirmed.BookingStatus = domain.BookingStatusConfirmed
	confirmed.PaymentStatus = domain.PaymentStatusCompleted

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(confirmed, nil)
	bookingRepo.EXPECT().Settle(mock.Anything, "b1", "ref-1", domain.OutcomeSuccess).Return(confirmed, nil)
	ledger.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)

	settled, err := svc.Settle(context.Background(), "b1", "ref-1", domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 10000,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, settled.PaymentStatus)
}

// The ledger is an audit trail; its failure must not fail a settlement
// that already committed.
func TestSettlementService_Settle_LedgerFaultTolerated(t *testing.T) {
	svc, bookingRepo, ledger, _, notifier := newSettlementService(t)

	booking := pendingBooking("b1", "ref-1", 100.00)
	confirmed := pendingBooking("b1", "ref-1", 100.00)
	confirmed.BookingStatus = domain.BookingStatusConfirmed
	confirmed.PaymentStatus = domain.PaymentStatusCompleted

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Settle(mock.Anything, "b1", "ref-1", domain.OutcomeSuccess).Return(confirmed, nil)
	ledger.EXPECT().Upsert(mock.Anything, mock.Anything).Return(assert.AnError)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed).Return()

	settled, err := svc.Settle(context.Background(), "b1", "ref-1", domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 10000,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, settled.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_Verify(t *testing.T) {
	svc, bookingRepo, ledger, gw, notifier := newSettlementService(t)

	booking := pendingBooking("b1", "ref-1", 100.00)
	confirmed := pendingBooking("b1", "ref-1", 100.00)
	confirmed.BookingStatus = domain.BookingStatusConfirmed
	confirmed.PaymentStatus = domain.PaymentStatusCompleted

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	gw.EXPECT().Verify(mock.Anything, "ref-1").Return(&domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 10000,
		Currency:    "NGN",
	}, nil)
	bookingRepo.EXPECT().Settle(mock.Anything, "b1", "ref-1", domain.OutcomeSuccess).Return(confirmed, nil)
	ledger.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed).Return()

	settled, err := svc.Verify(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, settled.PaymentStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestSettlementService_Verify_NoSession(t *testing.T) {
	svc, bookingRepo, _, _, _ := newSettlementService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)

	_, err := svc.Verify(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// An unreachable gateway neither confirms nor fails the payment; the
// booking stays pending for the next attempt.
func TestSettlementService_Verify_GatewayDownChangesNothing(t *testing.T) {
	svc, bookingRepo, _, gw, _ := newSettlementService(t)

	booking := pendingBooking("b1", "ref-1", 100.00)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	gw.EXPECT().Verify(mock.Anything, "ref-1").Return(nil, domain.ErrGatewayUnavailable)

	_, err := svc.Verify(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
}

func TestSettlementService_ReverifyUnsettled(t *testing.T) {
	svc, bookingRepo, ledger, gw, notifier := newSettlementService(t)

	stale := pendingBooking("b1", "ref-1", 100.00)
	unreachable := pendingBooking("b2", "ref-2", 40.00)
	confirmed := pendingBooking("b1", "ref-1", 100.00)
	confirmed.BookingStatus = domain.BookingStatusConfirmed
	confirmed.PaymentStatus = domain.PaymentStatusCompleted

	bookingRepo.EXPECT().ListUnsettled(mock.Anything, 5*time.Minute).
		Return([]*domain.Booking{stale, unreachable}, nil)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(stale, nil)
	gw.EXPECT().Verify(mock.Anything, "ref-1").Return(&domain.GatewayOutcome{
		Outcome:     domain.OutcomeSuccess,
		AmountMinor: 10000,
	}, nil)
	bookingRepo.EXPECT().Settle(mock.Anything, "b1", "ref-1", domain.OutcomeSuccess).Return(confirmed, nil)
	ledger.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed).Return()

	bookingRepo.EXPECT().GetByID(mock.Anything, "b2").Return(unreachable, nil)
	gw.EXPECT().Verify(mock.Anything, "ref-2").Return(nil, domain.ErrGatewayUnavailable)

	settled, err := svc.ReverifyUnsettled(context.Background(), 5*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, 1, settled)

	time.Sleep(50 * time.Millisecond)
}
