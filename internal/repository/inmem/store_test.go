package inmem

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUnit(t *testing.T, s *Store, capacity int, price float64) *domain.Unit {
	t.Helper()
	u := &domain.Unit{
		ID:          uuid.New().String(),
		Kind:        domain.UnitKindFlight,
		Label:       "LOS-ABV",
		Origin:      "LOS",
		Destination: "ABV",
		DepartsAt:   time.Now().Add(24 * time.Hour),
		ArrivesAt:   time.Now().Add(25 * time.Hour),
		Capacity:    capacity,
		Available:   capacity,
		Price:       price,
	}
	require.NoError(t, s.Units().Create(context.Background(), u))
	return u
}

func newBooking(unitIDs []string, quantity int) *domain.Booking {
	it := domain.OneWay(unitIDs[0])
	if len(unitIDs) > 1 {
		it = domain.RoundTrip(unitIDs[0], unitIDs[1])
	}
	return &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        uuid.New().String(),
		Itinerary:     it,
		Quantity:      quantity,
		ContactEmail:  "alice@example.com",
		BookingStatus: domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}
}

func TestStore_Reserve_DecrementsAndPrices(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	out := seedUnit(t, s, 10, 100.00)
	back := seedUnit(t, s, 10, 80.00)

	b := newBooking([]string{out.ID, back.ID}, 2)
	require.NoError(t, s.Bookings().Reserve(ctx, b))

	assert.Equal(t, 360.00, b.TotalPrice) // (100+80)*2

	gotOut, _ := s.Units().GetByID(ctx, out.ID)
	gotBack, _ := s.Units().GetByID(ctx, back.ID)
	assert.Equal(t, 8, gotOut.Available)
	assert.Equal(t, 8, gotBack.Available)
}

// A shortfall on the second leg must leave the first leg untouched.
func TestStore_Reserve_AllOrNothing(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	out := seedUnit(t, s, 10, 100.00)
	back := seedUnit(t, s, 1, 80.00)

	b := newBooking([]string{out.ID, back.ID}, 2)
	err := s.Bookings().Reserve(ctx, b)

	assert.ErrorIs(t, err, domain.ErrInsufficientSeats)

	gotOut, _ := s.Units().GetByID(ctx, out.ID)
	assert.Equal(t, 10, gotOut.Available, "failed reservation must not decrement")
}

func TestStore_Reserve_ArchivedUnitRejected(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUnit(t, s, 10, 100.00)
	require.NoError(t, s.Units().Archive(ctx, u.ID))

	err := s.Bookings().Reserve(ctx, newBooking([]string{u.ID}, 1))
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)
}

// N concurrent reservations against capacity C admit exactly C and
// never oversell.
func TestStore_Reserve_NoOversellUnderContention(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	const capacity = 25
	const contenders = 100
	u := seedUnit(t, s, capacity, 50.00)

	var wg sync.WaitGroup
	results := make(chan error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.Bookings().Reserve(ctx, newBooking([]string{u.ID}, 1))
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		if err == nil {
			admitted++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientSeats)
		}
	}

	assert.Equal(t, capacity, admitted)
	got, _ := s.Units().GetByID(ctx, u.ID)
	assert.Equal(t, 0, got.Available)
}

func TestStore_SetReference_OnceOnly(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUnit(t, s, 10, 100.00)

	b := newBooking([]string{u.ID}, 1)
	require.NoError(t, s.Bookings().Reserve(ctx, b))

	require.NoError(t, s.Bookings().SetReference(ctx, b.ID, "ref-1"))
	err := s.Bookings().SetReference(ctx, b.ID, "ref-2")
	assert.ErrorIs(t, err, domain.ErrReferenceMismatch)

	got, _ := s.Bookings().GetByReference(ctx, "ref-1")
	assert.Equal(t, b.ID, got.ID)
}

func TestStore_Settle_WrongReferenceRejected(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUnit(t, s, 10, 100.00)

	b := newBooking([]string{u.ID}, 1)
	require.NoError(t, s.Bookings().Reserve(ctx, b))
	require.NoError(t, s.Bookings().SetReference(ctx, b.ID, "ref-1"))

	_, err := s.Bookings().Settle(ctx, b.ID, "ref-forged", domain.OutcomeSuccess)
	assert.ErrorIs(t, err, domain.ErrReferenceMismatch)
}

// Concurrent settlements from both trigger paths converge on one
// final state regardless of interleaving.
func TestStore_Settle_ConcurrentTriggersConverge(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUnit(t, s, 10, 100.00)

	b := newBooking([]string{u.ID}, 1)
	require.NoError(t, s.Bookings().Reserve(ctx, b))
	require.NoError(t, s.Bookings().SetReference(ctx, b.ID, "ref-1"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		out := domain.OutcomeSuccess
		if i%2 == 0 {
			out = domain.OutcomeFailure
		}
		wg.Add(1)
		go func(out domain.Outcome) {
			defer wg.Done()
			_, err := s.Bookings().Settle(ctx, b.ID, "ref-1", out)
			assert.NoError(t, err)
		}(out)
	}
	wg.Wait()

	got, err := s.Bookings().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, got.PaymentStatus, "a success outcome always wins")
	assert.Equal(t, domain.BookingStatusConfirmed, got.BookingStatus)
}

func TestStore_Cancel_RestoresExactly(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	out := seedUnit(t, s, 10, 100.00)
	back := seedUnit(t, s, 10, 80.00)

	b := newBooking([]string{out.ID, back.ID}, 3)
	require.NoError(t, s.Bookings().Reserve(ctx, b))

	cancelled, missing, err := s.Bookings().Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, missing)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.BookingStatus)

	gotOut, _ := s.Units().GetByID(ctx, out.ID)
	gotBack, _ := s.Units().GetByID(ctx, back.ID)
	assert.Equal(t, 10, gotOut.Available)
	assert.Equal(t, 10, gotBack.Available)
}

func TestStore_Cancel_Twice(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUnit(t, s, 10, 100.00)

	b := newBooking([]string{u.ID}, 2)
	require.NoError(t, s.Bookings().Reserve(ctx, b))

	_, _, err := s.Bookings().Cancel(ctx, b.ID)
	require.NoError(t, err)

	_, _, err = s.Bookings().Cancel(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)

	// The double cancel must not restore twice.
	got, _ := s.Units().GetByID(ctx, u.ID)
	assert.Equal(t, 10, got.Available)
}

func TestStore_Cancel_MissingUnitReported(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	out := seedUnit(t, s, 10, 100.00)
	back := seedUnit(t, s, 10, 80.00)

	b := newBooking([]string{out.ID, back.ID}, 1)
	require.NoError(t, s.Bookings().Reserve(ctx, b))

	s.Units().Delete(back.ID)

	cancelled, missing, err := s.Bookings().Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.BookingStatus)
	assert.Equal(t, []string{back.ID}, missing)

	gotOut, _ := s.Units().GetByID(ctx, out.ID)
	assert.Equal(t, 10, gotOut.Available, "surviving unit still restored")
}

func TestStore_Purge(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUnit(t, s, 10, 100.00)

	held := newBooking([]string{u.ID}, 2)
	require.NoError(t, s.Bookings().Reserve(ctx, held))
	require.NoError(t, s.Bookings().Purge(ctx, held.ID))

	got, _ := s.Units().GetByID(ctx, u.ID)
	assert.Equal(t, 10, got.Available, "purging a holding booking restores its units")

	released := newBooking([]string{u.ID}, 2)
	require.NoError(t, s.Bookings().Reserve(ctx, released))
	_, _, err := s.Bookings().Cancel(ctx, released.ID)
	require.NoError(t, err)
	require.NoError(t, s.Bookings().Purge(ctx, released.ID))

	got, _ = s.Units().GetByID(ctx, u.ID)
	assert.Equal(t, 10, got.Available, "purging a cancelled booking must not restore twice")

	_, err = s.Bookings().GetByID(ctx, released.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestStore_ListUnsettled(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := seedUnit(t, s, 30, 100.00)

	stale := newBooking([]string{u.ID}, 1)
	stale.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, s.Bookings().Reserve(ctx, stale))
	require.NoError(t, s.Bookings().SetReference(ctx, stale.ID, "ref-stale"))

	fresh := newBooking([]string{u.ID}, 1)
	require.NoError(t, s.Bookings().Reserve(ctx, fresh))
	require.NoError(t, s.Bookings().SetReference(ctx, fresh.ID, "ref-fresh"))

	noSession := newBooking([]string{u.ID}, 1)
	noSession.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, s.Bookings().Reserve(ctx, noSession))

	settled := newBooking([]string{u.ID}, 1)
	settled.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, s.Bookings().Reserve(ctx, settled))
	require.NoError(t, s.Bookings().SetReference(ctx, settled.ID, "ref-done"))
	_, err := s.Bookings().Settle(ctx, settled.ID, "ref-done", domain.OutcomeSuccess)
	require.NoError(t, err)

	unsettled, err := s.Bookings().ListUnsettled(ctx, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, unsettled, 1)
	assert.Equal(t, stale.ID, unsettled[0].ID)
}

func TestStore_Payments_Upsert(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	rec := &domain.PaymentRecord{
		Reference:   "ref-1",
		BookingID:   "b1",
		AmountMinor: 15000,
		Currency:    "NGN",
		Status:      domain.OutcomeFailure,
	}
	require.NoError(t, s.Payments().Upsert(ctx, rec))

	rec.Status = domain.OutcomeSuccess
	rec.Channel = "card"
	require.NoError(t, s.Payments().Upsert(ctx, rec))

	got, err := s.Payments().GetByReference(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSuccess, got.Status)
	assert.Equal(t, "card", got.Channel)

	_, err = s.Payments().GetByReference(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
