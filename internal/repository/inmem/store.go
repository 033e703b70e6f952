// Package inmem is a mutex-guarded implementation of the repository
// ports. It mirrors the transactional semantics of the Postgres
// repositories closely enough to exercise the reservation and
// settlement invariants without a database.
package inmem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

// Store owns the shared state; the Units/Bookings/Payments views
// implement the corresponding ports over it.
type Store struct {
	mu       sync.RWMutex
	units    map[string]*domain.Unit
	bookings map[string]*domain.Booking
	payments map[string]*domain.PaymentRecord
}

func NewStore() *Store {
	return &Store{
		units:    make(map[string]*domain.Unit),
		bookings: make(map[string]*domain.Booking),
		payments: make(map[string]*domain.PaymentRecord),
	}
}

func (s *Store) Units() *UnitStore       { return &UnitStore{s: s} }
func (s *Store) Bookings() *BookingStore { return &BookingStore{s: s} }
func (s *Store) Payments() *PaymentStore { return &PaymentStore{s: s} }

// --- units ---

type UnitStore struct {
	s *Store
}

func (r *UnitStore) Create(_ context.Context, u *domain.Unit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *u
	r.s.units[u.ID] = &cp
	return nil
}

func (r *UnitStore) GetByID(_ context.Context, id string) (*domain.Unit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.units[id]
	if !ok {
		return nil, domain.ErrUnitNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UnitStore) List(_ context.Context, includeArchived bool) ([]*domain.Unit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var res []*domain.Unit
	for _, u := range r.s.units {
		if u.Archived && !includeArchived {
			continue
		}
		cp := *u
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].DepartsAt.Before(res[j].DepartsAt) })
	return res, nil
}

func (r *UnitStore) Archive(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.units[id]
	if !ok {
		return domain.ErrUnitNotFound
	}
	u.Archived = true
	return nil
}

// Delete removes a unit outright, as an administrative purge would.
func (r *UnitStore) Delete(id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.units, id)
}

// --- bookings ---

type BookingStore struct {
	s *Store
}

func (r *BookingStore) Reserve(_ context.Context, b *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Check every unit before touching any, so a failing reservation
	// leaves no partial decrement behind.
	unitIDs := b.Itinerary.UnitIDs()
	for _, id := range unitIDs {
		u, ok := r.s.units[id]
		if !ok || u.Archived {
			return fmt.Errorf("%w: %s", domain.ErrUnitNotFound, id)
		}
		if u.Available < b.Quantity {
			return fmt.Errorf("%w: unit %s has %d of %d requested",
				domain.ErrInsufficientSeats, id, u.Available, b.Quantity)
		}
	}

	var total float64
	for _, id := range unitIDs {
		u := r.s.units[id]
		u.Available -= b.Quantity
		total += u.Price * float64(b.Quantity)
	}
	b.TotalPrice = total

	cp := *b
	r.s.bookings[b.ID] = &cp
	return nil
}

func (r *BookingStore) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *BookingStore) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.bookings {
		if b.GatewayReference == reference {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *BookingStore) ListByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var res []*domain.Booking
	for _, b := range r.s.bookings {
		if b.UserID == userID {
			cp := *b
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *BookingStore) SetReference(_ context.Context, bookingID, reference string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.GatewayReference != "" {
		return fmt.Errorf("%w: booking %s already has a reference", domain.ErrReferenceMismatch, bookingID)
	}
	b.GatewayReference = reference
	return nil
}

func (r *BookingStore) Settle(_ context.Context, bookingID, reference string, out domain.Outcome) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.GatewayReference == "" || b.GatewayReference != reference {
		return nil, domain.ErrReferenceMismatch
	}

	bs, ps, changed := domain.ApplySettlement(b.BookingStatus, b.PaymentStatus, out)
	if changed {
		b.BookingStatus = bs
		b.PaymentStatus = ps
		b.UpdatedAt = time.Now().UTC()
	}
	cp := *b
	return &cp, nil
}

func (r *BookingStore) Cancel(_ context.Context, bookingID string) (*domain.Booking, []string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, nil, domain.ErrBookingNotFound
	}
	if b.BookingStatus == domain.BookingStatusCancelled {
		return nil, nil, domain.ErrAlreadyCancelled
	}

	missing := r.s.restore(b)
	b.BookingStatus = domain.BookingStatusCancelled
	b.UpdatedAt = time.Now().UTC()

	cp := *b
	return &cp, missing, nil
}

func (r *BookingStore) Purge(_ context.Context, bookingID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if b.Holding() {
		r.s.restore(b)
	}
	delete(r.s.bookings, bookingID)
	return nil
}

func (r *BookingStore) ListUnsettled(_ context.Context, minAge time.Duration) ([]*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cutoff := time.Now().Add(-minAge)
	var res []*domain.Booking
	for _, b := range r.s.bookings {
		if b.BookingStatus == domain.BookingStatusPending &&
			b.PaymentStatus == domain.PaymentStatusPending &&
			b.GatewayReference != "" &&
			!b.CreatedAt.After(cutoff) {
			cp := *b
			res = append(res, &cp)
		}
	}
	return res, nil
}

// restore gives the booking's quantity back to each referenced unit,
// clamped to capacity. Caller holds the write lock.
func (s *Store) restore(b *domain.Booking) []string {
	var missing []string
	for _, id := range b.Itinerary.UnitIDs() {
		u, ok := s.units[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		u.Available += b.Quantity
		if u.Available > u.Capacity {
			u.Available = u.Capacity
		}
	}
	return missing
}

// --- payments ---

type PaymentStore struct {
	s *Store
}

func (r *PaymentStore) Upsert(_ context.Context, rec *domain.PaymentRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *rec
	if prev, ok := r.s.payments[rec.Reference]; ok {
		cp.CreatedAt = prev.CreatedAt
	} else {
		cp.CreatedAt = time.Now().UTC()
	}
	cp.UpdatedAt = time.Now().UTC()
	r.s.payments[rec.Reference] = &cp
	return nil
}

func (r *PaymentStore) GetByReference(_ context.Context, reference string) (*domain.PaymentRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.payments[reference]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	cp := *rec
	return &cp, nil
}
