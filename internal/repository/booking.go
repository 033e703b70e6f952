package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lib/pq"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, user_id, outbound_unit_id, return_unit_id, quantity, total_price,
						contact_email, booking_status, payment_status, gateway_reference,
						created_at, updated_at`

func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Units are locked in id order so two overlapping itineraries
	// cannot deadlock each other.
	unitIDs := b.Itinerary.UnitIDs()
	locked := make([]string, len(unitIDs))
	copy(locked, unitIDs)
	sort.Strings(locked)

	prices := make(map[string]float64, len(locked))
	for _, id := range locked {
		lockQuery := `SELECT available, price, archived FROM units WHERE id = $1 FOR UPDATE`
		var available int
		var price float64
		var archived bool
		if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&available, &price, &archived); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w: %s", domain.ErrUnitNotFound, id)
			}
			return fmt.Errorf("lock unit: %w", err)
		}
		if archived {
			return fmt.Errorf("%w: %s is archived", domain.ErrUnitNotFound, id)
		}
		if available < b.Quantity {
			return fmt.Errorf("%w: unit %s has %d of %d requested",
				domain.ErrInsufficientSeats, id, available, b.Quantity)
		}
		prices[id] = price
	}

	for _, id := range locked {
		decQuery := `UPDATE units SET available = available - $1, updated_at = now()
					 WHERE id = $2 AND available >= $1`
		res, err := tx.ExecContext(ctx, decQuery, b.Quantity, id)
		if err != nil {
			return fmt.Errorf("decrement unit: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("decrement rows affected: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("%w: unit %s", domain.ErrInsufficientSeats, id)
		}
	}

	// Price at the locked rows, not at whatever the caller read earlier.
	var total float64
	for _, id := range unitIDs {
		total += prices[id] * float64(b.Quantity)
	}
	b.TotalPrice = total

	insertQuery := `INSERT INTO bookings (id, user_id, outbound_unit_id, return_unit_id, quantity,
										  total_price, contact_email, booking_status, payment_status,
										  created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	ret, _ := b.Itinerary.Return()
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.UserID, b.Itinerary.Outbound(), nullable(ret), b.Quantity,
		b.TotalPrice, b.ContactEmail, b.BookingStatus, b.PaymentStatus,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE gateway_reference=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking by reference: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) SetReference(ctx context.Context, bookingID, reference string) error {
	// The reference is immutable once assigned.
	query := `UPDATE bookings SET gateway_reference = $2, updated_at = now()
			  WHERE id = $1 AND gateway_reference IS NULL`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, reference)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: reference %s already in use", domain.ErrReferenceMismatch, reference)
		}
		return fmt.Errorf("set reference: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set reference rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, bookingID); err != nil {
			return err
		}
		return fmt.Errorf("%w: booking %s already has a reference", domain.ErrReferenceMismatch, bookingID)
	}

	return nil
}

func (r *BookingRepository) Settle(ctx context.Context, bookingID, reference string, out domain.Outcome) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + bookingColumns + `
				  FROM bookings
				  WHERE id = $1
				  FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, lockQuery, bookingID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	// Re-checked under the lock: the caller's earlier read may have
	// raced another settlement trigger.
	if b.GatewayReference == "" || b.GatewayReference != reference {
		return nil, domain.ErrReferenceMismatch
	}

	bs, ps, changed := domain.ApplySettlement(b.BookingStatus, b.PaymentStatus, out)
	if !changed {
		return b, tx.Commit()
	}

	updateQuery := `UPDATE bookings
					SET booking_status = $2, payment_status = $3, updated_at = now()
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, bookingID, bs, ps); err != nil {
		return nil, fmt.Errorf("settle booking: %w", err)
	}

	b.BookingStatus = bs
	b.PaymentStatus = ps
	b.UpdatedAt = time.Now().UTC()

	return b, tx.Commit()
}

func (r *BookingRepository) Cancel(ctx context.Context, bookingID string) (*domain.Booking, []string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + bookingColumns + `
				  FROM bookings
				  WHERE id = $1
				  FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, lockQuery, bookingID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrBookingNotFound
		}
		return nil, nil, fmt.Errorf("lock booking: %w", err)
	}

	if b.BookingStatus == domain.BookingStatusCancelled {
		return nil, nil, domain.ErrAlreadyCancelled
	}

	missing, err := restoreUnits(ctx, tx, b)
	if err != nil {
		return nil, nil, err
	}

	updateQuery := `UPDATE bookings SET booking_status = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, bookingID, domain.BookingStatusCancelled); err != nil {
		return nil, nil, fmt.Errorf("cancel booking: %w", err)
	}

	b.BookingStatus = domain.BookingStatusCancelled
	b.UpdatedAt = time.Now().UTC()

	return b, missing, tx.Commit()
}

func (r *BookingRepository) Purge(ctx context.Context, bookingID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + bookingColumns + `
				  FROM bookings
				  WHERE id = $1
				  FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, lockQuery, bookingID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}

	// A cancelled booking has already given its units back.
	if b.Holding() {
		if _, err = restoreUnits(ctx, tx, b); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) ListUnsettled(ctx context.Context, minAge time.Duration) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE booking_status = $1
				AND payment_status = $2
				AND gateway_reference IS NOT NULL
				AND created_at + make_interval(secs => $3) <= now()
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.PaymentStatusPending, minAge.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("list unsettled: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// restoreUnits gives the booking's quantity back to each referenced
// unit. Units deleted by an administrator are skipped and reported;
// the surrounding operation still completes.
func restoreUnits(ctx context.Context, tx *sql.Tx, b *domain.Booking) ([]string, error) {
	var missing []string
	for _, id := range b.Itinerary.UnitIDs() {
		query := `UPDATE units
				  SET available = LEAST(capacity, available + $1), updated_at = now()
				  WHERE id = $2`
		res, err := tx.ExecContext(ctx, query, b.Quantity, id)
		if err != nil {
			return nil, fmt.Errorf("restore unit: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("restore rows affected: %w", err)
		}
		if rows == 0 {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var outbound string
	var ret, reference sql.NullString
	if err := scan(
		&b.ID, &b.UserID, &outbound, &ret, &b.Quantity, &b.TotalPrice,
		&b.ContactEmail, &b.BookingStatus, &b.PaymentStatus, &reference,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if ret.Valid {
		b.Itinerary = domain.RoundTrip(outbound, ret.String)
	} else {
		b.Itinerary = domain.OneWay(outbound)
	}
	b.GatewayReference = reference.String
	return &b, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
