package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Upsert(ctx context.Context, rec *domain.PaymentRecord) error {
	query := `INSERT INTO payments (reference, booking_id, amount_minor, currency, status,
								    channel, paid_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
			  ON CONFLICT (reference) DO UPDATE
			  SET status = EXCLUDED.status,
				  channel = EXCLUDED.channel,
				  paid_at = EXCLUDED.paid_at,
				  updated_at = now()`
	paidAt := sql.NullTime{Time: rec.PaidAt, Valid: !rec.PaidAt.IsZero()}
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.Reference, rec.BookingID, rec.AmountMinor, rec.Currency,
		rec.Status, rec.Channel, paidAt,
	)
	if err != nil {
		return fmt.Errorf("upsert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*domain.PaymentRecord, error) {
	query := `SELECT reference, booking_id, amount_minor, currency, status, channel, paid_at,
					 created_at, updated_at
			  FROM payments
			  WHERE reference=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var (
		rec    domain.PaymentRecord
		paidAt sql.NullTime
	)
	if err = row.Scan(
		&rec.Reference, &rec.BookingID, &rec.AmountMinor, &rec.Currency,
		&rec.Status, &rec.Channel, &paidAt, &rec.CreatedAt, &rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	if paidAt.Valid {
		rec.PaidAt = paidAt.Time
	}

	return &rec, nil
}
