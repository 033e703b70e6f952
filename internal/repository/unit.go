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

type UnitRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUnitRepo(db *dbpg.DB) *UnitRepository {
	return &UnitRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const unitColumns = `id, kind, label, origin, destination, departs_at, arrives_at,
					 capacity, available, price, archived, created_at, updated_at`

func (r *UnitRepository) Create(ctx context.Context, u *domain.Unit) error {
	query := `INSERT INTO units (id, kind, label, origin, destination, departs_at, arrives_at,
								 capacity, available, price, archived, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		u.ID, u.Kind, u.Label, u.Origin, u.Destination, u.DepartsAt, u.ArrivesAt,
		u.Capacity, u.Available, u.Price, u.Archived, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}

	return nil
}

func (r *UnitRepository) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	query := `SELECT ` + unitColumns + `
			  FROM units
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}

	u, err := scanUnit(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("scan unit: %w", err)
	}

	return u, nil
}

func (r *UnitRepository) List(ctx context.Context, includeArchived bool) ([]*domain.Unit, error) {
	query := `SELECT ` + unitColumns + `
			  FROM units
			  WHERE archived = false OR $1
			  ORDER BY departs_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var res []*domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func (r *UnitRepository) Archive(ctx context.Context, id string) error {
	query := `UPDATE units SET archived = true, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("archive unit: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archive rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUnitNotFound
	}

	return nil
}

func scanUnit(scan func(dest ...any) error) (*domain.Unit, error) {
	var u domain.Unit
	if err := scan(
		&u.ID, &u.Kind, &u.Label, &u.Origin, &u.Destination, &u.DepartsAt, &u.ArrivesAt,
		&u.Capacity, &u.Available, &u.Price, &u.Archived, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
