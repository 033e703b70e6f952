package ports

import (
	"context"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

type UnitRepo interface {
	Create(ctx context.Context, u *domain.Unit) error
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Unit, error)
	Archive(ctx context.Context, id string) error
}
