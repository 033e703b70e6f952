package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/service/ports"
)

type UnitService struct {
	repo ports.UnitRepo
}

func NewUnitService(repo ports.UnitRepo) *UnitService {
	return &UnitService{repo: repo}
}

func (s *UnitService) Create(ctx context.Context, input domain.CreateUnitInput) (*domain.Unit, error) {
	if input.Kind != domain.UnitKindFlight && input.Kind != domain.UnitKindRoom {
		return nil, fmt.Errorf("%w: kind must be flight or room", domain.ErrValidation)
	}
	if input.Label == "" {
		return nil, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if !input.ArrivesAt.After(input.DepartsAt) {
		return nil, fmt.Errorf("%w: arrival must be after departure", domain.ErrValidation)
	}
	if input.Kind == domain.UnitKindFlight {
		if input.Origin == "" || input.Destination == "" {
			return nil, fmt.Errorf("%w: flights need origin and destination", domain.ErrValidation)
		}
		if input.Origin == input.Destination {
			return nil, fmt.Errorf("%w: origin and destination must differ", domain.ErrValidation)
		}
	}

	now := time.Now().UTC()
	unit := &domain.Unit{
		ID:          uuid.New().String(),
		Kind:        input.Kind,
		Label:       input.Label,
		Origin:      input.Origin,
		Destination: input.Destination,
		DepartsAt:   input.DepartsAt,
		ArrivesAt:   input.ArrivesAt,
		Capacity:    input.Capacity,
		Available:   input.Capacity,
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("create unit: %w", err)
	}

	return unit, nil
}

func (s *UnitService) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UnitService) List(ctx context.Context, includeArchived bool) ([]*domain.Unit, error) {
	return s.repo.List(ctx, includeArchived)
}

func (s *UnitService) Archive(ctx context.Context, id string) error {
	return s.repo.Archive(ctx, id)
}
