package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	unitRepo    ports.UnitRepo
	gateway     ports.PaymentGateway
	notifier    ports.BookingNotifier
	currency    string
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	unitRepo ports.UnitRepo,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	currency string,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		unitRepo:    unitRepo,
		gateway:     gateway,
		notifier:    notifier,
		currency:    currency,
		logger:      logger,
	}
}

// Reserve validates the request, atomically takes the inventory and
// creates the pending booking, then opens a payment session for it.
// The gateway reference is persisted before the booking is returned,
// so a webhook racing the response can already be matched.
func (s *BookingService) Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Booking, *domain.PaymentSession, error) {
	if input.Quantity < 1 {
		return nil, nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}
	if input.OutboundID == "" {
		return nil, nil, fmt.Errorf("%w: outbound unit is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(input.ContactEmail); err != nil {
		return nil, nil, fmt.Errorf("%w: contact email is invalid", domain.ErrValidation)
	}

	itinerary, err := s.buildItinerary(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        input.UserID,
		Itinerary:     itinerary,
		Quantity:      input.Quantity,
		ContactEmail:  input.ContactEmail,
		BookingStatus: domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.bookingRepo.Reserve(ctx, booking); err != nil {
		return nil, nil, fmt.Errorf("reserve: %w", err)
	}

	s.logger.Info("booking reserved",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", booking.UserID),
		logger.Int("quantity", booking.Quantity),
		logger.Any("total_price", booking.TotalPrice),
	)

	session, err := s.gateway.Initiate(ctx, ports.InitiatePayment{
		BookingID:   booking.ID,
		AmountMinor: booking.AmountMinor(),
		Currency:    s.currency,
		PayerEmail:  booking.ContactEmail,
	})
	if err != nil {
		// The reservation stands; the booking keeps holding its units
		// until it is paid for or cancelled.
		return booking, nil, fmt.Errorf("initiate payment: %w", err)
	}

	if err = s.bookingRepo.SetReference(ctx, booking.ID, session.Reference); err != nil {
		return booking, nil, fmt.Errorf("persist reference: %w", err)
	}
	booking.GatewayReference = session.Reference

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, session, nil
}

func (s *BookingService) buildItinerary(ctx context.Context, input domain.ReserveInput) (domain.Itinerary, error) {
	outbound, err := s.unitRepo.GetByID(ctx, input.OutboundID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("check outbound unit: %w", err)
	}

	if input.ReturnID == "" {
		return domain.OneWay(outbound.ID), nil
	}

	ret, err := s.unitRepo.GetByID(ctx, input.ReturnID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("check return unit: %w", err)
	}

	if outbound.Kind != domain.UnitKindFlight || ret.Kind != domain.UnitKindFlight {
		return domain.Itinerary{}, fmt.Errorf("%w: a return leg is only valid for flights", domain.ErrValidation)
	}
	if ret.Origin != outbound.Destination || ret.Destination != outbound.Origin {
		return domain.Itinerary{}, fmt.Errorf("%w: %s-%s does not return %s-%s",
			domain.ErrInvalidRoute, ret.Origin, ret.Destination, outbound.Origin, outbound.Destination)
	}
	if !ret.DepartsAt.After(outbound.ArrivesAt) {
		return domain.Itinerary{}, fmt.Errorf("%w: return departs before the outbound arrives", domain.ErrInvalidRoute)
	}

	return domain.RoundTrip(outbound.ID, ret.ID), nil
}

func (s *BookingService) Get(ctx context.Context, id string, principal domain.Principal) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.MayManage(booking) {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// Cancel restores the booking's inventory and marks it cancelled. Only
// the owning user or an administrator may cancel, and cancelling twice
// is an error so client bugs surface.
func (s *BookingService) Cancel(ctx context.Context, id string, principal domain.Principal) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !principal.MayManage(booking) {
		return nil, domain.ErrForbidden
	}

	cancelled, missing, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	for _, unitID := range missing {
		s.logger.Warn("unit missing during cancellation, restoration skipped",
			logger.String("booking_id", id),
			logger.String("unit_id", unitID),
		)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", id),
		logger.String("user_id", booking.UserID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), cancelled)

	return cancelled, nil
}

// Purge is the administrative delete. Inventory still held by the
// booking is restored as part of the same operation.
func (s *BookingService) Purge(ctx context.Context, id string, principal domain.Principal) error {
	if !principal.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.bookingRepo.Purge(ctx, id); err != nil {
		return fmt.Errorf("purge booking: %w", err)
	}

	s.logger.Info("booking purged", logger.String("booking_id", id))
	return nil
}
