package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SettlementService converges the two notification paths (client
// verification and provider webhook) onto one idempotent transition
// per booking.
type SettlementService struct {
	bookingRepo ports.BookingRepo
	ledger      ports.PaymentLedger
	gateway     ports.PaymentGateway
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewSettlementService(
	bookingRepo ports.BookingRepo,
	ledger ports.PaymentLedger,
	gateway ports.PaymentGateway,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *SettlementService {
	return &SettlementService{
		bookingRepo: bookingRepo,
		ledger:      ledger,
		gateway:     gateway,
		notifier:    notifier,
		logger:      logger,
	}
}

// Settle applies a gateway outcome to a booking exactly once. It may be
// called concurrently from both trigger paths with the outcomes in any
// order; the final state is the same. bookingID may be empty, in which
// case the booking is looked up by reference (webhooks for records we
// do not hold are not an error: the result is then nil, nil).
func (s *SettlementService) Settle(ctx context.Context, bookingID, reference string, res domain.GatewayOutcome) (*domain.Booking, error) {
	booking, err := s.loadTarget(ctx, bookingID, reference)
	if err != nil || booking == nil {
		return nil, err
	}

	if booking.GatewayReference == "" || booking.GatewayReference != reference {
		s.logger.Warn("settlement reference mismatch",
			logger.String("booking_id", booking.ID),
			logger.String("reference", reference),
		)
		return nil, domain.ErrReferenceMismatch
	}

	// The gateway has not concluded the session: nothing to settle.
	if res.Outcome == domain.OutcomePending {
		return booking, nil
	}

	outcome := res.Outcome
	if res.AmountMinor != booking.AmountMinor() {
		// Never confirm for the wrong amount, whatever the caller says.
		s.logger.Error("settlement amount mismatch",
			logger.String("booking_id", booking.ID),
			logger.String("reference", reference),
			logger.Int64("expected", booking.AmountMinor()),
			logger.Int64("received", res.AmountMinor),
		)
		outcome = domain.OutcomeFailure
	}

	before := booking.PaymentStatus
	settled, err := s.bookingRepo.Settle(ctx, booking.ID, reference, outcome)
	if err != nil {
		return nil, fmt.Errorf("settle booking: %w", err)
	}

	// Audit only; a ledger fault must not undo a settled payment.
	if err = s.ledger.Upsert(ctx, &domain.PaymentRecord{
		Reference:   reference,
		BookingID:   booking.ID,
		AmountMinor: res.AmountMinor,
		Currency:    res.Currency,
		Status:      outcome,
		Channel:     res.Channel,
		PaidAt:      res.PaidAt,
	}); err != nil {
		s.logger.Error("payment ledger upsert failed",
			logger.String("reference", reference),
			logger.String("error", err.Error()),
		)
	}

	if settled.PaymentStatus != before {
		switch settled.PaymentStatus {
		case domain.PaymentStatusCompleted:
			s.logger.Info("booking confirmed",
				logger.String("booking_id", settled.ID),
				logger.String("reference", reference),
			)
			go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), settled)
		case domain.PaymentStatusFailed:
			s.logger.Info("payment failed",
				logger.String("booking_id", settled.ID),
				logger.String("reference", reference),
			)
			go s.notifier.NotifyPaymentFailed(context.WithoutCancel(ctx), settled)
		}
	}

	return settled, nil
}

// Verify is the client-initiated trigger: ask the gateway for the
// session outcome and settle with it. A gateway that cannot be reached
// leaves the booking exactly as it was.
func (s *SettlementService) Verify(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GatewayReference == "" {
		return nil, fmt.Errorf("%w: booking has no payment session", domain.ErrValidation)
	}

	res, err := s.gateway.Verify(ctx, booking.GatewayReference)
	if err != nil {
		return nil, fmt.Errorf("verify payment: %w", err)
	}

	return s.Settle(ctx, booking.ID, booking.GatewayReference, *res)
}

// ReverifyUnsettled re-runs Verify for pending bookings whose payment
// session is at least minAge old; the retry path for settlements that
// earlier hit an unreachable gateway. Returns how many bookings
// reached a settled state.
func (s *SettlementService) ReverifyUnsettled(ctx context.Context, minAge time.Duration) (int, error) {
	pending, err := s.bookingRepo.ListUnsettled(ctx, minAge)
	if err != nil {
		return 0, fmt.Errorf("list unsettled: %w", err)
	}

	settled := 0
	for _, b := range pending {
		updated, err := s.Verify(ctx, b.ID)
		if err != nil {
			// Unreachable gateway just means another round later.
			s.logger.Warn("reverify failed",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if updated != nil && updated.PaymentStatus != domain.PaymentStatusPending {
			settled++
		}
	}

	return settled, nil
}

func (s *SettlementService) loadTarget(ctx context.Context, bookingID, reference string) (*domain.Booking, error) {
	var (
		booking *domain.Booking
		err     error
	)
	if bookingID != "" {
		booking, err = s.bookingRepo.GetByID(ctx, bookingID)
	} else {
		booking, err = s.bookingRepo.GetByReference(ctx, reference)
	}
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Info("settlement for unknown booking ignored",
				logger.String("booking_id", bookingID),
				logger.String("reference", reference),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("load booking: %w", err)
	}
	return booking, nil
}
