package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/gateway"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Reserve(ctx context.Context, input domain.ReserveInput) (*domain.Booking, *domain.PaymentSession, error)
	Get(ctx context.Context, id string, principal domain.Principal) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, principal domain.Principal) (*domain.Booking, error)
	Purge(ctx context.Context, id string, principal domain.Principal) error
}

type SettlementSvc interface {
	Verify(ctx context.Context, bookingID string) (*domain.Booking, error)
	Settle(ctx context.Context, bookingID, reference string, res domain.GatewayOutcome) (*domain.Booking, error)
}

type UnitSvc interface {
	Create(ctx context.Context, input domain.CreateUnitInput) (*domain.Unit, error)
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Unit, error)
	Archive(ctx context.Context, id string) error
}

type Handler struct {
	bookingService    BookingSvc
	settlementService SettlementSvc
	unitService       UnitSvc
	webhook           *gateway.Webhook
}

func NewHandler(
	bookingService BookingSvc,
	settlementService SettlementSvc,
	unitService UnitSvc,
	webhook *gateway.Webhook,
) *Handler {
	return &Handler{
		bookingService:    bookingService,
		settlementService: settlementService,
		unitService:       unitService,
		webhook:           webhook,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, errorBody(err))

	case errors.Is(err, domain.ErrInsufficientSeats),
		errors.Is(err, domain.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, errorBody(err))

	case errors.Is(err, domain.ErrReferenceMismatch):
		// Integrity failures stay vague for the caller; the audit log
		// keeps the specifics.
		c.JSON(http.StatusConflict, ginext.H{
			"error": "payment could not be confirmed, contact support",
		})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidRoute):
		c.JSON(http.StatusBadRequest, errorBody(err))

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody(err))

	case errors.Is(err, domain.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, ginext.H{
			"error": "payment gateway unavailable, try again later",
		})

	default:
		c.JSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
	}
}

func errorBody(err error) ginext.H {
	return ginext.H{"error": err.Error()}
}

// isIntegrityError marks settlement faults the webhook endpoint
// acknowledges rather than asks the provider to retry.
func isIntegrityError(err error) bool {
	return errors.Is(err, domain.ErrReferenceMismatch)
}
