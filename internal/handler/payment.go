package handler

import (
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/gateway"
	"github.com/Emmilex20/air-classic-travel/internal/handler/dto"
	"github.com/Emmilex20/air-classic-travel/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// VerifyPayment is the client-initiated settlement trigger.
func (h *Handler) VerifyPayment(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	// Ownership is enforced before the gateway is consulted.
	if _, err := h.bookingService.Get(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.settlementService.Verify(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Webhook is the provider-initiated settlement trigger. It is public;
// authenticity comes from the keyed-hash signature over the raw body.
func (h *Handler) Webhook(c *ginext.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unreadable body"})
		return
	}

	if !h.webhook.VerifySignature(body, c.GetHeader(gateway.SignatureHeader)) {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid signature"})
		return
	}

	ev, err := h.webhook.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	_, err = h.settlementService.Settle(c.Request.Context(), ev.Data.BookingID, ev.Data.Reference,
		domain.GatewayOutcome{
			Outcome:     ev.Data.Outcome(),
			AmountMinor: ev.Data.AmountMinor,
			Currency:    ev.Data.Currency,
			PaidAt:      ev.Data.PaidAt,
			Channel:     ev.Data.Channel,
		})
	switch {
	case err == nil:
		// Unmatched references settle to nothing; still acknowledged
		// so the provider stops retrying.
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	case isIntegrityError(err):
		c.Set("error", err.Error())
		c.JSON(http.StatusOK, ginext.H{"status": "ignored"})
	default:
		c.Set("error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
