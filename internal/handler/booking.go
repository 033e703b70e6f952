package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/handler/dto"
	"github.com/Emmilex20/air-classic-travel/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Reserve(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, session, err := h.bookingService.Reserve(c.Request.Context(), domain.ReserveInput{
		UserID:       principal.UserID,
		OutboundID:   req.OutboundUnitID,
		ReturnID:     req.ReturnUnitID,
		Quantity:     req.Quantity,
		ContactEmail: req.ContactEmail,
	})
	if err != nil {
		// The reservation may have landed even though the payment
		// session did not; surface the booking so the client can
		// cancel or retry instead of double-booking.
		if booking != nil {
			c.Set("error", err.Error())
			c.JSON(http.StatusBadGateway, dto.ReserveResponse{
				Booking: dto.ToBookingResponse(booking),
			})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReserveResponse{
		Booking: dto.ToBookingResponse(booking),
		Payment: dto.ToPaymentSessionResponse(session),
	})
}

func (h *Handler) GetBooking(c *ginext.Context) {
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

	booking, err := h.bookingService.Get(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
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

	booking, err := h.bookingService.Cancel(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) PurgeBooking(c *ginext.Context) {
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

	if err := h.bookingService.Purge(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "purged"})
}
