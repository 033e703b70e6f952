package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
	"github.com/Emmilex20/air-classic-travel/internal/handler/dto"
	"github.com/Emmilex20/air-classic-travel/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

// Units are managed administratively; every mutation below requires
// the admin role.

func (h *Handler) CreateUnit(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !principal.IsAdmin() {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin role required"})
		return
	}

	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	departsAt, err := time.Parse(time.RFC3339, req.DepartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid departs_at format, expected RFC3339"})
		return
	}
	arrivesAt, err := time.Parse(time.RFC3339, req.ArrivesAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid arrives_at format, expected RFC3339"})
		return
	}

	unit, err := h.unitService.Create(c.Request.Context(), domain.CreateUnitInput{
		Kind:        domain.UnitKind(req.Kind),
		Label:       req.Label,
		Origin:      req.Origin,
		Destination: req.Destination,
		DepartsAt:   departsAt,
		ArrivesAt:   arrivesAt,
		Capacity:    req.Capacity,
		Price:       req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

func (h *Handler) GetUnit(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid unit id"})
		return
	}

	unit, err := h.unitService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

func (h *Handler) ListUnits(c *ginext.Context) {
	principal, _ := middleware.PrincipalFrom(c)
	includeArchived := principal.IsAdmin() && c.Query("archived") == "true"

	units, err := h.unitService.List(c.Request.Context(), includeArchived)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		resp = append(resp, dto.ToUnitResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ArchiveUnit(c *ginext.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || !principal.IsAdmin() {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin role required"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid unit id"})
		return
	}

	if err := h.unitService.Archive(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "archived"})
}
