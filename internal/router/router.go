package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Reserve(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	PurgeBooking(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	Webhook(c *ginext.Context)
	CreateUnit(c *ginext.Context)
	GetUnit(c *ginext.Context)
	ListUnits(c *ginext.Context)
	ArchiveUnit(c *ginext.Context)
}

// InitRouter wires the route table. principal authenticates callers;
// the webhook route stays outside it because the provider signs its
// payloads instead.
func InitRouter(mode string, h Handler, principal ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		authed := api.Group("", principal)
		{
			// Bookings
			authed.POST("/bookings", h.Reserve)
			authed.GET("/bookings", h.ListBookings)
			authed.GET("/bookings/:id", h.GetBooking)
			authed.POST("/bookings/:id/verify", h.VerifyPayment)
			authed.POST("/bookings/:id/cancel", h.CancelBooking)
			authed.DELETE("/bookings/:id", h.PurgeBooking)

			// Inventory
			authed.POST("/units", h.CreateUnit)
			authed.GET("/units", h.ListUnits)
			authed.GET("/units/:id", h.GetUnit)
			authed.POST("/units/:id/archive", h.ArchiveUnit)
		}

		// Signed by the provider, not by our auth layer.
		api.POST("/payments/webhook", h.Webhook)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
