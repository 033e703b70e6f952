package dto

import (
	"time"

	"github.com/Emmilex20/air-classic-travel/internal/domain"
)

type UnitResponse struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Label       string  `json:"label"`
	Origin      string  `json:"origin,omitempty"`
	Destination string  `json:"destination,omitempty"`
	DepartsAt   string  `json:"departs_at"`
	ArrivesAt   string  `json:"arrives_at"`
	Capacity    int     `json:"capacity"`
	Available   int     `json:"available"`
	Price       float64 `json:"price"`
	Archived    bool    `json:"archived"`
	CreatedAt   string  `json:"created_at"`
}

type BookingResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	UnitIDs          []string `json:"unit_ids"`
	RoundTrip        bool     `json:"round_trip"`
	Quantity         int      `json:"quantity"`
	TotalPrice       float64  `json:"total_price"`
	BookingStatus    string   `json:"booking_status"`
	PaymentStatus    string   `json:"payment_status"`
	GatewayReference string   `json:"gateway_reference,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

type PaymentSessionResponse struct {
	Reference   string `json:"reference"`
	AccessURL   string `json:"access_url"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

// ReserveResponse carries the new booking plus whatever the caller
// needs to hand off to the gateway's client SDK.
type ReserveResponse struct {
	Booking BookingResponse         `json:"booking"`
	Payment *PaymentSessionResponse `json:"payment,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUnitResponse(u *domain.Unit) UnitResponse {
	return UnitResponse{
		ID:          u.ID,
		Kind:        string(u.Kind),
		Label:       u.Label,
		Origin:      u.Origin,
		Destination: u.Destination,
		DepartsAt:   u.DepartsAt.Format(time.RFC3339),
		ArrivesAt:   u.ArrivesAt.Format(time.RFC3339),
		Capacity:    u.Capacity,
		Available:   u.Available,
		Price:       u.Price,
		Archived:    u.Archived,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		UnitIDs:          b.Itinerary.UnitIDs(),
		RoundTrip:        b.Itinerary.IsRoundTrip(),
		Quantity:         b.Quantity,
		TotalPrice:       b.TotalPrice,
		BookingStatus:    string(b.BookingStatus),
		PaymentStatus:    string(b.PaymentStatus),
		GatewayReference: b.GatewayReference,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentSessionResponse(p *domain.PaymentSession) *PaymentSessionResponse {
	if p == nil {
		return nil
	}
	return &PaymentSessionResponse{
		Reference:   p.Reference,
		AccessURL:   p.AccessURL,
		AmountMinor: p.AmountMinor,
		Currency:    p.Currency,
	}
}
