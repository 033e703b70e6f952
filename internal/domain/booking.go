package domain

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	Itinerary        Itinerary     `json:"-"`
	Quantity         int           `json:"quantity"`
	TotalPrice       float64       `json:"total_price"`
	ContactEmail     string        `json:"contact_email"`
	BookingStatus    BookingStatus `json:"booking_status"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	GatewayReference string        `json:"gateway_reference,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// AmountMinor is the charge amount in minor currency units. Inbound
// settlement notifications are matched against this value.
func (b *Booking) AmountMinor() int64 {
	return int64(math.Round(b.TotalPrice * 100))
}

// Holding reports whether the booking still holds reserved inventory.
// A cancelled booking has already given its units back.
func (b *Booking) Holding() bool {
	return b.BookingStatus != BookingStatusCancelled
}

type ReserveInput struct {
	UserID       string
	OutboundID   string
	ReturnID     string
	Quantity     int
	ContactEmail string
}
