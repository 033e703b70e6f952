package domain

import "time"

// Outcome is the gateway's verdict on a payment session.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	// OutcomePending means the gateway has not concluded the session.
	// It never reaches the settlement reducer.
	OutcomePending Outcome = "pending"
)

// PaymentSession is what the gateway hands back on initiation. The
// reference must be stored on the booking before the client sees it.
type PaymentSession struct {
	Reference   string `json:"reference"`
	AccessURL   string `json:"access_url"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

// GatewayOutcome is the result of verifying a reference, from either
// the synchronous verify call or the webhook payload.
type GatewayOutcome struct {
	Outcome     Outcome
	AmountMinor int64
	Currency    string
	PaidAt      time.Time
	Channel     string
}

// PaymentRecord is an audit-ledger row keyed by gateway reference.
// It is never the source of truth for booking state.
type PaymentRecord struct {
	Reference   string    `json:"reference"`
	BookingID   string    `json:"booking_id"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	Status      Outcome   `json:"status"`
	Channel     string    `json:"channel,omitempty"`
	PaidAt      time.Time `json:"paid_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
