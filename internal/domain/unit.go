package domain

import "time"

type UnitKind string

const (
	UnitKindFlight UnitKind = "flight"
	UnitKindRoom   UnitKind = "room"
)

// Unit is a pool of sellable inventory: seats on a flight or room-nights
// in a hotel. Origin/Destination/DepartsAt/ArrivesAt are meaningful for
// flights only; for rooms they describe the stay window.
type Unit struct {
	ID          string    `json:"id"`
	Kind        UnitKind  `json:"kind"`
	Label       string    `json:"label"`
	Origin      string    `json:"origin,omitempty"`
	Destination string    `json:"destination,omitempty"`
	DepartsAt   time.Time `json:"departs_at"`
	ArrivesAt   time.Time `json:"arrives_at"`
	Capacity    int       `json:"capacity"`
	Available   int       `json:"available"`
	Price       float64   `json:"price"`
	Archived    bool      `json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateUnitInput struct {
	Kind        UnitKind
	Label       string
	Origin      string
	Destination string
	DepartsAt   time.Time
	ArrivesAt   time.Time
	Capacity    int
	Price       float64
}
