package dto

type ReserveRequest struct {
	OutboundUnitID string `json:"outbound_unit_id" binding:"required,uuid"`
	ReturnUnitID   string `json:"return_unit_id" binding:"omitempty,uuid"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
	ContactEmail   string `json:"contact_email" binding:"required,email"`
}

type CreateUnitRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=flight room"`
	Label       string  `json:"label" binding:"required"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DepartsAt   string  `json:"departs_at" binding:"required"`
	ArrivesAt   string  `json:"arrives_at" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"gte=0"`
}
