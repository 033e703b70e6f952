package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal is the verified caller identity. Authentication itself
// happens upstream; handlers receive the already-verified result.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// MayManage reports whether the principal may act on the booking.
func (p Principal) MayManage(b *Booking) bool {
	return p.IsAdmin() || p.UserID == b.UserID
}
