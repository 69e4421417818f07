package entity

// Role represents the type of role a console user can have.
type Role string

const (
	// RoleShop indicates a shop owner with single-tenant visibility.
	RoleShop Role = "SHOP"
	// RoleAdmin indicates an administrator with cross-tenant visibility.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value. Anything else found in the
// credential store is treated as no session at all.
func (r Role) IsValid() bool {
	switch r {
	case RoleShop, RoleAdmin:
		return true
	default:
		return false
	}
}
