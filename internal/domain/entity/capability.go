package entity

// Capabilities is the permission set a view consumes. It is resolved once
// from the session role instead of scattering role comparisons through the
// handlers. This is a rendering convenience only: the inventory API
// authorizes every call independently, and hiding a control here grants
// nothing.
type Capabilities struct {
	CanCreateShop    bool // Register a new shop.
	CanAssignOwner   bool // Assign a shop to an arbitrary owner at registration.
	CanViewAllShops  bool // Browse shops across tenants.
	CanDeleteAnyShop bool // Delete shops regardless of ownership.
	CanEditProducts  bool // Create, update and delete products.
}

// ResolveCapabilities computes the permission set for a session. An invalid
// session resolves to the zero value, which permits nothing.
func ResolveCapabilities(s *Session) Capabilities {
	if !s.IsValid() {
		return Capabilities{}
	}

	switch s.Role {
	case RoleAdmin:
		return Capabilities{
			CanCreateShop:    true,
			CanAssignOwner:   true,
			CanViewAllShops:  true,
			CanDeleteAnyShop: true,
			// Admins may inspect products but mutation stays with the owner.
			CanEditProducts: false,
		}
	case RoleShop:
		return Capabilities{
			CanCreateShop:   true,
			CanEditProducts: true,
		}
	default:
		return Capabilities{}
	}
}
