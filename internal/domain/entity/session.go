package entity

// Session is the ephemeral client-held credential pair. It is written at
// login, attached to every outbound API request, and cleared on logout or the
// first 401 the upstream returns.
type Session struct {
	Token string // Opaque bearer token issued by the inventory API.
	Role  Role   // Role claimed at login; SHOP or ADMIN.
}

// IsValid reports whether the session carries a token and a known role. The
// console performs no token verification of its own; the upstream API is the
// authority and answers 401 for anything stale.
func (s *Session) IsValid() bool {
	return s != nil && s.Token != "" && s.Role.IsValid()
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
