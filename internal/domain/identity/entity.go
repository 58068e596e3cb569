package identity

// Identity is the verified caller derived from a validated session. It
// is the only source of trust a handler sees: handlers never re-read
// session state, they receive one of these from the auth middleware.
type Identity struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Token  string   `json:"-"`
	Roles  []string `json:"roles,omitempty"`
}

const RoleAdmin = "admin"

// HasRole reports whether the identity carries the given role.
func (id Identity) HasRole(role string) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}
