package session

import "time"

// Data is one provider-issued session as materialized in the session
// store. The identity provider writes these at login and deletes them
// at logout; the gateway only ever reads them.
type Data struct {
	SID         string    `json:"sid"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Roles       []string  `json:"roles,omitempty"`
	AccessToken string    `json:"access_token"`
	Provider    string    `json:"provider"` // auth0, google, etc.
	LoginAt     time.Time `json:"login_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
