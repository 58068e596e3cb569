package proxy

import (
	"net/http"

	"tripalert-gateway/internal/domain/identity"
)

// Headers builds the outgoing header set for a forwarded request.
// Content-Type is always JSON; Authorization is set only when the
// identity carries a credential. Identities reach this function only
// through the auth middleware, which guarantees a credential on the
// normal path, so the bare-Content-Type branch exists for the
// documented degrade-gracefully policy rather than for real traffic.
func Headers(id identity.Identity) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	if id.Token != "" {
		h.Set("Authorization", "Bearer "+id.Token)
	}
	return h
}
