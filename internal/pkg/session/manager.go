package session

import (
	"context"
	"errors"
	"time"

	"tripalert-gateway/internal/domain/identity"
	xerrors "tripalert-gateway/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Manager is the single place that decides whether a session is valid.
// Callers get either a fully-populated identity or ErrUnauthorized;
// no partially-trusted state ever leaves this package.
type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Validate resolves the session id to a verified identity. Read-only:
// session state is never mutated here.
func (m *Manager) Validate(ctx context.Context, sid string) (*identity.Identity, error) {
	if sid == "" {
		return nil, xerrors.ErrUnauthorized
	}

	data, err := m.store.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, xerrors.ErrNoSession) {
			return nil, xerrors.ErrUnauthorized
		}
		// Store failures are infrastructure faults, not auth decisions.
		return nil, err
	}

	if data.UserID == "" || data.AccessToken == "" {
		return nil, xerrors.ErrUnauthorized
	}
	if !data.ExpiresAt.IsZero() && !m.now().Before(data.ExpiresAt) {
		return nil, xerrors.ErrUnauthorized
	}
	if credentialExpired(data.AccessToken, m.now()) {
		return nil, xerrors.ErrUnauthorized
	}

	return &identity.Identity{
		UserID: data.UserID,
		Email:  data.Email,
		Token:  data.AccessToken,
		Roles:  data.Roles,
	}, nil
}

// credentialExpired inspects the bearer credential without verifying
// its signature: verification is the backend's job, but forwarding a
// token known to be expired would only produce a confusing backend
// 401. A credential that is not a JWT is forwarded as-is.
func credentialExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
