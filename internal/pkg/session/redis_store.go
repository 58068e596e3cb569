package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	xerrors "tripalert-gateway/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// Store resolves a session id to session state. The gateway never
// writes sessions; an interface here lets tests inject fixtures
// instead of process-wide state.
type Store interface {
	Get(ctx context.Context, sid string) (*Data, error)
}

// RedisStore reads sessions the identity provider keeps in Redis.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

// Get retrieves a session. A missing key is xerrors.ErrNoSession; any
// other failure is a store error, not an authorization decision.
func (s *RedisStore) Get(ctx context.Context, sid string) (*Data, error) {
	raw, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, xerrors.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session from redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if data.SID == "" {
		data.SID = sid
	}
	return &data, nil
}
