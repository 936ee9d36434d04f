package redis

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// SessionRepo хранит токен доступа сессии.
type SessionRepo struct {
	client *clients.RedisClient
	ttl    time.Duration
}

func NewSessionRepo(client *clients.RedisClient, ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		client: client,
		ttl:    ttl,
	}
}

func (s *SessionRepo) GetToken(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, r.Nil) {
		return "", nil
	}
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return token, nil
}

func (s *SessionRepo) SetToken(ctx context.Context, sessionID, token string) error {
	if err := s.client.Client.Set(ctx, sessionKey(sessionID), token, s.ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) DeleteToken(ctx context.Context, sessionID string) error {
	if err := s.client.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// sessionKey возвращает Redis-ключ токена сессии
func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":token"
}
