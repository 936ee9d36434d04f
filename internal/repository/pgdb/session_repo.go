package pgdb

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SessionRepo хранит токены сессий в kv_storage рядом с корзинами.
type SessionRepo struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

func NewSessionRepo(pool *pgxpool.Pool, ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		pool: pool,
		ttl:  ttl,
	}
}

func (s *SessionRepo) GetToken(ctx context.Context, sessionID string) (string, error) {
	query := `
		SELECT value
		FROM kv_storage
		WHERE key = $1 AND expires_at > now()
	`

	var data []byte
	err := s.pool.QueryRow(ctx, query, sessionKey(sessionID)).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return token, nil
}

func (s *SessionRepo) SetToken(ctx context.Context, sessionID, token string) error {
	data, err := json.Marshal(token)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO kv_storage (key, value, expires_at, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, sessionKey(sessionID), data, time.Now().Add(s.ttl)); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) DeleteToken(ctx context.Context, sessionID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_storage WHERE key = $1`, sessionKey(sessionID)); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID + ":token"
}
