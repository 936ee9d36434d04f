package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo хранит корзины в таблице kv_storage (jsonb) с временем истечения.
type CartRepo struct {
	pool   *pgxpool.Pool
	conv   converter.CartConverter
	ttl    time.Duration
	logger logger.Logger
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartConverter, ttl time.Duration, logger logger.Logger) *CartRepo {
	return &CartRepo{
		pool:   pool,
		conv:   conv,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CartRepo) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	key := converter.CartKey(sessionID)
	query := `
		SELECT value
		FROM kv_storage
		WHERE key = $1 AND expires_at > now()
	`

	var data []byte
	err := c.pool.QueryRow(ctx, query, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cart, err := c.conv.Unmarshal(data)
	if err != nil {
		c.logger.Warnf("Corrupted cart record, resetting: key: %s, error: %v", key, e.Wrap(whereami.WhereAmI(), err))
		return domain.NewCart(), nil
	}

	return cart, nil
}

func (c *CartRepo) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := c.conv.Marshal(cart)
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

	expiresAt := time.Now().Add(c.ttl)
	if _, err := c.pool.Exec(ctx, query, converter.CartKey(sessionID), data, expiresAt); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if _, err := c.pool.Exec(ctx, `DELETE FROM kv_storage WHERE key = $1`, converter.CartKey(sessionID)); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteExpired удаляет истекшие записи и возвращает их количество.
func (c *CartRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := c.pool.Exec(ctx, `DELETE FROM kv_storage WHERE expires_at <= now()`)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return res.RowsAffected(), nil
}
