package redis

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/converter"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит корзину сессии одной JSON-записью с TTL.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	ttl    time.Duration
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter, ttl time.Duration, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		ttl:    ttl,
		logger: logger,
	}
}

// Load возвращает корзину сессии. Отсутствующая или поврежденная запись дает пустую корзину.
func (c *CartRepo) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	key := converter.CartKey(sessionID)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
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

// Save перезаписывает корзину и продлевает TTL.
func (c *CartRepo) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := c.conv.Marshal(cart)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, converter.CartKey(sessionID), data, c.ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := c.client.Client.Del(ctx, converter.CartKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
