package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/converter"
)

// CartRepo хранит корзины в памяти процесса. Корзины копируются на входе и выходе.
type CartRepo struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{carts: make(map[string]*domain.Cart)}
}

func (r *CartRepo) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[converter.CartKey(sessionID)]
	if !ok {
		return domain.NewCart(), nil
	}

	return cart.Clone(), nil
}

func (r *CartRepo) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[converter.CartKey(sessionID)] = cart.Clone()

	return nil
}

func (r *CartRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, converter.CartKey(sessionID))

	return nil
}
