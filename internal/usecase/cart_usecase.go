package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// CartUseCase управляет корзиной сессии. Каждое изменение сразу сохраняется.
type CartUseCase struct {
	cartRepo   CartRepository
	productAPI ProductAPI
	sessions   *SessionGuard
	logger     logger.Logger
}

func NewCartUC(cartRepo CartRepository, productAPI ProductAPI, sessions *SessionGuard, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartRepo:   cartRepo,
		productAPI: productAPI,
		sessions:   sessions,
		logger:     logger,
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	cart, err := c.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

func (c *CartUseCase) ItemCount(ctx context.Context, sessionID string) (int, error) {
	const op = "CartUseCase.ItemCount"

	cart, err := c.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return cart.ItemCount(), nil
}

// AddItem получает актуальный товар из API и добавляет его в корзину с проверкой остатка.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddItemReq) (*CartView, error) {
	const op = "CartUseCase.AddItem"

	if req.Quantity <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	token, err := c.sessions.Token(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productAPI.GetProduct(ctx, token, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, c.sessions.Observe(ctx, req.SessionID, err))
	}

	cart, err := c.cartRepo.Load(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	quantity := req.Quantity
	if item, ok := cart.Find(product.ID); ok {
		quantity += item.Quantity
	}

	if err := checkStock(product, quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.Add(*product, req.Quantity)
	if err := c.cartRepo.Save(ctx, req.SessionID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Debugf("Cart item added, session_id: %s, product_id: %s, quantity: %d", req.SessionID, product.ID, req.Quantity)

	return NewCartView(cart), nil
}

// UpdateQuantity перезаписывает количество. quantity <= 0 удаляет позицию.
// Проверка остатка идет по сохраненной в корзине копии товара.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, req *UpdateQuantityReq) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	cart, err := c.cartRepo.Load(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	item, ok := cart.Find(req.ProductID)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotInCart)
	}

	if req.Quantity > 0 {
		if err := checkStock(&item.Product, req.Quantity); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	cart.SetQuantity(req.ProductID, req.Quantity)
	if err := c.cartRepo.Save(ctx, req.SessionID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

func (c *CartUseCase) RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error) {
	const op = "CartUseCase.RemoveItem"

	cart, err := c.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.Remove(productID)
	if err := c.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

func (c *CartUseCase) ClearCart(ctx context.Context, sessionID string) error {
	const op = "CartUseCase.ClearCart"

	if err := c.cartRepo.Delete(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func checkStock(product *domain.Product, quantity int) error {
	if quantity <= 0 {
		return e.ErrInvalidQuantity
	}

	if !product.Stock.IsPositive() && !product.AllowsBackorder {
		return e.ErrOutOfStock
	}

	if !product.AcceptsQuantity(quantity) {
		return e.ErrQuantityExceedsStock
	}

	return nil
}
