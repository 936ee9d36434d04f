package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartUC(env *env) *usecase.CartUseCase {
	return usecase.NewCartUC(env.carts, env.api, env.guard, testLogger())
}

func TestCartUseCase_AddItem(t *testing.T) {
	ctx := context.Background()
	env := newEnv(time.Now())
	env.api.products["p1"] = product("p1", "10.50", 5, false)
	env.api.products["p2"] = product("p2", "3.00", 0, true)
	uc := newCartUC(env)

	view, err := uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.ItemCount)

	view, err = uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)

	view, err = uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p2", Quantity: 4})
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.True(t, view.Items[1].Backorder)
	assert.True(t, decimal.RequireFromString("43.50").Equal(view.Total))

	// сохранено в хранилище
	count, err := uc.ItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	// другая сессия не видит корзину
	other, err := uc.GetCart(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestCartUseCase_AddItemRejections(t *testing.T) {
	ctx := context.Background()
	env := newEnv(time.Now())
	env.api.products["p1"] = product("p1", "1.00", 3, false)
	env.api.products["empty"] = product("empty", "1.00", 0, false)
	uc := newCartUC(env)

	_, err := uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p1", Quantity: 0})
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "empty", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrOutOfStock)

	_, err = uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p1", Quantity: 2})
	assert.ErrorIs(t, err, e.ErrQuantityExceedsStock)

	_, err = uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrNotFound)

	view, err := uc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
}

func TestCartUseCase_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	env := newEnv(time.Now())
	env.api.products["p1"] = product("p1", "2.00", 4, false)
	uc := newCartUC(env)

	_, err := uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	view, err := uc.UpdateQuantity(ctx, &usecase.UpdateQuantityReq{SessionID: "s1", ProductID: "p1", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, view.ItemCount)

	_, err = uc.UpdateQuantity(ctx, &usecase.UpdateQuantityReq{SessionID: "s1", ProductID: "p1", Quantity: 5})
	assert.ErrorIs(t, err, e.ErrQuantityExceedsStock)

	_, err = uc.UpdateQuantity(ctx, &usecase.UpdateQuantityReq{SessionID: "s1", ProductID: "other", Quantity: 1})
	assert.ErrorIs(t, err, e.ErrProductNotInCart)

	view, err = uc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, view.ItemCount)

	view, err = uc.UpdateQuantity(ctx, &usecase.UpdateQuantityReq{SessionID: "s1", ProductID: "p1", Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartUseCase_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	env := newEnv(time.Now())
	env.api.products["p1"] = product("p1", "2.00", 4, false)
	env.api.products["p2"] = product("p2", "2.00", 4, false)
	uc := newCartUC(env)

	for _, id := range []string{"p1", "p2"} {
		_, err := uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: id, Quantity: 1})
		require.NoError(t, err)
	}

	view, err := uc.RemoveItem(ctx, "s1", "p1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p2", view.Items[0].ProductID)

	// удаление отсутствующего товара не ошибка
	_, err = uc.RemoveItem(ctx, "s1", "p1")
	require.NoError(t, err)

	require.NoError(t, uc.ClearCart(ctx, "s1"))
	count, err := uc.ItemCount(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCartUseCase_UnauthorizedClearsToken(t *testing.T) {
	ctx := context.Background()
	env := newEnv(time.Now())
	require.NoError(t, env.sessions.SetToken(ctx, "s1", "tok"))
	env.api.err = e.ErrUnauthorized
	uc := newCartUC(env)

	_, err := uc.AddItem(ctx, &usecase.AddItemReq{SessionID: "s1", ProductID: "p1", Quantity: 1})
	require.ErrorIs(t, err, e.ErrUnauthorized)

	token, err := env.sessions.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, token)
}
