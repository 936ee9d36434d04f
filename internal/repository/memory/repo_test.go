package memory

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepo_IsolatesStoredCarts(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepo()

	empty, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	cart := domain.NewCart()
	cart.Add(domain.Product{ID: "p1", SalePrice: decimal.NewFromInt(10), Stock: decimal.NewFromInt(5)}, 2)
	require.NoError(t, repo.Save(ctx, "s1", cart))

	// изменения после Save не видны в хранилище
	cart.Add(domain.Product{ID: "p2"}, 1)

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 2, loaded.Items[0].Quantity)

	other, err := repo.Load(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	require.NoError(t, repo.Delete(ctx, "s1"))
	loaded, err = repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestSessionRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo()

	token, err := repo.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, repo.SetToken(ctx, "s1", "jwt"))
	token, err = repo.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)

	require.NoError(t, repo.DeleteToken(ctx, "s1"))
	token, err = repo.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestOrderLogRepo_ListBySessionNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderLogRepo()

	for _, id := range []string{"o1", "o2", "o3"} {
		require.NoError(t, repo.Create(ctx, &usecase.PlacedOrder{OrderID: id, SessionID: "s1"}))
	}
	require.NoError(t, repo.Create(ctx, &usecase.PlacedOrder{OrderID: "o4", SessionID: "s2"}))

	assert.Error(t, repo.Create(ctx, &usecase.PlacedOrder{OrderID: "o1", SessionID: "s1"}))

	orders, err := repo.ListBySession(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o3", orders[0].OrderID)
	assert.Equal(t, "o2", orders[1].OrderID)
}

func TestOutboxRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	outbox := NewOrderLogRepo().Outbox()

	first, err := outbox.Create(ctx, &usecase.OutboxEvent{EventID: "e1", AggregateID: "o1", Status: usecase.Pending})
	require.NoError(t, err)
	_, err = outbox.Create(ctx, &usecase.OutboxEvent{EventID: "e2", AggregateID: "o2", Status: usecase.Pending})
	require.NoError(t, err)

	_, err = outbox.Create(ctx, &usecase.OutboxEvent{EventID: "e1"})
	assert.Error(t, err)

	batch, err := outbox.GetAndMarkAsProcessing(ctx, 1)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, first.ID, batch[0].ID)
	assert.Equal(t, usecase.Processing, batch[0].Status)

	require.NoError(t, outbox.MarkAsProcessed(ctx, first.ID))

	batch, err = outbox.GetAndMarkAsProcessing(ctx, 10)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "e2", batch[0].EventID)

	// второе событие зависло в processing: возвращаем его в очередь
	n, err := outbox.RequeueStale(ctx, 3600)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = outbox.RequeueStale(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	batch, err = outbox.GetAndMarkAsProcessing(ctx, 10)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "e2", batch[0].EventID)
}

func TestTransactor_RunsFn(t *testing.T) {
	called := false
	err := Transactor{}.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
