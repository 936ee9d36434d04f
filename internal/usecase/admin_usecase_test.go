package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminEnv(t *testing.T) (*env, *usecase.AdminUseCase) {
	t.Helper()

	env := newEnv(friday)
	require.NoError(t, env.sessions.SetToken(context.Background(), "admin", "admin-token"))

	uc := usecase.NewAdminUC(usecase.AdminDeps{
		ProductAPI:  env.api,
		CategoryAPI: env.api,
		OrderAPI:    env.api,
		UserAPI:     env.api,
		LocationAPI: env.api,
		ScheduleAPI: env.api,
		Sessions:    env.guard,
		Logger:      testLogger(),
	})

	return env, uc
}

func ptr[T any](v T) *T {
	return &v
}

func TestAdminUseCase_RequiresSession(t *testing.T) {
	env, uc := adminEnv(t)

	_, err := uc.ListOrders(context.Background(), "anonymous")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
	assert.Empty(t, env.api.tokens)
}

func TestAdminUseCase_ForwardsToken(t *testing.T) {
	ctx := context.Background()
	env, uc := adminEnv(t)
	env.api.products["p1"] = product("p1", "1.00", 1, false)

	p, err := uc.SetProductActive(ctx, "admin", "p1", false)
	require.NoError(t, err)
	assert.False(t, p.Active)

	p, err = uc.AdjustStock(ctx, "admin", "p1", decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(p.Stock))

	order, err := uc.TakeOrder(ctx, "admin", "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPreparing, order.Status)

	for _, tok := range env.api.tokens {
		assert.Equal(t, "admin-token", tok)
	}
}

func TestAdminUseCase_Validation(t *testing.T) {
	ctx := context.Background()
	env, uc := adminEnv(t)

	_, err := uc.CreateProduct(ctx, "admin", &usecase.ProductInput{Name: ptr("Leche")})
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.CreateProduct(ctx, "admin", &usecase.ProductInput{
		Name:       ptr("Leche"),
		SalePrice:  ptr(decimal.RequireFromString("1.999")),
		CategoryID: ptr("c1"),
	})
	assert.ErrorIs(t, err, e.ErrPricePrecision)

	_, err = uc.CreateLocation(ctx, "admin", &usecase.LocationInput{Name: ptr("Sur"), Cost: ptr(decimal.NewFromInt(-1))})
	assert.ErrorIs(t, err, e.ErrInvalidPrice)

	_, err = uc.UpdateOrderStatus(ctx, "admin", "o1", &usecase.UpdateOrderStatusReq{Status: "LOST"})
	assert.ErrorIs(t, err, e.ErrInvalidOrderStatus)

	_, err = uc.ChangeUserRole(ctx, "admin", "u1", domain.Role("ROOT"))
	assert.ErrorIs(t, err, e.ErrInvalidRole)

	_, err = uc.CreateScheduleEntry(ctx, "admin", &usecase.ScheduleInput{Day: "FRIDAY", OpeningTime: "08:00", ClosingTime: "18:00"})
	assert.ErrorIs(t, err, e.ErrInvalidWeekday)

	_, err = uc.CreateScheduleEntry(ctx, "admin", &usecase.ScheduleInput{Day: domain.Friday, OpeningTime: "8am", ClosingTime: "18:00"})
	assert.ErrorIs(t, err, e.ErrInvalidClock)

	// закрытый день не требует времени
	_, err = uc.CreateScheduleEntry(ctx, "admin", &usecase.ScheduleInput{Day: domain.Sunday, Closed: true})
	require.NoError(t, err)

	_, err = uc.AdjustStock(ctx, "admin", "p1", decimal.Zero)
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	assert.Len(t, env.api.tokens, 1)
}

func TestAdminUseCase_UnauthorizedClearsToken(t *testing.T) {
	ctx := context.Background()
	env, uc := adminEnv(t)
	env.api.err = e.ErrUnauthorized

	_, err := uc.ListUsers(ctx, "admin", domain.RoleCourier)
	require.ErrorIs(t, err, e.ErrUnauthorized)

	_, err = uc.ListUsers(ctx, "admin", domain.RoleCourier)
	require.ErrorIs(t, err, e.ErrUnauthorized)
	assert.Len(t, env.api.tokens, 1)
}
