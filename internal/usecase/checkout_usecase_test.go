package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-16: пятница.
var friday = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func checkoutEnv(t *testing.T, now time.Time) (*env, *usecase.CheckoutUseCase) {
	t.Helper()

	env := newEnv(now)
	env.api.schedule = []domain.ScheduleEntry{
		{ID: "h1", Day: domain.Friday, OpeningTime: "08:00", ClosingTime: "18:00", Active: true},
	}
	env.api.locations = []domain.Location{
		{ID: "l1", Name: "Centro", Cost: decimal.RequireFromString("5.00"), Active: true},
		{ID: "l2", Name: "Norte", Cost: decimal.RequireFromString("8.00"), Active: false},
	}
	env.api.products["p1"] = product("p1", "10.00", 5, false)
	env.api.products["bo"] = product("bo", "4.00", 0, true)

	require.NoError(t, env.sessions.SetToken(context.Background(), "s1", "tok"))

	uc := usecase.NewCheckoutUC(usecase.CheckoutDeps{
		CartRepo:    env.carts,
		OrderAPI:    env.api,
		ScheduleAPI: env.api,
		LocationAPI: env.api,
		Hours:       env.hours,
		Sessions:    env.guard,
		Tx:          memory.Transactor{},
		PlacedRepo:  env.orderLog,
		OutboxRepo:  env.orderLog.Outbox(),
		MinLead:     time.Hour,
		Logger:      testLogger(),
	})

	return env, uc
}

func fillCart(t *testing.T, env *env, items map[string]int) {
	t.Helper()

	cart := domain.NewCart()
	for id, qty := range items {
		cart.Add(env.api.products[id], qty)
	}
	require.NoError(t, env.carts.Save(context.Background(), "s1", cart))
}

func TestCheckoutUseCase_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	env, uc := checkoutEnv(t, friday)
	fillCart(t, env, map[string]int{"p1": 2})

	order, err := uc.PlaceOrder(ctx, &usecase.CheckoutReq{
		SessionID: "s1",
		Input:     domain.CheckoutInput{ShippingDestination: "Centro", Notes: "timbre"},
	})
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	require.Len(t, env.api.placed, 1)
	placed := env.api.placed[0]
	assert.Equal(t, "Centro", placed.ShippingDestination)
	assert.True(t, decimal.RequireFromString("5").Equal(placed.ShippingCost))
	assert.Nil(t, placed.FulfillmentAt)
	assert.Equal(t, []usecase.OrderItemReq{{ProductID: "p1", Quantity: 2}}, placed.Items)

	// корзина очищена
	cart, err := env.carts.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	// журнал и событие
	logged, err := env.orderLog.ListBySession(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.True(t, decimal.RequireFromString("25").Equal(logged[0].Total))

	events := env.orderLog.Events()
	require.Len(t, events, 1)
	assert.Equal(t, usecase.OrderPlacedEvent, events[0].EventType)
	assert.Equal(t, usecase.Pending, events[0].Status)

	var payload usecase.OrderPlacedPayload
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, "order-1", payload.OrderID)
	assert.Equal(t, 2, payload.ItemCount)
}

func TestCheckoutUseCase_ValidationLeavesCartUntouched(t *testing.T) {
	ctx := context.Background()
	evening := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)
	tooSoon := evening.Add(30 * time.Minute)

	tests := []struct {
		name   string
		now    time.Time
		items  map[string]int
		input  domain.CheckoutInput
		errs   []error
		fields []string
	}{
		{
			name:   "missing destination",
			now:    friday,
			items:  map[string]int{"p1": 1},
			input:  domain.CheckoutInput{},
			errs:   []error{e.ErrDestinationRequired},
			fields: []string{domain.FieldShippingDestination},
		},
		{
			name:   "outside hours without date",
			now:    evening,
			items:  map[string]int{"p1": 1},
			input:  domain.CheckoutInput{ShippingDestination: "Centro"},
			errs:   []error{e.ErrOutsideHours},
			fields: []string{domain.FieldFulfillmentAt},
		},
		{
			name:   "backorder without date while open",
			now:    friday,
			items:  map[string]int{"bo": 1},
			input:  domain.CheckoutInput{ShippingDestination: "Centro"},
			errs:   []error{e.ErrBackorderNeedsDate},
			fields: []string{domain.FieldFulfillmentAt},
		},
		{
			name:   "date too soon and no destination",
			now:    evening,
			items:  map[string]int{"p1": 1},
			input:  domain.CheckoutInput{FulfillmentAt: &tooSoon},
			errs:   []error{e.ErrDestinationRequired, e.ErrFulfillmentTooSoon},
			fields: []string{domain.FieldShippingDestination, domain.FieldFulfillmentAt},
		},
		{
			name:   "inactive destination",
			now:    friday,
			items:  map[string]int{"p1": 1},
			input:  domain.CheckoutInput{ShippingDestination: "Norte"},
			errs:   []error{e.ErrUnknownLocation},
			fields: []string{domain.FieldShippingDestination},
		},
		{
			name:   "empty cart",
			now:    friday,
			items:  map[string]int{},
			input:  domain.CheckoutInput{ShippingDestination: "Centro"},
			errs:   []error{e.ErrEmptyCart},
			fields: []string{domain.FieldCart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, uc := checkoutEnv(t, tt.now)
			fillCart(t, env, tt.items)

			_, err := uc.PlaceOrder(ctx, &usecase.CheckoutReq{SessionID: "s1", Input: tt.input})
			require.Error(t, err)
			for _, want := range tt.errs {
				assert.ErrorIs(t, err, want)
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.fields, fields)

			assert.Empty(t, env.api.placed)
			cart, err := env.carts.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, len(tt.items), len(cart.Items))
		})
	}
}

func TestCheckoutUseCase_BackorderWithDate(t *testing.T) {
	ctx := context.Background()
	env, uc := checkoutEnv(t, friday)
	fillCart(t, env, map[string]int{"bo": 2})

	when := friday.Add(2 * time.Hour)
	_, err := uc.PlaceOrder(ctx, &usecase.CheckoutReq{
		SessionID: "s1",
		Input:     domain.CheckoutInput{ShippingDestination: " Centro ", FulfillmentAt: &when},
	})
	require.NoError(t, err)
	require.Len(t, env.api.placed, 1)
	require.NotNil(t, env.api.placed[0].FulfillmentAt)
	assert.True(t, when.Equal(*env.api.placed[0].FulfillmentAt))
}

func TestCheckoutUseCase_RequiresToken(t *testing.T) {
	ctx := context.Background()
	env, uc := checkoutEnv(t, friday)
	fillCart(t, env, map[string]int{"p1": 1})
	require.NoError(t, env.sessions.DeleteToken(ctx, "s1"))

	_, err := uc.PlaceOrder(ctx, &usecase.CheckoutReq{SessionID: "s1", Input: domain.CheckoutInput{ShippingDestination: "Centro"}})
	assert.ErrorIs(t, err, e.ErrUnauthorized)
	assert.Empty(t, env.api.placed)
}

func TestCheckoutUseCase_APIFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	env, uc := checkoutEnv(t, friday)
	fillCart(t, env, map[string]int{"p1": 1})
	env.api.err = e.ErrUnauthorized

	_, err := uc.PlaceOrder(ctx, &usecase.CheckoutReq{SessionID: "s1", Input: domain.CheckoutInput{ShippingDestination: "Centro"}})
	require.ErrorIs(t, err, e.ErrUnauthorized)

	cart, err := env.carts.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	token, err := env.sessions.GetToken(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, env.orderLog.Events())
}

func TestCheckoutUseCase_Quote(t *testing.T) {
	ctx := context.Background()
	env, uc := checkoutEnv(t, friday)
	fillCart(t, env, map[string]int{"p1": 2, "bo": 1})

	quote, err := uc.Quote(ctx, "s1", "Centro")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("24").Equal(quote.Subtotal))
	assert.True(t, decimal.RequireFromString("5").Equal(quote.ShippingCost))
	assert.True(t, decimal.RequireFromString("29").Equal(quote.Total))
	assert.Equal(t, domain.OpenNow, quote.Hours.State)
	assert.True(t, quote.RequiresFulfillment)
	assert.Equal(t, friday.Add(time.Hour), quote.MinFulfillmentAt)
	require.Len(t, quote.Locations, 1)

	quote, err = uc.Quote(ctx, "s1", "Nowhere")
	require.NoError(t, err)
	assert.True(t, quote.ShippingCost.IsZero())
}

func TestCheckoutUseCase_History(t *testing.T) {
	ctx := context.Background()
	env, uc := checkoutEnv(t, friday)
	fillCart(t, env, map[string]int{"p1": 1})

	_, err := uc.PlaceOrder(ctx, &usecase.CheckoutReq{
		SessionID: "s1",
		Input:     domain.CheckoutInput{ShippingDestination: "Centro"},
	})
	require.NoError(t, err)

	history, err := uc.History(ctx, "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "order-1", history[0].OrderID)

	other, err := uc.History(ctx, "s2", 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}
