package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	openNow = HoursStatus{State: OpenNow}
	closed  = HoursStatus{State: OutsideHours}
)

func filledCart() *Cart {
	cart := NewCart()
	cart.Add(product("p1", "5.00", 10), 1)
	return cart
}

func fieldErr(t *testing.T, err error, field string) error {
	t.Helper()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	for _, f := range verr.Fields {
		if f.Field == field {
			return f.Err
		}
	}

	return nil
}

func ptr(t time.Time) *time.Time { return &t }

func TestValidateCheckout_RequiresDestination(t *testing.T) {
	now := at(12, 0)

	cases := map[string]CheckoutInput{
		"everything else valid": {FulfillmentAt: ptr(now.Add(2 * time.Hour))},
		"blank destination":     {ShippingDestination: "   "},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			for _, hours := range []HoursStatus{openNow, closed} {
				err := ValidateCheckout(filledCart(), in, hours, now, MinFulfillmentLead)
				require.Error(t, err)
				assert.ErrorIs(t, err, e.ErrDestinationRequired)
				assert.Equal(t, e.ErrDestinationRequired, fieldErr(t, err, FieldShippingDestination))
			}
		})
	}
}

func TestValidateCheckout_LeadTime(t *testing.T) {
	now := at(12, 0)

	err := ValidateCheckout(filledCart(), CheckoutInput{
		ShippingDestination: "Centro",
		FulfillmentAt:       ptr(now.Add(30 * time.Minute)),
	}, openNow, now, MinFulfillmentLead)
	assert.ErrorIs(t, err, e.ErrFulfillmentTooSoon)

	err = ValidateCheckout(filledCart(), CheckoutInput{
		ShippingDestination: "Centro",
		FulfillmentAt:       ptr(now.Add(61 * time.Minute)),
	}, openNow, now, MinFulfillmentLead)
	assert.NoError(t, err)

	err = ValidateCheckout(filledCart(), CheckoutInput{
		ShippingDestination: "Centro",
		FulfillmentAt:       ptr(now.Add(time.Hour)),
	}, closed, now, MinFulfillmentLead)
	assert.NoError(t, err)
}

func TestValidateCheckout_OutsideHours(t *testing.T) {
	now := at(20, 0)
	in := CheckoutInput{ShippingDestination: "Centro"}

	err := ValidateCheckout(filledCart(), in, closed, now, MinFulfillmentLead)
	assert.ErrorIs(t, err, e.ErrOutsideHours)

	err = ValidateCheckout(filledCart(), in, HoursStatus{State: ClosedAllDay}, now, MinFulfillmentLead)
	assert.ErrorIs(t, err, e.ErrOutsideHours)

	assert.NoError(t, ValidateCheckout(filledCart(), in, openNow, now, MinFulfillmentLead))
}

func TestValidateCheckout_BackorderNeedsDateEvenWhenOpen(t *testing.T) {
	now := at(12, 0)
	cart := filledCart()
	pending := product("p2", "1.00", 0)
	pending.AllowsBackorder = true
	cart.Add(pending, 2)

	err := ValidateCheckout(cart, CheckoutInput{ShippingDestination: "Centro"}, openNow, now, MinFulfillmentLead)
	assert.ErrorIs(t, err, e.ErrBackorderNeedsDate)

	err = ValidateCheckout(cart, CheckoutInput{
		ShippingDestination: "Centro",
		FulfillmentAt:       ptr(now.Add(3 * time.Hour)),
	}, openNow, now, MinFulfillmentLead)
	assert.NoError(t, err)
}

func TestValidateCheckout_EmptyCart(t *testing.T) {
	err := ValidateCheckout(NewCart(), CheckoutInput{ShippingDestination: "Centro"}, openNow, at(12, 0), MinFulfillmentLead)
	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestRequiresFulfillment(t *testing.T) {
	assert.False(t, RequiresFulfillment(filledCart(), openNow))
	assert.True(t, RequiresFulfillment(filledCart(), closed))
}

func TestParseFulfillment(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)

	got, err := ParseFulfillment("", loc)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseFulfillment("2026-10-17T09:30", loc)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)))

	got, err = ParseFulfillment("2026-10-17T09:30:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)))

	_, err = ParseFulfillment("mañana", loc)
	assert.ErrorIs(t, err, e.ErrInvalidFulfillment)
}
