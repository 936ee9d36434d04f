package converter

import (
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartConverter_RoundTripKeepsOrderAndPrices(t *testing.T) {
	conv := NewCartConverter()

	cart := domain.NewCart()
	cart.Add(domain.Product{ID: "p2", Name: "Pan", SalePrice: decimal.RequireFromString("0.50"), AllowsBackorder: true, Active: true}, 3)
	cart.Add(domain.Product{ID: "p1", Name: "Leche", SalePrice: decimal.RequireFromString("5.50"), Stock: decimal.NewFromInt(10), Unit: domain.UnitLiter, Active: true}, 1)

	data, err := conv.Marshal(cart)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"state":{"items":[{"producto":{"id":"p2"`)
	assert.Contains(t, string(data), `"version":0`)

	restored, err := conv.Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, restored.Items, 2)
	assert.Equal(t, "p2", restored.Items[0].Product.ID)
	assert.Equal(t, 3, restored.Items[0].Quantity)
	assert.True(t, restored.Items[0].Product.IsBackorder())
	assert.Equal(t, domain.UnitLiter, restored.Items[1].Product.Unit)
	assert.True(t, cart.Total().Equal(restored.Total()))
}

func TestCartConverter_UnmarshalSanitizes(t *testing.T) {
	conv := NewCartConverter()

	data := []byte(`{"state":{"items":[
		{"producto":{"id":"p1","nombre":"A","precioVenta":"2","precioCompra":1,"stock":"3","permiteEncargo":false,"activo":true,"categoriaId":"c"},"cantidad":2},
		{"producto":{"id":"p1","nombre":"A","precioVenta":"2","precioCompra":1,"stock":"3","permiteEncargo":false,"activo":true,"categoriaId":"c"},"cantidad":5},
		{"producto":{"id":"p2","nombre":"B","precioVenta":1,"precioCompra":1,"stock":1,"permiteEncargo":false,"activo":true,"categoriaId":"c"},"cantidad":0}
	]},"version":0}`)

	cart, err := conv.Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(4).Equal(cart.Total()))
}

func TestCartConverter_EmptyAndBroken(t *testing.T) {
	conv := NewCartConverter()

	cart, err := conv.Unmarshal(nil)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = conv.Unmarshal([]byte(`{broken`))
	assert.Error(t, err)

	assert.Equal(t, "cart-storage:abc", CartKey("abc"))
}
