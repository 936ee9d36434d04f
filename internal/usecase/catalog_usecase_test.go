package usecase_test

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prefixImages struct{}

func (prefixImages) URL(_ context.Context, filename string) (string, error) {
	return "/uploads/" + filename, nil
}

func catalogEnv() (*env, *usecase.CatalogUseCase) {
	env := newEnv(friday)

	coke := product("p1", "1.50", 10, false)
	coke.Name, coke.Brand, coke.CategoryID, coke.Image = "Refresco Cola", "Coca-Cola", "drinks", "coke.png"

	bread := product("p2", "0.50", 0, true)
	bread.Name, bread.Brand, bread.CategoryID = "Pan", "Panaderia", "bakery"

	soldOut := product("p3", "2.00", 0, false)
	soldOut.Name = "Cola sin azucar"

	hidden := product("p4", "2.00", 5, false)
	hidden.Name, hidden.Active = "Cola vieja", false

	for _, p := range []domain.Product{coke, bread, soldOut, hidden} {
		env.api.products[p.ID] = p
	}
	env.api.categories = []domain.Category{
		{ID: "drinks", Name: "Bebidas", Active: true},
		{ID: "old", Name: "Archivo", Active: false},
	}
	env.api.schedule = []domain.ScheduleEntry{
		{Day: domain.Friday, OpeningTime: "08:00", ClosingTime: "18:00", Active: true},
	}

	return env, usecase.NewCatalogUC(env.api, env.api, env.hours, prefixImages{}, testLogger())
}

func TestCatalogUseCase_ListProducts(t *testing.T) {
	ctx := context.Background()
	_, uc := catalogEnv()

	tests := []struct {
		name   string
		filter usecase.ProductFilter
		ids    []string
	}{
		{name: "listed only", filter: usecase.ProductFilter{}, ids: []string{"p1", "p2"}},
		{name: "search by name", filter: usecase.ProductFilter{Search: "COLA"}, ids: []string{"p1"}},
		{name: "search by brand", filter: usecase.ProductFilter{Search: "panad"}, ids: []string{"p2"}},
		{name: "category", filter: usecase.ProductFilter{CategoryID: "bakery"}, ids: []string{"p2"}},
		{name: "no match", filter: usecase.ProductFilter{Search: "leche"}, ids: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := uc.ListProducts(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestCatalogUseCase_GetProduct(t *testing.T) {
	ctx := context.Background()
	_, uc := catalogEnv()

	p, err := uc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/coke.png", p.Image)

	_, err = uc.GetProduct(ctx, "p4")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCatalogUseCase_Storefront(t *testing.T) {
	ctx := context.Background()
	_, uc := catalogEnv()

	res, err := uc.Storefront(ctx, usecase.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, res.Products, 2)
	require.Len(t, res.Categories, 1)
	assert.Equal(t, "drinks", res.Categories[0].ID)
	assert.Equal(t, domain.OpenNow, res.Hours.State)
}

func TestCatalogUseCase_StorefrontFailsOnAPIError(t *testing.T) {
	env, uc := catalogEnv()
	env.api.err = e.ErrUpstreamDown

	_, err := uc.Storefront(context.Background(), usecase.ProductFilter{})
	assert.ErrorIs(t, err, e.ErrUpstreamDown)
}

func TestCatalogUseCase_ImageURL(t *testing.T) {
	_, uc := catalogEnv()

	url, err := uc.ImageURL(context.Background(), "coke.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/coke.png", url)

	noImages := usecase.NewCatalogUC(newFakeAPI(), newFakeAPI(), nil, nil, testLogger())
	_, err = noImages.ImageURL(context.Background(), "coke.png")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

type batchImages struct {
	prefixImages
	batches [][]string
}

func (b *batchImages) URLs(_ context.Context, filenames []string) map[string]string {
	b.batches = append(b.batches, filenames)

	urls := make(map[string]string, len(filenames))
	for _, name := range filenames {
		if name != "" {
			urls[name] = "https://cdn/" + name
		}
	}
	return urls
}

func TestCatalogUseCase_ListProductsResolvesImagesInBatch(t *testing.T) {
	env, _ := catalogEnv()
	images := &batchImages{}
	uc := usecase.NewCatalogUC(env.api, env.api, env.hours, images, testLogger())

	products, err := uc.ListProducts(context.Background(), usecase.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, images.batches, 1)
	assert.Len(t, images.batches[0], 2)

	require.Len(t, products, 2)
	assert.Equal(t, "https://cdn/coke.png", products[0].Image)
	assert.Empty(t, products[1].Image)
}
