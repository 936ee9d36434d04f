package restapi

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
)

func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	const op = "Client.ListCategories"

	var models []categoryModel
	if err := c.do(ctx, request{method: http.MethodGet, path: "/categorias", token: token}, &models); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toArr(models, toCategory), nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, in *usecase.CategoryInput) (*domain.Category, error) {
	const op = "Client.CreateCategory"

	return c.categoryCall(ctx, op, request{method: http.MethodPost, path: "/categorias", token: token, body: newCategoryBody(in)})
}

func (c *Client) UpdateCategory(ctx context.Context, token, id string, in *usecase.CategoryInput) (*domain.Category, error) {
	const op = "Client.UpdateCategory"

	return c.categoryCall(ctx, op, request{method: http.MethodPatch, path: pathID("/categorias", id), token: token, body: newCategoryBody(in)})
}

func (c *Client) categoryCall(ctx context.Context, op string, req request) (*domain.Category, error) {
	var model categoryModel
	if err := c.do(ctx, req, &model); err != nil {
		return nil, e.Wrap(op, err)
	}

	category := toCategory(&model)

	return &category, nil
}

func newCategoryBody(in *usecase.CategoryInput) categoryBody {
	return categoryBody{
		Nombre:      in.Name,
		Descripcion: in.Description,
		Activo:      in.Active,
	}
}
