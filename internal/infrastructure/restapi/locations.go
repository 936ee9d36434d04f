package restapi

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
)

func (c *Client) ListLocations(ctx context.Context, token string) ([]domain.Location, error) {
	const op = "Client.ListLocations"

	var models []locationModel
	if err := c.do(ctx, request{method: http.MethodGet, path: "/ubicaciones", token: token}, &models); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toArr(models, toLocation), nil
}

func (c *Client) CreateLocation(ctx context.Context, token string, in *usecase.LocationInput) (*domain.Location, error) {
	const op = "Client.CreateLocation"

	return c.locationCall(ctx, op, request{method: http.MethodPost, path: "/ubicaciones", token: token, body: newLocationBody(in)})
}

func (c *Client) UpdateLocation(ctx context.Context, token, id string, in *usecase.LocationInput) (*domain.Location, error) {
	const op = "Client.UpdateLocation"

	return c.locationCall(ctx, op, request{method: http.MethodPatch, path: pathID("/ubicaciones", id), token: token, body: newLocationBody(in)})
}

func (c *Client) DeleteLocation(ctx context.Context, token, id string) error {
	const op = "Client.DeleteLocation"

	if err := c.do(ctx, request{method: http.MethodDelete, path: pathID("/ubicaciones", id), token: token}, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) locationCall(ctx context.Context, op string, req request) (*domain.Location, error) {
	var model locationModel
	if err := c.do(ctx, req, &model); err != nil {
		return nil, e.Wrap(op, err)
	}

	location := toLocation(&model)

	return &location, nil
}

func newLocationBody(in *usecase.LocationInput) locationBody {
	body := locationBody{Nombre: in.Name, Activo: in.Active}
	if in.Cost != nil {
		cost := number(*in.Cost)
		body.Costo = &cost
	}

	return body
}
