package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
)

func (c *Client) ListUsers(ctx context.Context, token string, role domain.Role) ([]domain.User, error) {
	const op = "Client.ListUsers"

	var query url.Values
	if role != "" {
		query = url.Values{"rol": {string(role)}}
	}

	var models []userModel
	if err := c.do(ctx, request{method: http.MethodGet, path: "/usuarios", token: token, query: query}, &models); err != nil {
		return nil, e.Wrap(op, err)
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, *toUser(&models[i]))
	}

	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, in *usecase.UserInput) (*domain.User, error) {
	const op = "Client.UpdateUser"

	body := userBody{Nombre: in.Name, Telefono: in.Phone, FechaNacimiento: in.BirthDate}

	return c.userCall(ctx, op, request{method: http.MethodPatch, path: pathID("/usuarios", id), token: token, body: body})
}

func (c *Client) ChangeUserRole(ctx context.Context, token, id string, role domain.Role) (*domain.User, error) {
	const op = "Client.ChangeUserRole"

	return c.userCall(ctx, op, request{method: http.MethodPatch, path: pathID("/usuarios", id, "rol"), token: token, body: roleBody{Rol: string(role)}})
}

func (c *Client) userCall(ctx context.Context, op string, req request) (*domain.User, error) {
	var model userModel
	if err := c.do(ctx, req, &model); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toUser(&model), nil
}
