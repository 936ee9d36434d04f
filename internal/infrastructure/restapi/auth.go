package restapi

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// RequestCode запрашивает одноразовый код. Имя передается только при регистрации.
func (c *Client) RequestCode(ctx context.Context, req *usecase.RequestCodeReq) (bool, error) {
	const op = "Client.RequestCode"

	var res requestCodeModel
	body := requestCodeBody{Telefono: req.Phone, Nombre: req.Name}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/solicitar-codigo", body: body}, &res); err != nil {
		return false, e.Wrap(op, err)
	}

	return res.EsNuevoUsuario, nil
}

func (c *Client) VerifyCode(ctx context.Context, phone, code string) (*usecase.AuthResult, error) {
	const op = "Client.VerifyCode"

	var res authModel
	body := verifyCodeBody{Telefono: phone, Codigo: code}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/verificar-codigo", body: body}, &res); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &usecase.AuthResult{
		AccessToken: res.AccessToken,
		User:        toUser(res.Usuario),
	}, nil
}

func (c *Client) Profile(ctx context.Context, token string) (*domain.User, error) {
	const op = "Client.Profile"

	return c.userCall(ctx, op, request{method: http.MethodGet, path: "/auth/perfil", token: token})
}
