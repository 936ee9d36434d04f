package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

func (c *Client) ListProducts(ctx context.Context, token string, includeInactive bool) ([]domain.Product, error) {
	const op = "Client.ListProducts"

	var query url.Values
	if includeInactive {
		query = url.Values{"includeInactive": {"true"}}
	}

	var models []productModel
	if err := c.do(ctx, request{method: http.MethodGet, path: "/productos", token: token, query: query}, &models); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toArr(models, toProduct), nil
}

func (c *Client) GetProduct(ctx context.Context, token, id string) (*domain.Product, error) {
	const op = "Client.GetProduct"

	return c.productCall(ctx, op, request{method: http.MethodGet, path: pathID("/productos", id), token: token})
}

func (c *Client) GetProductByBarcode(ctx context.Context, token, barcode string) (*domain.Product, error) {
	const op = "Client.GetProductByBarcode"

	return c.productCall(ctx, op, request{method: http.MethodGet, path: pathID("/productos/barcode", barcode), token: token})
}

// CreateProduct отправляет форму multipart, как ожидает API.
func (c *Client) CreateProduct(ctx context.Context, token string, in *usecase.ProductInput) (*domain.Product, error) {
	const op = "Client.CreateProduct"

	return c.productCall(ctx, op, request{method: http.MethodPost, path: "/productos", token: token, form: productForm(in)})
}

// UpdateProduct: только смена активности уходит JSON-телом, остальное формой.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, in *usecase.ProductInput) (*domain.Product, error) {
	const op = "Client.UpdateProduct"

	req := request{method: http.MethodPatch, path: pathID("/productos", id), token: token}
	form := productForm(in)
	if len(form) == 1 && in.Active != nil {
		req.body = activeBody{Activo: *in.Active}
	} else {
		req.form = form
	}

	return c.productCall(ctx, op, req)
}

func (c *Client) AdjustStock(ctx context.Context, token, id string, quantity decimal.Decimal) (*domain.Product, error) {
	const op = "Client.AdjustStock"

	return c.productCall(ctx, op, request{
		method: http.MethodPatch,
		path:   pathID("/productos", id, "stock"),
		token:  token,
		body:   stockBody{Cantidad: number(quantity)},
	})
}

func (c *Client) productCall(ctx context.Context, op string, req request) (*domain.Product, error) {
	var model productModel
	if err := c.do(ctx, req, &model); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := toProduct(&model)

	return &product, nil
}

func productForm(in *usecase.ProductInput) map[string]string {
	form := make(map[string]string)
	setString := func(key string, v *string) {
		if v != nil {
			form[key] = *v
		}
	}
	setDecimal := func(key string, v *decimal.Decimal) {
		if v != nil {
			form[key] = v.String()
		}
	}
	setBool := func(key string, v *bool) {
		if v != nil {
			form[key] = strconv.FormatBool(*v)
		}
	}

	setString("nombre", in.Name)
	setString("codigoBarras", in.Barcode)
	setString("marca", in.Brand)
	setString("contenido", in.Content)
	setString("descripcion", in.Description)
	setString("categoriaId", in.CategoryID)
	if in.Unit != nil {
		form["medida"] = string(*in.Unit)
	}
	setDecimal("precioCompra", in.PurchasePrice)
	setDecimal("precioVenta", in.SalePrice)
	setDecimal("stock", in.Stock)
	setBool("permiteEncargo", in.AllowsBackorder)
	setBool("activo", in.Active)

	return form
}
