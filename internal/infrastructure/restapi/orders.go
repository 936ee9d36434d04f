package restapi

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
)

// ListOrders: API сам ограничивает список по роли владельца токена.
func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	const op = "Client.ListOrders"

	var models []orderModel
	if err := c.do(ctx, request{method: http.MethodGet, path: "/pedidos", token: token}, &models); err != nil {
		return nil, e.Wrap(op, err)
	}

	return toArr(models, toOrder), nil
}

func (c *Client) PlaceOrder(ctx context.Context, token string, req *usecase.PlaceOrderReq) (*domain.Order, error) {
	const op = "Client.PlaceOrder"

	body := placeOrderBody{
		Items:          make([]orderItemBody, 0, len(req.Items)),
		UbicacionEnvio: req.ShippingDestination,
		Notas:          req.Notes,
		CostoEnvio:     number(req.ShippingCost),
	}
	for _, item := range req.Items {
		body.Items = append(body.Items, orderItemBody{ProductoID: item.ProductID, Cantidad: item.Quantity})
	}
	if req.FulfillmentAt != nil {
		body.FechaEncargo = req.FulfillmentAt.Format(time.RFC3339)
	}

	return c.orderCall(ctx, op, request{method: http.MethodPost, path: "/pedidos", token: token, body: body})
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, id string, req *usecase.UpdateOrderStatusReq) (*domain.Order, error) {
	const op = "Client.UpdateOrderStatus"

	body := orderStatusBody{Estado: string(req.Status), RepartidorID: req.CourierID}

	return c.orderCall(ctx, op, request{method: http.MethodPatch, path: pathID("/pedidos", id, "estado"), token: token, body: body})
}

// TakeOrder: курьер берет заказ себе.
func (c *Client) TakeOrder(ctx context.Context, token, id string) (*domain.Order, error) {
	const op = "Client.TakeOrder"

	return c.orderCall(ctx, op, request{method: http.MethodPatch, path: pathID("/pedidos", id, "tomar"), token: token})
}

func (c *Client) MarkOrderOnTheWay(ctx context.Context, token, id string) (*domain.Order, error) {
	const op = "Client.MarkOrderOnTheWay"

	return c.orderCall(ctx, op, request{method: http.MethodPatch, path: pathID("/pedidos", id, "en-camino"), token: token})
}

func (c *Client) orderCall(ctx context.Context, op string, req request) (*domain.Order, error) {
	var model orderModel
	if err := c.do(ctx, req, &model); err != nil {
		return nil, e.Wrap(op, err)
	}

	order := toOrder(&model)

	return &order, nil
}
