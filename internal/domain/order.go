package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDIENTE"
	OrderConfirmed OrderStatus = "CONFIRMADO"
	OrderPreparing OrderStatus = "EN_PREPARACION"
	OrderOnTheWay  OrderStatus = "EN_CAMINO"
	OrderDelivered OrderStatus = "ENTREGADO"
	OrderCancelled OrderStatus = "CANCELADO"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderOnTheWay, OrderDelivered, OrderCancelled:
		return true
	}

	return false
}

// OrderParty: краткие данные клиента или курьера в заказе.
type OrderParty struct {
	ID    string
	Name  string
	Phone string
}

// OrderLine: строка заказа.
type OrderLine struct {
	ID        string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Product   Product
}

// Order описывает заказ, как его возвращает внешний API.
type Order struct {
	ID            string
	UserID        string
	User          OrderParty
	Courier       *OrderParty
	Status        OrderStatus
	Subtotal      decimal.Decimal
	ShippingCost  decimal.Decimal
	Total         decimal.Decimal
	FulfillmentAt *time.Time
	Notes         string
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	Lines         []OrderLine
}
