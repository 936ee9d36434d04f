package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Clock возвращает текущее время; подменяется в тестах.
type Clock func() time.Time

// CART USECASE

// CartLine: позиция корзины для отображения.
type CartLine struct {
	ProductID string
	Name      string
	Image     string
	UnitPrice decimal.Decimal
	Quantity  int
	Subtotal  decimal.Decimal
	Stock     decimal.Decimal
	Backorder bool
}

// CartView: корзина с производными итогами.
type CartView struct {
	Items     []CartLine
	Total     decimal.Decimal
	ItemCount int
}

// AddItemReq: запрос на добавление товара в корзину.
type AddItemReq struct {
	SessionID string
	ProductID string
	Quantity  int
}

// UpdateQuantityReq: запрос на изменение количества.
type UpdateQuantityReq struct {
	SessionID string
	ProductID string
	Quantity  int
}

// CHECKOUT USECASE

// CheckoutReq: запрос на оформление заказа из корзины сессии.
type CheckoutReq struct {
	SessionID string
	Input     domain.CheckoutInput
}

// QuoteRes: предварительный расчет заказа.
type QuoteRes struct {
	Subtotal            decimal.Decimal
	ShippingCost        decimal.Decimal
	Total               decimal.Decimal
	Hours               domain.HoursStatus
	RequiresFulfillment bool
	MinFulfillmentAt    time.Time
	Locations           []domain.Location
}

// OrderItemReq: позиция заказа для внешнего API.
type OrderItemReq struct {
	ProductID string
	Quantity  int
}

// PlaceOrderReq: тело создания заказа во внешнем API.
type PlaceOrderReq struct {
	Items               []OrderItemReq
	ShippingDestination string
	FulfillmentAt       *time.Time
	Notes               string
	ShippingCost        decimal.Decimal
}

// CATALOG USECASE

// ProductFilter: фильтр витрины.
type ProductFilter struct {
	Search     string
	CategoryID string
}

// StorefrontRes: данные главной страницы.
type StorefrontRes struct {
	Products   []domain.Product
	Categories []domain.Category
	Hours      domain.HoursStatus
}

// AUTH USECASE

// RequestCodeReq: запрос одноразового кода по номеру телефона.
type RequestCodeReq struct {
	Phone string
	Name  string
}

// AuthResult: ответ подтверждения кода.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

// ADMIN USECASE

type ProductInput struct {
	Name            *string
	Barcode         *string
	Brand           *string
	Content         *string
	Unit            *domain.UnitOfMeasure
	Description     *string
	PurchasePrice   *decimal.Decimal
	SalePrice       *decimal.Decimal
	Stock           *decimal.Decimal
	AllowsBackorder *bool
	Active          *bool
	CategoryID      *string
}

type CategoryInput struct {
	Name        *string
	Description *string
	Active      *bool
}

type LocationInput struct {
	Name   *string
	Cost   *decimal.Decimal
	Active *bool
}

type ScheduleInput struct {
	Day         domain.Weekday
	OpeningTime string
	ClosingTime string
	Closed      bool
}

type UpdateOrderStatusReq struct {
	Status    domain.OrderStatus
	CourierID string
}

type UserInput struct {
	Name      *string
	Phone     *string
	BirthDate *string
}

// INFRASTRUCTURE

// WriteRawMessageReq: сообщение для брокера. Headers уходят заголовками Kafka.
type WriteRawMessageReq struct {
	Key     string
	Payload []byte
	Headers map[string]string
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}

// NewEventMessageReq собирает сообщение из события outbox. Ключ равен агрегату, в заголовках тип и id события.
func NewEventMessageReq(event *OutboxEvent) *WriteRawMessageReq {
	req := NewWriteRawMessageReq(event.AggregateID, event.Payload)
	req.Headers = map[string]string{
		HeaderEventType: string(event.EventType),
		HeaderEventID:   event.EventID,
	}
	return req
}

// REPOSITORIES

// PlacedOrder: локальная запись об успешно отправленном заказе.
type PlacedOrder struct {
	OrderID       string
	SessionID     string
	Total         decimal.Decimal
	FulfillmentAt *time.Time
	CreatedAt     time.Time
}

// MAPPERS

func NewCartView(cart *domain.Cart) *CartView {
	lines := make([]CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, CartLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Image:     item.Product.Image,
			UnitPrice: item.Product.SalePrice,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
			Stock:     item.Product.Stock,
			Backorder: item.Product.IsBackorder(),
		})
	}

	return &CartView{
		Items:     lines,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func NewPlaceOrderReq(cart *domain.Cart, in domain.CheckoutInput, shippingCost decimal.Decimal) *PlaceOrderReq {
	items := make([]OrderItemReq, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, OrderItemReq{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	return &PlaceOrderReq{
		Items:               items,
		ShippingDestination: in.ShippingDestination,
		FulfillmentAt:       in.FulfillmentAt,
		Notes:               in.Notes,
		ShippingCost:        shippingCost,
	}
}
