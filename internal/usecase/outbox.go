package usecase

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderPlacedEvent OutboxEventType = "order.placed"
)

// Заголовки сообщений с событиями.
const (
	HeaderEventType = "event-type"
	HeaderEventID   = "event-id"
)

// OutboxEvent: событие, ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	AggregateID string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderPlacedPayload: тело события order.placed.
type OrderPlacedPayload struct {
	EventID             string          `json:"event_id"`
	OrderID             string          `json:"order_id"`
	UserID              string          `json:"user_id,omitempty"`
	ShippingDestination string          `json:"shipping_destination"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	ShippingCost        decimal.Decimal `json:"shipping_cost"`
	Total               decimal.Decimal `json:"total"`
	ItemCount           int             `json:"item_count"`
	Backorder           bool            `json:"backorder"`
	FulfillmentAt       *time.Time      `json:"fulfillment_at,omitempty"`
	PlacedAt            time.Time       `json:"placed_at"`
}

// NewOrderPlacedEvent строит событие по созданному заказу и корзине, из которой он оформлен.
func NewOrderPlacedEvent(order *domain.Order, cart *domain.Cart, req *PlaceOrderReq, now time.Time) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	total := order.Total
	if total.IsZero() {
		total = cart.Total().Add(req.ShippingCost)
	}

	payload, err := json.Marshal(OrderPlacedPayload{
		EventID:             eventID,
		OrderID:             order.ID,
		UserID:              order.UserID,
		ShippingDestination: req.ShippingDestination,
		Subtotal:            cart.Total(),
		ShippingCost:        req.ShippingCost,
		Total:               total,
		ItemCount:           cart.ItemCount(),
		Backorder:           cart.HasBackorderItems(),
		FulfillmentAt:       req.FulfillmentAt,
		PlacedAt:            now.UTC(),
	})
	if err != nil {
		return nil, err
	}

	return &OutboxEvent{
		EventID:     eventID,
		EventType:   OrderPlacedEvent,
		AggregateID: order.ID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   now.UTC(),
	}, nil
}
