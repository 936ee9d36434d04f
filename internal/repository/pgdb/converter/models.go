package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// KVModel представляет запись таблицы kv_storage в PostgreSQL.
type KVModel struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	ExpiresAt time.Time `db:"expires_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PlacedOrderModel представляет запись таблицы placed_orders в PostgreSQL.
type PlacedOrderModel struct {
	ID            int64           `db:"id"`
	OrderID       string          `db:"order_id"`
	SessionID     string          `db:"session_id"`
	Total         decimal.Decimal `db:"total"`
	FulfillmentAt *time.Time      `db:"fulfillment_at"`
	CreatedAt     time.Time       `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
