package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/jimlawless/whereami"
)

// OrderLogRepo: журнал оформленных заказов и outbox в памяти.
// Используется вместе с Transactor из этого пакета.
type OrderLogRepo struct {
	mu     sync.Mutex
	orders []usecase.PlacedOrder
	events []*usecase.OutboxEvent
	taken  map[int64]time.Time // начало обработки событий в processing
	nextID int64
}

func NewOrderLogRepo() *OrderLogRepo {
	return &OrderLogRepo{taken: make(map[int64]time.Time)}
}

func (r *OrderLogRepo) Create(_ context.Context, order *usecase.PlacedOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.OrderID == order.OrderID {
			return fmt.Errorf("%s: order %s already recorded", whereami.WhereAmI(), order.OrderID)
		}
	}
	r.orders = append(r.orders, *order)

	return nil
}

func (r *OrderLogRepo) ListBySession(_ context.Context, sessionID string, limit int) ([]usecase.PlacedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]usecase.PlacedOrder, 0)
	for i := len(r.orders) - 1; i >= 0 && (limit <= 0 || len(res) < limit); i-- {
		if r.orders[i].SessionID == sessionID {
			res = append(res, r.orders[i])
		}
	}

	return res, nil
}

// Outbox возвращает репозиторий событий поверх того же журнала.
func (r *OrderLogRepo) Outbox() *OutboxRepo {
	return &OutboxRepo{log: r}
}

// Events возвращает копию сохраненных событий.
func (r *OrderLogRepo) Events() []usecase.OutboxEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]usecase.OutboxEvent, 0, len(r.events))
	for _, ev := range r.events {
		res = append(res, *ev)
	}

	return res
}

type OutboxRepo struct {
	log *OrderLogRepo
}

func (o *OutboxRepo) Create(_ context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	o.log.mu.Lock()
	defer o.log.mu.Unlock()

	for _, ev := range o.log.events {
		if ev.EventID == event.EventID {
			return nil, fmt.Errorf("%s: event with id %s already exists", whereami.WhereAmI(), event.EventID)
		}
	}

	o.log.nextID++
	stored := *event
	stored.ID = o.log.nextID
	o.log.events = append(o.log.events, &stored)

	res := stored
	return &res, nil
}

func (o *OutboxRepo) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	o.log.mu.Lock()
	defer o.log.mu.Unlock()

	res := make([]*usecase.OutboxEvent, 0)
	for _, ev := range o.log.events {
		if limit > 0 && len(res) >= limit {
			break
		}
		if ev.Status != usecase.Pending {
			continue
		}

		ev.Status = usecase.Processing
		o.log.taken[ev.ID] = time.Now()
		cp := *ev
		res = append(res, &cp)
	}

	return res, nil
}

func (o *OutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	o.log.mu.Lock()
	defer o.log.mu.Unlock()

	for _, ev := range o.log.events {
		if ev.ID == id && ev.Status == usecase.Processing {
			now := time.Now().UTC()
			ev.Status = usecase.Processed
			ev.ProcessedAt = &now
			delete(o.log.taken, id)
		}
	}

	return nil
}

func (o *OutboxRepo) RequeueStale(_ context.Context, olderThanSeconds int) (int64, error) {
	o.log.mu.Lock()
	defer o.log.mu.Unlock()

	deadline := time.Now().Add(-time.Duration(olderThanSeconds) * time.Second)

	var n int64
	for _, ev := range o.log.events {
		started, ok := o.log.taken[ev.ID]
		if ev.Status != usecase.Processing || !ok || started.After(deadline) {
			continue
		}

		ev.Status = usecase.Pending
		delete(o.log.taken, ev.ID)
		n++
	}

	return n, nil
}

// Transactor выполняет fn без транзакции.
type Transactor struct{}

func (Transactor) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
