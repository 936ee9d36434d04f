package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const maxHistory = 50

// CheckoutUseCase проверяет корзину и отправляет заказ во внешний API.
type CheckoutUseCase struct {
	cartRepo    CartRepository
	orderAPI    OrderAPI
	scheduleAPI ScheduleAPI
	locationAPI LocationAPI
	hours       *HoursUseCase
	sessions    *SessionGuard
	tx          Transactor
	placedRepo  PlacedOrderRepository
	outboxRepo  OutboxEventRepository
	minLead     time.Duration
	logger      logger.Logger
}

type CheckoutDeps struct {
	CartRepo    CartRepository
	OrderAPI    OrderAPI
	ScheduleAPI ScheduleAPI
	LocationAPI LocationAPI
	Hours       *HoursUseCase
	Sessions    *SessionGuard
	// Tx, PlacedRepo и OutboxRepo заданы только при настроенном Postgres.
	Tx         Transactor
	PlacedRepo PlacedOrderRepository
	OutboxRepo OutboxEventRepository
	MinLead    time.Duration
	Logger     logger.Logger
}

func NewCheckoutUC(deps CheckoutDeps) *CheckoutUseCase {
	minLead := deps.MinLead
	if minLead <= 0 {
		minLead = domain.MinFulfillmentLead
	}

	return &CheckoutUseCase{
		cartRepo:    deps.CartRepo,
		orderAPI:    deps.OrderAPI,
		scheduleAPI: deps.ScheduleAPI,
		locationAPI: deps.LocationAPI,
		hours:       deps.Hours,
		sessions:    deps.Sessions,
		tx:          deps.Tx,
		placedRepo:  deps.PlacedRepo,
		outboxRepo:  deps.OutboxRepo,
		minLead:     minLead,
		logger:      deps.Logger,
	}
}

// Quote считает итоги корзины для выбранного пункта доставки и сообщает, нужна ли дата выполнения.
func (c *CheckoutUseCase) Quote(ctx context.Context, sessionID, destination string) (*QuoteRes, error) {
	const op = "CheckoutUseCase.Quote"

	cart, err := c.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	schedule, locations, err := c.fetchStoreState(ctx, "")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := c.hours.Now()
	hours := domain.EvaluateHours(schedule, now)

	shipping := decimal.Zero
	if location, ok := domain.FindLocation(locations, destination); ok {
		shipping = location.Cost
	}

	active := make([]domain.Location, 0, len(locations))
	for _, l := range locations {
		if l.Active {
			active = append(active, l)
		}
	}

	subtotal := cart.Total()

	return &QuoteRes{
		Subtotal:            subtotal,
		ShippingCost:        shipping,
		Total:               subtotal.Add(shipping),
		Hours:               hours,
		RequiresFulfillment: domain.RequiresFulfillment(cart, hours),
		MinFulfillmentAt:    now.Add(c.minLead),
		Locations:           active,
	}, nil
}

// PlaceOrder оформляет заказ. При любой ошибке корзина не меняется.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	token, err := c.sessions.RequireToken(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.Load(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	schedule, locations, err := c.fetchStoreState(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, c.sessions.Observe(ctx, req.SessionID, err))
	}

	now := c.hours.Now()
	hours := domain.EvaluateHours(schedule, now)

	if err := domain.ValidateCheckout(cart, req.Input, hours, now, c.minLead); err != nil {
		return nil, e.Wrap(op, err)
	}

	location, ok := domain.FindLocation(locations, req.Input.ShippingDestination)
	if !ok {
		verr := &domain.ValidationError{}
		verr.Add(domain.FieldShippingDestination, e.ErrUnknownLocation)
		return nil, e.Wrap(op, verr)
	}

	placeReq := NewPlaceOrderReq(cart, req.Input, location.Cost)
	order, err := c.orderAPI.PlaceOrder(ctx, token, placeReq)
	if err != nil {
		return nil, e.Wrap(op, c.sessions.Observe(ctx, req.SessionID, err))
	}

	// Заказ уже создан во внешнем API, поэтому ошибки журнала только логируются.
	if err := c.recordPlacedOrder(ctx, req.SessionID, order, cart, placeReq, now); err != nil {
		c.logger.Errorf(err, "failed to record placed order, order_id: %s", order.ID)
	}

	if err := c.cartRepo.Delete(ctx, req.SessionID); err != nil {
		c.logger.Errorf(err, "failed to clear cart after checkout, session_id: %s", req.SessionID)
	}

	c.logger.Infof("Order placed, order_id: %s, session_id: %s, items: %d", order.ID, req.SessionID, cart.ItemCount())

	return order, nil
}

// fetchStoreState параллельно получает расписание и пункты доставки.
func (c *CheckoutUseCase) fetchStoreState(ctx context.Context, token string) ([]domain.ScheduleEntry, []domain.Location, error) {
	var (
		schedule  []domain.ScheduleEntry
		locations []domain.Location
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedule, err = c.scheduleAPI.ListSchedule(gCtx, token)
		return err
	})
	g.Go(func() error {
		var err error
		locations, err = c.locationAPI.ListLocations(gCtx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return schedule, locations, nil
}

// recordPlacedOrder в одной транзакции пишет журнал заказа и событие order.placed.
func (c *CheckoutUseCase) recordPlacedOrder(
	ctx context.Context,
	sessionID string,
	order *domain.Order,
	cart *domain.Cart,
	req *PlaceOrderReq,
	now time.Time,
) error {
	const op = "CheckoutUseCase.recordPlacedOrder"

	if c.tx == nil || c.placedRepo == nil {
		return nil
	}

	total := order.Total
	if total.IsZero() {
		total = cart.Total().Add(req.ShippingCost)
	}

	err := c.tx.Do(ctx, func(ctx context.Context) error {
		if err := c.placedRepo.Create(ctx, &PlacedOrder{
			OrderID:       order.ID,
			SessionID:     sessionID,
			Total:         total,
			FulfillmentAt: req.FulfillmentAt,
			CreatedAt:     now.UTC(),
		}); err != nil {
			return err
		}

		if c.outboxRepo == nil {
			return nil
		}

		event, err := NewOrderPlacedEvent(order, cart, req, now)
		if err != nil {
			return err
		}

		_, err = c.outboxRepo.Create(ctx, event)
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// History возвращает последние заказы, оформленные в этой сессии. Без журнала заказов список пуст.
func (c *CheckoutUseCase) History(ctx context.Context, sessionID string, limit int) ([]PlacedOrder, error) {
	const op = "CheckoutUseCase.History"

	if c.placedRepo == nil || sessionID == "" {
		return []PlacedOrder{}, nil
	}

	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}

	orders, err := c.placedRepo.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}
