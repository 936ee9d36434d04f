package usecase_test

import (
	"context"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/memory"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

// fakeAPI: внешний API в памяти. err, если задан, возвращается из каждого вызова.
type fakeAPI struct {
	mu sync.Mutex

	products   map[string]domain.Product
	categories []domain.Category
	schedule   []domain.ScheduleEntry
	locations  []domain.Location
	orders     []domain.Order

	err       error
	placed    []*usecase.PlaceOrderReq
	tokens    []string
	authToken string
	user      *domain.User
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{products: make(map[string]domain.Product)}
}

func (f *fakeAPI) call(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tokens = append(f.tokens, token)
	return f.err
}

func (f *fakeAPI) ListProducts(_ context.Context, token string, _ bool) ([]domain.Product, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}

	res := make([]domain.Product, 0, len(f.products))
	for _, id := range slices.Sorted(maps.Keys(f.products)) {
		res = append(res, f.products[id])
	}
	return res, nil
}

func (f *fakeAPI) GetProduct(_ context.Context, token, id string) (*domain.Product, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}

	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &p, nil
}

func (f *fakeAPI) GetProductByBarcode(_ context.Context, token, barcode string) (*domain.Product, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}

	for _, p := range f.products {
		if p.Barcode == barcode {
			return &p, nil
		}
	}
	return nil, e.ErrNotFound
}

func (f *fakeAPI) CreateProduct(_ context.Context, token string, in *usecase.ProductInput) (*domain.Product, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}

	p := domain.Product{ID: "new", Name: *in.Name, SalePrice: *in.SalePrice, CategoryID: *in.CategoryID}
	f.products[p.ID] = p
	return &p, nil
}

func (f *fakeAPI) UpdateProduct(_ context.Context, token, id string, in *usecase.ProductInput) (*domain.Product, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}

	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if in.SalePrice != nil {
		p.SalePrice = *in.SalePrice
	}
	f.products[id] = p
	return &p, nil
}

func (f *fakeAPI) AdjustStock(_ context.Context, token, id string, quantity decimal.Decimal) (*domain.Product, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}

	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	p.Stock = p.Stock.Add(quantity)
	f.products[id] = p
	return &p, nil
}

func (f *fakeAPI) ListCategories(_ context.Context, token string) ([]domain.Category, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return f.categories, nil
}

func (f *fakeAPI) CreateCategory(_ context.Context, token string, in *usecase.CategoryInput) (*domain.Category, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.Category{ID: "c-new", Name: *in.Name, Active: true}, nil
}

func (f *fakeAPI) UpdateCategory(_ context.Context, token, id string, in *usecase.CategoryInput) (*domain.Category, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	c := domain.Category{ID: id}
	if in.Active != nil {
		c.Active = *in.Active
	}
	return &c, nil
}

func (f *fakeAPI) ListSchedule(_ context.Context, token string) ([]domain.ScheduleEntry, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return f.schedule, nil
}

func (f *fakeAPI) CreateScheduleEntry(_ context.Context, token string, in *usecase.ScheduleInput) (*domain.ScheduleEntry, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.ScheduleEntry{ID: "h-new", Day: in.Day, OpeningTime: in.OpeningTime, ClosingTime: in.ClosingTime, Active: true}, nil
}

func (f *fakeAPI) UpdateScheduleEntry(_ context.Context, token, id string, in *usecase.ScheduleInput) (*domain.ScheduleEntry, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.ScheduleEntry{ID: id, Day: in.Day, OpeningTime: in.OpeningTime, ClosingTime: in.ClosingTime, Closed: in.Closed, Active: true}, nil
}

func (f *fakeAPI) InitializeSchedule(_ context.Context, token string) ([]domain.ScheduleEntry, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return f.schedule, nil
}

func (f *fakeAPI) ListLocations(_ context.Context, token string) ([]domain.Location, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return f.locations, nil
}

func (f *fakeAPI) CreateLocation(_ context.Context, token string, in *usecase.LocationInput) (*domain.Location, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.Location{ID: "l-new", Name: *in.Name, Cost: *in.Cost, Active: true}, nil
}

func (f *fakeAPI) UpdateLocation(_ context.Context, token, id string, _ *usecase.LocationInput) (*domain.Location, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.Location{ID: id}, nil
}

func (f *fakeAPI) DeleteLocation(_ context.Context, token, _ string) error {
	return f.call(token)
}

func (f *fakeAPI) ListOrders(_ context.Context, token string) ([]domain.Order, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return f.orders, nil
}

func (f *fakeAPI) PlaceOrder(_ context.Context, token string, req *usecase.PlaceOrderReq) (*domain.Order, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.placed = append(f.placed, req)
	f.mu.Unlock()

	return &domain.Order{ID: "order-1", UserID: "u-1", Status: domain.OrderPending, ShippingCost: req.ShippingCost}, nil
}

func (f *fakeAPI) UpdateOrderStatus(_ context.Context, token, id string, req *usecase.UpdateOrderStatusReq) (*domain.Order, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.Order{ID: id, Status: req.Status}, nil
}

func (f *fakeAPI) TakeOrder(_ context.Context, token, id string) (*domain.Order, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.Order{ID: id, Status: domain.OrderPreparing}, nil
}

func (f *fakeAPI) MarkOrderOnTheWay(_ context.Context, token, id string) (*domain.Order, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.Order{ID: id, Status: domain.OrderOnTheWay}, nil
}

func (f *fakeAPI) ListUsers(_ context.Context, token string, role domain.Role) ([]domain.User, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return []domain.User{{ID: "u-1", Role: role}}, nil
}

func (f *fakeAPI) UpdateUser(_ context.Context, token, id string, _ *usecase.UserInput) (*domain.User, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.User{ID: id}, nil
}

func (f *fakeAPI) ChangeUserRole(_ context.Context, token, id string, role domain.Role) (*domain.User, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Role: role}, nil
}

func (f *fakeAPI) RequestCode(_ context.Context, req *usecase.RequestCodeReq) (bool, error) {
	if err := f.call(""); err != nil {
		return false, err
	}
	return req.Name != "", nil
}

func (f *fakeAPI) VerifyCode(_ context.Context, _, _ string) (*usecase.AuthResult, error) {
	if err := f.call(""); err != nil {
		return nil, err
	}
	return &usecase.AuthResult{AccessToken: f.authToken, User: f.user}, nil
}

func (f *fakeAPI) Profile(_ context.Context, token string) (*domain.User, error) {
	if err := f.call(token); err != nil {
		return nil, err
	}
	return f.user, nil
}

func testLogger() logger.Logger {
	return logger.NewSlogLoggerWithWriter(io.Discard, "error")
}

func fixedClock(t time.Time) usecase.Clock {
	return func() time.Time { return t }
}

func product(id, price string, stock int64, backorder bool) domain.Product {
	return domain.Product{
		ID:              id,
		Name:            "Product " + id,
		SalePrice:       decimal.RequireFromString(price),
		Stock:           decimal.NewFromInt(stock),
		AllowsBackorder: backorder,
		Active:          true,
	}
}

type env struct {
	api      *fakeAPI
	carts    *memory.CartRepo
	sessions *memory.SessionRepo
	orderLog *memory.OrderLogRepo
	guard    *usecase.SessionGuard
	hours    *usecase.HoursUseCase
}

func newEnv(now time.Time) *env {
	api := newFakeAPI()
	sessions := memory.NewSessionRepo()
	log := testLogger()

	return &env{
		api:      api,
		carts:    memory.NewCartRepo(),
		sessions: sessions,
		orderLog: memory.NewOrderLogRepo(),
		guard:    usecase.NewSessionGuard(sessions, log),
		hours:    usecase.NewHoursUC(api, fixedClock(now), time.UTC, log),
	}
}
