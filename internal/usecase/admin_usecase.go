package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

// AdminUseCase: операции панели управления. Права проверяет внешний API,
// здесь только предварительная валидация и токен сессии.
type AdminUseCase struct {
	productAPI  ProductAPI
	categoryAPI CategoryAPI
	orderAPI    OrderAPI
	userAPI     UserAPI
	locationAPI LocationAPI
	scheduleAPI ScheduleAPI
	sessions    *SessionGuard
	logger      logger.Logger
}

type AdminDeps struct {
	ProductAPI  ProductAPI
	CategoryAPI CategoryAPI
	OrderAPI    OrderAPI
	UserAPI     UserAPI
	LocationAPI LocationAPI
	ScheduleAPI ScheduleAPI
	Sessions    *SessionGuard
	Logger      logger.Logger
}

func NewAdminUC(deps AdminDeps) *AdminUseCase {
	return &AdminUseCase{
		productAPI:  deps.ProductAPI,
		categoryAPI: deps.CategoryAPI,
		orderAPI:    deps.OrderAPI,
		userAPI:     deps.UserAPI,
		locationAPI: deps.LocationAPI,
		scheduleAPI: deps.ScheduleAPI,
		sessions:    deps.Sessions,
		logger:      deps.Logger,
	}
}

// authorized выполняет fn с токеном сессии и сбрасывает токен при 401.
func authorized[T any](ctx context.Context, s *SessionGuard, op, sessionID string, fn func(token string) (T, error)) (T, error) {
	var zero T

	token, err := s.RequireToken(ctx, sessionID)
	if err != nil {
		return zero, e.Wrap(op, err)
	}

	res, err := fn(token)
	if err != nil {
		return zero, e.Wrap(op, s.Observe(ctx, sessionID, err))
	}

	return res, nil
}

// PRODUCTS

func (a *AdminUseCase) ListProducts(ctx context.Context, sessionID string, includeInactive bool) ([]domain.Product, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.ListProducts", sessionID, func(token string) ([]domain.Product, error) {
		return a.productAPI.ListProducts(ctx, token, includeInactive)
	})
}

func (a *AdminUseCase) GetProductByBarcode(ctx context.Context, sessionID, barcode string) (*domain.Product, error) {
	const op = "AdminUseCase.GetProductByBarcode"

	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Product, error) {
		return a.productAPI.GetProductByBarcode(ctx, token, barcode)
	})
}

func (a *AdminUseCase) CreateProduct(ctx context.Context, sessionID string, in *ProductInput) (*domain.Product, error) {
	const op = "AdminUseCase.CreateProduct"

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.SalePrice == nil || in.CategoryID == nil {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}
	if err := validateProductInput(in); err != nil {
		return nil, e.Wrap(op, err)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Product, error) {
		return a.productAPI.CreateProduct(ctx, token, in)
	})
}

func (a *AdminUseCase) UpdateProduct(ctx context.Context, sessionID, id string, in *ProductInput) (*domain.Product, error) {
	const op = "AdminUseCase.UpdateProduct"

	if err := validateProductInput(in); err != nil {
		return nil, e.Wrap(op, err)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Product, error) {
		return a.productAPI.UpdateProduct(ctx, token, id, in)
	})
}

func (a *AdminUseCase) SetProductActive(ctx context.Context, sessionID, id string, active bool) (*domain.Product, error) {
	return a.UpdateProduct(ctx, sessionID, id, &ProductInput{Active: &active})
}

func (a *AdminUseCase) AdjustStock(ctx context.Context, sessionID, id string, quantity decimal.Decimal) (*domain.Product, error) {
	const op = "AdminUseCase.AdjustStock"

	if quantity.IsZero() {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Product, error) {
		return a.productAPI.AdjustStock(ctx, token, id, quantity)
	})
}

// CATEGORIES

func (a *AdminUseCase) ListCategories(ctx context.Context, sessionID string) ([]domain.Category, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.ListCategories", sessionID, func(token string) ([]domain.Category, error) {
		return a.categoryAPI.ListCategories(ctx, token)
	})
}

func (a *AdminUseCase) CreateCategory(ctx context.Context, sessionID string, in *CategoryInput) (*domain.Category, error) {
	const op = "AdminUseCase.CreateCategory"

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Category, error) {
		return a.categoryAPI.CreateCategory(ctx, token, in)
	})
}

func (a *AdminUseCase) UpdateCategory(ctx context.Context, sessionID, id string, in *CategoryInput) (*domain.Category, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.UpdateCategory", sessionID, func(token string) (*domain.Category, error) {
		return a.categoryAPI.UpdateCategory(ctx, token, id, in)
	})
}

func (a *AdminUseCase) SetCategoryActive(ctx context.Context, sessionID, id string, active bool) (*domain.Category, error) {
	return a.UpdateCategory(ctx, sessionID, id, &CategoryInput{Active: &active})
}

// ORDERS

func (a *AdminUseCase) ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.ListOrders", sessionID, func(token string) ([]domain.Order, error) {
		return a.orderAPI.ListOrders(ctx, token)
	})
}

// MyOrders: заказы текущего пользователя; API фильтрует их по токену.
func (a *AdminUseCase) MyOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.MyOrders", sessionID, func(token string) ([]domain.Order, error) {
		return a.orderAPI.ListOrders(ctx, token)
	})
}

// UpdateOrderStatus меняет статус заказа и при необходимости назначает курьера.
func (a *AdminUseCase) UpdateOrderStatus(ctx context.Context, sessionID, id string, req *UpdateOrderStatusReq) (*domain.Order, error) {
	const op = "AdminUseCase.UpdateOrderStatus"

	if !req.Status.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	order, err := authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Order, error) {
		return a.orderAPI.UpdateOrderStatus(ctx, token, id, req)
	})
	if err != nil {
		return nil, err
	}

	a.logger.Infof("Order status changed, order_id: %s, status: %s", id, req.Status)

	return order, nil
}

func (a *AdminUseCase) TakeOrder(ctx context.Context, sessionID, id string) (*domain.Order, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.TakeOrder", sessionID, func(token string) (*domain.Order, error) {
		return a.orderAPI.TakeOrder(ctx, token, id)
	})
}

func (a *AdminUseCase) MarkOrderOnTheWay(ctx context.Context, sessionID, id string) (*domain.Order, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.MarkOrderOnTheWay", sessionID, func(token string) (*domain.Order, error) {
		return a.orderAPI.MarkOrderOnTheWay(ctx, token, id)
	})
}

// USERS

func (a *AdminUseCase) ListUsers(ctx context.Context, sessionID string, role domain.Role) ([]domain.User, error) {
	const op = "AdminUseCase.ListUsers"

	if role != "" && !role.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidRole)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) ([]domain.User, error) {
		return a.userAPI.ListUsers(ctx, token, role)
	})
}

func (a *AdminUseCase) UpdateUser(ctx context.Context, sessionID, id string, in *UserInput) (*domain.User, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.UpdateUser", sessionID, func(token string) (*domain.User, error) {
		return a.userAPI.UpdateUser(ctx, token, id, in)
	})
}

func (a *AdminUseCase) ChangeUserRole(ctx context.Context, sessionID, id string, role domain.Role) (*domain.User, error) {
	const op = "AdminUseCase.ChangeUserRole"

	if !role.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidRole)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.User, error) {
		return a.userAPI.ChangeUserRole(ctx, token, id, role)
	})
}

// LOCATIONS

func (a *AdminUseCase) ListLocations(ctx context.Context, sessionID string) ([]domain.Location, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.ListLocations", sessionID, func(token string) ([]domain.Location, error) {
		return a.locationAPI.ListLocations(ctx, token)
	})
}

func (a *AdminUseCase) CreateLocation(ctx context.Context, sessionID string, in *LocationInput) (*domain.Location, error) {
	const op = "AdminUseCase.CreateLocation"

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" || in.Cost == nil {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}
	if err := validatePrice(in.Cost); err != nil {
		return nil, e.Wrap(op, err)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Location, error) {
		return a.locationAPI.CreateLocation(ctx, token, in)
	})
}

func (a *AdminUseCase) UpdateLocation(ctx context.Context, sessionID, id string, in *LocationInput) (*domain.Location, error) {
	const op = "AdminUseCase.UpdateLocation"

	if err := validatePrice(in.Cost); err != nil {
		return nil, e.Wrap(op, err)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.Location, error) {
		return a.locationAPI.UpdateLocation(ctx, token, id, in)
	})
}

func (a *AdminUseCase) DeleteLocation(ctx context.Context, sessionID, id string) error {
	_, err := authorized(ctx, a.sessions, "AdminUseCase.DeleteLocation", sessionID, func(token string) (struct{}, error) {
		return struct{}{}, a.locationAPI.DeleteLocation(ctx, token, id)
	})

	return err
}

// HOURS

func (a *AdminUseCase) ListSchedule(ctx context.Context, sessionID string) ([]domain.ScheduleEntry, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.ListSchedule", sessionID, func(token string) ([]domain.ScheduleEntry, error) {
		return a.scheduleAPI.ListSchedule(ctx, token)
	})
}

func (a *AdminUseCase) CreateScheduleEntry(ctx context.Context, sessionID string, in *ScheduleInput) (*domain.ScheduleEntry, error) {
	const op = "AdminUseCase.CreateScheduleEntry"

	if err := validateScheduleInput(in); err != nil {
		return nil, e.Wrap(op, err)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.ScheduleEntry, error) {
		return a.scheduleAPI.CreateScheduleEntry(ctx, token, in)
	})
}

func (a *AdminUseCase) UpdateScheduleEntry(ctx context.Context, sessionID, id string, in *ScheduleInput) (*domain.ScheduleEntry, error) {
	const op = "AdminUseCase.UpdateScheduleEntry"

	if err := validateScheduleInput(in); err != nil {
		return nil, e.Wrap(op, err)
	}

	return authorized(ctx, a.sessions, op, sessionID, func(token string) (*domain.ScheduleEntry, error) {
		return a.scheduleAPI.UpdateScheduleEntry(ctx, token, id, in)
	})
}

// InitializeSchedule создает расписание по умолчанию на всю неделю.
func (a *AdminUseCase) InitializeSchedule(ctx context.Context, sessionID string) ([]domain.ScheduleEntry, error) {
	return authorized(ctx, a.sessions, "AdminUseCase.InitializeSchedule", sessionID, func(token string) ([]domain.ScheduleEntry, error) {
		return a.scheduleAPI.InitializeSchedule(ctx, token)
	})
}

// VALIDATION

func validateProductInput(in *ProductInput) error {
	if err := validatePrice(in.SalePrice); err != nil {
		return err
	}
	if err := validatePrice(in.PurchasePrice); err != nil {
		return err
	}
	if in.Stock != nil && in.Stock.IsNegative() {
		return e.ErrInvalidQuantity
	}

	return nil
}

// validatePrice: цена неотрицательна и содержит не более двух знаков после запятой.
func validatePrice(price *decimal.Decimal) error {
	if price == nil {
		return nil
	}
	if price.IsNegative() {
		return e.ErrInvalidPrice
	}
	if !price.Equal(price.Round(2)) {
		return e.ErrPricePrecision
	}

	return nil
}

func validateScheduleInput(in *ScheduleInput) error {
	if !in.Day.Valid() {
		return e.ErrInvalidWeekday
	}
	if in.Closed {
		return nil
	}

	if _, err := domain.ParseClock(in.OpeningTime); err != nil {
		return e.ErrInvalidClock
	}
	if _, err := domain.ParseClock(in.ClosingTime); err != nil {
		return e.ErrInvalidClock
	}

	return nil
}
