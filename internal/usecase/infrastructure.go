package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Порты внешнего REST API. token == "" означает анонимный запрос.

type ProductAPI interface {
	ListProducts(ctx context.Context, token string, includeInactive bool) ([]domain.Product, error)
	GetProduct(ctx context.Context, token, id string) (*domain.Product, error)
	GetProductByBarcode(ctx context.Context, token, barcode string) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, in *ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, in *ProductInput) (*domain.Product, error)
	AdjustStock(ctx context.Context, token, id string, quantity decimal.Decimal) (*domain.Product, error)
}

type CategoryAPI interface {
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, token string, in *CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, token, id string, in *CategoryInput) (*domain.Category, error)
}

type ScheduleAPI interface {
	ListSchedule(ctx context.Context, token string) ([]domain.ScheduleEntry, error)
	CreateScheduleEntry(ctx context.Context, token string, in *ScheduleInput) (*domain.ScheduleEntry, error)
	UpdateScheduleEntry(ctx context.Context, token, id string, in *ScheduleInput) (*domain.ScheduleEntry, error)
	InitializeSchedule(ctx context.Context, token string) ([]domain.ScheduleEntry, error)
}

type LocationAPI interface {
	ListLocations(ctx context.Context, token string) ([]domain.Location, error)
	CreateLocation(ctx context.Context, token string, in *LocationInput) (*domain.Location, error)
	UpdateLocation(ctx context.Context, token, id string, in *LocationInput) (*domain.Location, error)
	DeleteLocation(ctx context.Context, token, id string) error
}

type OrderAPI interface {
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	PlaceOrder(ctx context.Context, token string, req *PlaceOrderReq) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id string, req *UpdateOrderStatusReq) (*domain.Order, error)
	TakeOrder(ctx context.Context, token, id string) (*domain.Order, error)
	MarkOrderOnTheWay(ctx context.Context, token, id string) (*domain.Order, error)
}

type UserAPI interface {
	ListUsers(ctx context.Context, token string, role domain.Role) ([]domain.User, error)
	UpdateUser(ctx context.Context, token, id string, in *UserInput) (*domain.User, error)
	ChangeUserRole(ctx context.Context, token, id string, role domain.Role) (*domain.User, error)
}

type AuthAPI interface {
	RequestCode(ctx context.Context, req *RequestCodeReq) (bool, error)
	VerifyCode(ctx context.Context, phone, code string) (*AuthResult, error)
	Profile(ctx context.Context, token string) (*domain.User, error)
}

// MessageProducer публикует сообщения в брокер.
type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
