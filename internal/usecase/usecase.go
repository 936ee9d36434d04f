package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	ItemCount(ctx context.Context, sessionID string) (int, error)
	AddItem(ctx context.Context, req *AddItemReq) (*CartView, error)
	UpdateQuantity(ctx context.Context, req *UpdateQuantityReq) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type HoursUC interface {
	Status(ctx context.Context) (*domain.HoursStatus, error)
	Now() time.Time
}

type CheckoutUC interface {
	Quote(ctx context.Context, sessionID, destination string) (*QuoteRes, error)
	PlaceOrder(ctx context.Context, req *CheckoutReq) (*domain.Order, error)
	History(ctx context.Context, sessionID string, limit int) ([]PlacedOrder, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	Storefront(ctx context.Context, filter ProductFilter) (*StorefrontRes, error)
	ImageURL(ctx context.Context, filename string) (string, error)
}

type AuthUC interface {
	RequestCode(ctx context.Context, req *RequestCodeReq) (bool, error)
	VerifyCode(ctx context.Context, sessionID, phone, code string) (*domain.User, error)
	Profile(ctx context.Context, sessionID string) (*domain.User, error)
	Logout(ctx context.Context, sessionID string) error
}

type AdminUC interface {
	ListProducts(ctx context.Context, sessionID string, includeInactive bool) ([]domain.Product, error)
	GetProductByBarcode(ctx context.Context, sessionID, barcode string) (*domain.Product, error)
	CreateProduct(ctx context.Context, sessionID string, in *ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, sessionID, id string, in *ProductInput) (*domain.Product, error)
	SetProductActive(ctx context.Context, sessionID, id string, active bool) (*domain.Product, error)
	AdjustStock(ctx context.Context, sessionID, id string, quantity decimal.Decimal) (*domain.Product, error)

	ListCategories(ctx context.Context, sessionID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, sessionID string, in *CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, sessionID, id string, in *CategoryInput) (*domain.Category, error)
	SetCategoryActive(ctx context.Context, sessionID, id string, active bool) (*domain.Category, error)

	ListOrders(ctx context.Context, sessionID string) ([]domain.Order, error)
	MyOrders(ctx context.Context, sessionID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, sessionID, id string, req *UpdateOrderStatusReq) (*domain.Order, error)
	TakeOrder(ctx context.Context, sessionID, id string) (*domain.Order, error)
	MarkOrderOnTheWay(ctx context.Context, sessionID, id string) (*domain.Order, error)

	ListUsers(ctx context.Context, sessionID string, role domain.Role) ([]domain.User, error)
	UpdateUser(ctx context.Context, sessionID, id string, in *UserInput) (*domain.User, error)
	ChangeUserRole(ctx context.Context, sessionID, id string, role domain.Role) (*domain.User, error)

	ListLocations(ctx context.Context, sessionID string) ([]domain.Location, error)
	CreateLocation(ctx context.Context, sessionID string, in *LocationInput) (*domain.Location, error)
	UpdateLocation(ctx context.Context, sessionID, id string, in *LocationInput) (*domain.Location, error)
	DeleteLocation(ctx context.Context, sessionID, id string) error

	ListSchedule(ctx context.Context, sessionID string) ([]domain.ScheduleEntry, error)
	CreateScheduleEntry(ctx context.Context, sessionID string, in *ScheduleInput) (*domain.ScheduleEntry, error)
	UpdateScheduleEntry(ctx context.Context, sessionID, id string, in *ScheduleInput) (*domain.ScheduleEntry, error)
	InitializeSchedule(ctx context.Context, sessionID string) ([]domain.ScheduleEntry, error)
}
