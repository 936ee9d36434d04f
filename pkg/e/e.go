package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки хранилища
	ErrUnknownStorageDriver = fmt.Errorf("unknown storage driver")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrInternalServerError  = fmt.Errorf("internal server error")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be positive")
	ErrOutOfStock           = fmt.Errorf("product is out of stock")
	ErrQuantityExceedsStock = fmt.Errorf("quantity exceeds available stock")
	ErrProductNotInCart     = fmt.Errorf("product is not in the cart")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidFulfillment   = fmt.Errorf("fulfillment time must be RFC3339 or YYYY-MM-DDTHH:MM")
	ErrPhoneRequired        = fmt.Errorf("phone number is required")
	ErrCodeRequired         = fmt.Errorf("verification code is required")
	ErrMissingAccessToken   = fmt.Errorf("no access token received from server")
	ErrUnknownLocation      = fmt.Errorf("shipping destination is not available")
	ErrInvalidOrderStatus   = fmt.Errorf("invalid order status")
	ErrInvalidRole          = fmt.Errorf("invalid user role")
	ErrInvalidWeekday       = fmt.Errorf("invalid weekday")
	ErrInvalidClock         = fmt.Errorf("time must be HH:MM")
	ErrInvalidImageName     = fmt.Errorf("invalid image file name")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrDestinationRequired  = fmt.Errorf("a shipping destination must be selected")
	ErrOutsideHours         = fmt.Errorf("outside opening hours: select a fulfillment time")
	ErrBackorderNeedsDate   = fmt.Errorf("a fulfillment time is required for out-of-stock products")
	ErrFulfillmentTooSoon   = fmt.Errorf("fulfillment time is earlier than the minimum lead time")

	// 401 / 403 / 404
	ErrUnauthorized = fmt.Errorf("unauthorized")
	ErrForbidden    = fmt.Errorf("forbidden")
	ErrNotFound     = fmt.Errorf("not found")

	// Ошибки внешнего API
	ErrUpstreamServer = fmt.Errorf("upstream server error")
	ErrUpstreamClient = fmt.Errorf("upstream request rejected")
	ErrUpstreamDown   = fmt.Errorf("upstream unavailable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
