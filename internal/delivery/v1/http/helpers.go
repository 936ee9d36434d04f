package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// publicError: ошибка внешнего API с сообщением для покупателя.
type publicError interface {
	HTTPStatus() int
	PublicMessage() string
}

// badRequestErrors: ошибки, которые отдаются клиенту как есть с кодом 400.
var badRequestErrors = []error{
	e.ErrStatusBadRequest,
	e.ErrInvalidQuantity,
	e.ErrOutOfStock,
	e.ErrQuantityExceedsStock,
	e.ErrProductNotInCart,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrMissingFields,
	e.ErrInvalidFulfillment,
	e.ErrPhoneRequired,
	e.ErrCodeRequired,
	e.ErrMissingAccessToken,
	e.ErrUnknownLocation,
	e.ErrInvalidOrderStatus,
	e.ErrInvalidRole,
	e.ErrInvalidWeekday,
	e.ErrInvalidClock,
	e.ErrInvalidImageName,
	e.ErrEmptyCart,
	e.ErrDestinationRequired,
	e.ErrOutsideHours,
	e.ErrBackorderNeedsDate,
	e.ErrFulfillmentTooSoon,
}

// ToHTTPResponse переводит ошибку usecase в код и тело ответа.
func ToHTTPResponse(err error) *ErrorResponse {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		res := NewErrorResponse(http.StatusBadRequest, "validation failed")
		res.Fields = make(map[string]string, len(verr.Fields))
		for _, f := range verr.Fields {
			res.Fields[f.Field] = f.Err.Error()
		}
		return res
	}

	switch {
	case errors.Is(err, e.ErrUnauthorized):
		return NewErrorResponse(http.StatusUnauthorized, e.ErrUnauthorized.Error())
	case errors.Is(err, e.ErrForbidden):
		return NewErrorResponse(http.StatusForbidden, e.ErrForbidden.Error())
	case errors.Is(err, e.ErrNotFound):
		return NewErrorResponse(http.StatusNotFound, e.ErrNotFound.Error())
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return NewErrorResponse(http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error())
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return NewErrorResponse(http.StatusBadRequest, target.Error())
		}
	}

	var perr publicError
	if errors.As(err, &perr) && perr.HTTPStatus() >= 400 && perr.HTTPStatus() < 500 {
		msg := perr.PublicMessage()
		if msg == "" {
			msg = e.ErrUpstreamClient.Error()
		}
		return NewErrorResponse(perr.HTTPStatus(), msg)
	}

	switch {
	case errors.Is(err, e.ErrUpstreamDown):
		return NewErrorResponse(http.StatusServiceUnavailable, e.ErrUpstreamDown.Error())
	case errors.Is(err, e.ErrUpstreamServer):
		return NewErrorResponse(http.StatusBadGateway, e.ErrUpstreamServer.Error())
	default:
		return NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error())
	}
}

func WriteError(w http.ResponseWriter, err error) {
	res := ToHTTPResponse(err)
	WriteSuccess(w, res.Code, res)
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Пустое тело допустимо.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}

func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}

	return v
}
