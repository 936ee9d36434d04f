package domain

import (
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// MinFulfillmentLead: минимальный запас времени до даты выполнения заказа.
const MinFulfillmentLead = time.Hour

const (
	FieldCart                = "cart"
	FieldShippingDestination = "shippingDestination"
	FieldFulfillmentAt       = "fulfillmentAt"
)

// CheckoutInput: данные формы оформления заказа.
type CheckoutInput struct {
	ShippingDestination string
	FulfillmentAt       *time.Time
	Notes               string
}

// FieldError: ошибка конкретного поля формы.
type FieldError struct {
	Field string
	Err   error
}

// ValidationError собирает ошибки всех полей формы.
type ValidationError struct {
	Fields []FieldError
}

func (v *ValidationError) Add(field string, err error) {
	v.Fields = append(v.Fields, FieldError{Field: field, Err: err})
}

func (v *ValidationError) Error() string {
	msgs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		msgs = append(msgs, f.Field+": "+f.Err.Error())
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(v.Fields))
	for _, f := range v.Fields {
		errs = append(errs, f.Err)
	}

	return errs
}

// OrNil возвращает nil, если ошибок нет.
func (v *ValidationError) OrNil() error {
	if len(v.Fields) == 0 {
		return nil
	}

	return v
}

// RequiresFulfillment сообщает, нужна ли дата выполнения: вне часов работы или при товарах под заказ.
func RequiresFulfillment(cart *Cart, hours HoursStatus) bool {
	return !hours.AllowsImmediateOrder() || cart.HasBackorderItems()
}

// ValidateCheckout выполняет предварительные проверки перед отправкой заказа.
// Окончательная валидация остается за внешним API.
func ValidateCheckout(cart *Cart, in CheckoutInput, hours HoursStatus, now time.Time, minLead time.Duration) error {
	verr := &ValidationError{}

	if cart == nil || cart.IsEmpty() {
		verr.Add(FieldCart, e.ErrEmptyCart)
	}

	if strings.TrimSpace(in.ShippingDestination) == "" {
		verr.Add(FieldShippingDestination, e.ErrDestinationRequired)
	}

	switch {
	case in.FulfillmentAt == nil && !hours.AllowsImmediateOrder():
		verr.Add(FieldFulfillmentAt, e.ErrOutsideHours)
	case in.FulfillmentAt == nil && cart != nil && cart.HasBackorderItems():
		verr.Add(FieldFulfillmentAt, e.ErrBackorderNeedsDate)
	case in.FulfillmentAt != nil && in.FulfillmentAt.Before(now.Add(minLead)):
		verr.Add(FieldFulfillmentAt, e.ErrFulfillmentTooSoon)
	}

	return verr.OrNil()
}

// fulfillmentLayouts перечисляет форматы даты выполнения: RFC3339 и значение поля datetime-local.
var fulfillmentLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ParseFulfillment разбирает дату выполнения заказа. Пустая строка дает nil.
// Значение без часового пояса считается временем магазина loc.
func ParseFulfillment(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	for _, layout := range fulfillmentLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return &t, nil
		}
	}

	return nil, e.Wrap(value, e.ErrInvalidFulfillment)
}
