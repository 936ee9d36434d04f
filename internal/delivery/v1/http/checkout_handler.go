package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	hoursUsecase    usecase.HoursUC
	location        *time.Location
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, hoursUsecase usecase.HoursUC, location *time.Location, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUsecase: checkoutUsecase,
		hoursUsecase:    hoursUsecase,
		location:        location,
		logger:          logger,
	}
}

type CheckoutBody struct {
	ShippingDestination string `json:"shippingDestination"`
	// RFC3339 или YYYY-MM-DDTHH:MM во времени магазина
	FulfillmentAt string `json:"fulfillmentAt"`
	Notes         string `json:"notes"`
}

func (c *CheckoutHandler) quote(w http.ResponseWriter, r *http.Request) {
	res, err := c.checkoutUsecase.Quote(r.Context(), SessionFromCtx(r.Context()), r.URL.Query().Get("destination"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toQuoteDTO(res, c.hoursUsecase.Now()))
}

// placeOrder
//
//	@Summary		Оформить заказ
//	@Description	Проверяет корзину, пункт доставки и дату выполнения, затем создает заказ во внешнем API.
//	@Description	При ошибке корзина сохраняется.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CheckoutBody	true	"Данные оформления"
//	@Success		201		{object}	OrderDTO
//	@Failure		400		{object}	ErrorResponse	"Ошибки полей формы"
//	@Failure		401		{object}	ErrorResponse	"Нужен вход по телефону"
//	@Router			/checkout [post]
func (c *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var body CheckoutBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	fulfillmentAt, err := domain.ParseFulfillment(body.FulfillmentAt, c.location)
	if err != nil {
		verr := &domain.ValidationError{}
		verr.Add(domain.FieldFulfillmentAt, err)
		WriteError(w, verr)
		return
	}

	sid := SessionFromCtx(r.Context())
	order, err := c.checkoutUsecase.PlaceOrder(r.Context(), &usecase.CheckoutReq{
		SessionID: sid,
		Input: domain.CheckoutInput{
			ShippingDestination: body.ShippingDestination,
			FulfillmentAt:       fulfillmentAt,
			Notes:               body.Notes,
		},
	})
	if err != nil {
		c.logger.Warnf("checkout failed, session_id: %s, error: %v", sid, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderDTO(order))
}

func (c *CheckoutHandler) history(w http.ResponseWriter, r *http.Request) {
	orders, err := c.checkoutUsecase.History(r.Context(), SessionFromCtx(r.Context()), queryInt(r, "limit", 0))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrPlacedOrderDTO(orders))
}
