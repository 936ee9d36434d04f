package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type AddItemBody struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type QuantityBody struct {
	Quantity int `json:"quantity"`
}

type CountDTO struct {
	Count int `json:"count"`
}

func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := c.cartUsecase.GetCart(r.Context(), SessionFromCtx(r.Context()))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(view))
}

func (c *CartHandler) count(w http.ResponseWriter, r *http.Request) {
	n, err := c.cartUsecase.ItemCount(r.Context(), SessionFromCtx(r.Context()))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CountDTO{Count: n})
}

// addItem
//
//	@Summary		Добавить товар в корзину
//	@Description	Количество складывается с уже добавленным и не может превысить остаток
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AddItemBody	true	"Товар и количество"
//	@Success		200		{object}	CartDTO
//	@Failure		400		{object}	ErrorResponse	"Нет в наличии или превышен остаток"
//	@Router			/cart/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var body AddItemBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUsecase.AddItem(r.Context(), &usecase.AddItemReq{
		SessionID: SessionFromCtx(r.Context()),
		ProductID: body.ProductID,
		Quantity:  body.Quantity,
	})
	if err != nil {
		c.logger.Warnf("%d %s", ToHTTPResponse(err).Code, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(view))
}

func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var body QuantityBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUsecase.UpdateQuantity(r.Context(), &usecase.UpdateQuantityReq{
		SessionID: SessionFromCtx(r.Context()),
		ProductID: chi.URLParam(r, "productId"),
		Quantity:  body.Quantity,
	})
	if err != nil {
		c.logger.Warnf("%d %s", ToHTTPResponse(err).Code, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(view))
}

func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	view, err := c.cartUsecase.RemoveItem(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "productId"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartDTO(view))
}

func (c *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := c.cartUsecase.ClearCart(r.Context(), SessionFromCtx(r.Context())); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
