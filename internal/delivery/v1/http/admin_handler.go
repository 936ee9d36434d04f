package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// AdminHandler: панель администратора и курьера. Права проверяет внешний API по токену сессии.
type AdminHandler struct {
	adminUsecase usecase.AdminUC
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, logger: logger}
}

type ProductBody struct {
	Name            *string          `json:"name"`
	Barcode         *string          `json:"barcode"`
	Brand           *string          `json:"brand"`
	Content         *string          `json:"content"`
	Unit            *string          `json:"unit"`
	Description     *string          `json:"description"`
	PurchasePrice   *decimal.Decimal `json:"purchasePrice"`
	SalePrice       *decimal.Decimal `json:"price"`
	Stock           *decimal.Decimal `json:"stock"`
	AllowsBackorder *bool            `json:"allowsBackorder"`
	Active          *bool            `json:"active"`
	CategoryID      *string          `json:"categoryId"`
}

func (b *ProductBody) toInput() *usecase.ProductInput {
	in := &usecase.ProductInput{
		Name:            b.Name,
		Barcode:         b.Barcode,
		Brand:           b.Brand,
		Content:         b.Content,
		Description:     b.Description,
		PurchasePrice:   b.PurchasePrice,
		SalePrice:       b.SalePrice,
		Stock:           b.Stock,
		AllowsBackorder: b.AllowsBackorder,
		Active:          b.Active,
		CategoryID:      b.CategoryID,
	}
	if b.Unit != nil {
		unit := domain.UnitOfMeasure(*b.Unit)
		in.Unit = &unit
	}

	return in
}

type CategoryBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type LocationBody struct {
	Name   *string          `json:"name"`
	Cost   *decimal.Decimal `json:"cost"`
	Active *bool            `json:"active"`
}

type ScheduleBody struct {
	Day         string `json:"day"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	Closed      bool   `json:"closed"`
}

func (b *ScheduleBody) toInput() *usecase.ScheduleInput {
	return &usecase.ScheduleInput{
		Day:         domain.Weekday(b.Day),
		OpeningTime: b.OpeningTime,
		ClosingTime: b.ClosingTime,
		Closed:      b.Closed,
	}
}

type ActiveBody struct {
	Active bool `json:"active"`
}

type StockBody struct {
	Quantity decimal.Decimal `json:"quantity"`
}

type OrderStatusBody struct {
	Status    string `json:"status"`
	CourierID string `json:"courierId"`
}

type UserBody struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	BirthDate *string `json:"birthDate"`
}

type RoleBody struct {
	Role string `json:"role"`
}

// respond пишет результат usecase: ошибку или DTO, построенный conv.
func respond[T any, D any](w http.ResponseWriter, log logger.Logger, status int, v T, err error, conv func(T) D) {
	if err != nil {
		res := ToHTTPResponse(err)
		if res.Code >= http.StatusInternalServerError {
			log.Errorf(err, "admin request failed")
		} else {
			log.Warnf("%d %s", res.Code, err.Error())
		}
		WriteSuccess(w, res.Code, res)
		return
	}

	WriteSuccess(w, status, conv(v))
}

func productConv(p *domain.Product) ProductDTO { return toProductDTO(p, true) }
func productsConv(p []domain.Product) []ProductDTO {
	return toArrProductDTO(p, true)
}
func categoryConv(c *domain.Category) CategoryDTO { return toCategoryDTO(c) }
func orderConv(o *domain.Order) OrderDTO          { return toOrderDTO(o) }
func userConv(u *domain.User) UserDTO             { return toUserDTO(u) }
func locationConv(l *domain.Location) LocationDTO { return toLocationDTO(l) }
func scheduleConv(s *domain.ScheduleEntry) ScheduleEntryDTO {
	return toScheduleEntryDTO(s)
}

// PRODUCTS

func (a *AdminHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListProducts(r.Context(), SessionFromCtx(r.Context()), queryBool(r, "all"))
	respond(w, a.logger, http.StatusOK, res, err, productsConv)
}

func (a *AdminHandler) productByBarcode(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.GetProductByBarcode(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "barcode"))
	respond(w, a.logger, http.StatusOK, res, err, productConv)
}

// createProduct
//
//	@Summary		Создать товар
//	@Description	Цены неотрицательные, не более двух знаков после запятой
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ProductBody	true	"Товар"
//	@Success		201		{object}	ProductDTO
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/admin/products [post]
func (a *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body ProductBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.CreateProduct(r.Context(), SessionFromCtx(r.Context()), body.toInput())
	respond(w, a.logger, http.StatusCreated, res, err, productConv)
}

func (a *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var body ProductBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.UpdateProduct(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), body.toInput())
	respond(w, a.logger, http.StatusOK, res, err, productConv)
}

func (a *AdminHandler) setProductActive(w http.ResponseWriter, r *http.Request) {
	var body ActiveBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.SetProductActive(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), body.Active)
	respond(w, a.logger, http.StatusOK, res, err, productConv)
}

func (a *AdminHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var body StockBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.AdjustStock(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), body.Quantity)
	respond(w, a.logger, http.StatusOK, res, err, productConv)
}

// CATEGORIES

func (a *AdminHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListCategories(r.Context(), SessionFromCtx(r.Context()))
	respond(w, a.logger, http.StatusOK, res, err, toArrCategoryDTO)
}

func (a *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body CategoryBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.CreateCategory(r.Context(), SessionFromCtx(r.Context()), (*usecase.CategoryInput)(&body))
	respond(w, a.logger, http.StatusCreated, res, err, categoryConv)
}

func (a *AdminHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var body CategoryBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.UpdateCategory(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), (*usecase.CategoryInput)(&body))
	respond(w, a.logger, http.StatusOK, res, err, categoryConv)
}

func (a *AdminHandler) setCategoryActive(w http.ResponseWriter, r *http.Request) {
	var body ActiveBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.SetCategoryActive(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), body.Active)
	respond(w, a.logger, http.StatusOK, res, err, categoryConv)
}

// ORDERS

func (a *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListOrders(r.Context(), SessionFromCtx(r.Context()))
	respond(w, a.logger, http.StatusOK, res, err, toArrOrderDTO)
}

func (a *AdminHandler) myOrders(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.MyOrders(r.Context(), SessionFromCtx(r.Context()))
	respond(w, a.logger, http.StatusOK, res, err, toArrOrderDTO)
}

// updateOrderStatus
//
//	@Summary	Сменить статус заказа
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"ID заказа"
//	@Param		body	body		OrderStatusBody	true	"Новый статус и курьер"
//	@Success	200		{object}	OrderDTO
//	@Failure	400		{object}	ErrorResponse
//	@Router		/admin/orders/{id}/status [patch]
func (a *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body OrderStatusBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.UpdateOrderStatus(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), &usecase.UpdateOrderStatusReq{
		Status:    domain.OrderStatus(body.Status),
		CourierID: body.CourierID,
	})
	respond(w, a.logger, http.StatusOK, res, err, orderConv)
}

func (a *AdminHandler) takeOrder(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.TakeOrder(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"))
	respond(w, a.logger, http.StatusOK, res, err, orderConv)
}

func (a *AdminHandler) markOnTheWay(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.MarkOrderOnTheWay(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"))
	respond(w, a.logger, http.StatusOK, res, err, orderConv)
}

// USERS

func (a *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListUsers(r.Context(), SessionFromCtx(r.Context()), domain.Role(r.URL.Query().Get("role")))
	respond(w, a.logger, http.StatusOK, res, err, toArrUserDTO)
}

func (a *AdminHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var body UserBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.UpdateUser(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), (*usecase.UserInput)(&body))
	respond(w, a.logger, http.StatusOK, res, err, userConv)
}

func (a *AdminHandler) changeUserRole(w http.ResponseWriter, r *http.Request) {
	var body RoleBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.ChangeUserRole(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), domain.Role(body.Role))
	respond(w, a.logger, http.StatusOK, res, err, userConv)
}

// LOCATIONS

func (a *AdminHandler) listLocations(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListLocations(r.Context(), SessionFromCtx(r.Context()))
	respond(w, a.logger, http.StatusOK, res, err, toArrLocationDTO)
}

func (a *AdminHandler) createLocation(w http.ResponseWriter, r *http.Request) {
	var body LocationBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.CreateLocation(r.Context(), SessionFromCtx(r.Context()), (*usecase.LocationInput)(&body))
	respond(w, a.logger, http.StatusCreated, res, err, locationConv)
}

func (a *AdminHandler) updateLocation(w http.ResponseWriter, r *http.Request) {
	var body LocationBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.UpdateLocation(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), (*usecase.LocationInput)(&body))
	respond(w, a.logger, http.StatusOK, res, err, locationConv)
}

func (a *AdminHandler) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := a.adminUsecase.DeleteLocation(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id")); err != nil {
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SCHEDULE

func (a *AdminHandler) listSchedule(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListSchedule(r.Context(), SessionFromCtx(r.Context()))
	respond(w, a.logger, http.StatusOK, res, err, toArrScheduleDTO)
}

func (a *AdminHandler) createScheduleEntry(w http.ResponseWriter, r *http.Request) {
	var body ScheduleBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.CreateScheduleEntry(r.Context(), SessionFromCtx(r.Context()), body.toInput())
	respond(w, a.logger, http.StatusCreated, res, err, scheduleConv)
}

func (a *AdminHandler) updateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	var body ScheduleBody
	if err := decodeJSON(w, r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.adminUsecase.UpdateScheduleEntry(r.Context(), SessionFromCtx(r.Context()), chi.URLParam(r, "id"), body.toInput())
	respond(w, a.logger, http.StatusOK, res, err, scheduleConv)
}

func (a *AdminHandler) initializeSchedule(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.InitializeSchedule(r.Context(), SessionFromCtx(r.Context()))
	respond(w, a.logger, http.StatusOK, res, err, toArrScheduleDTO)
}
