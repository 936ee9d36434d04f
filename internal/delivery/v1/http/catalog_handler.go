package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	hoursUsecase   usecase.HoursUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, hoursUsecase usecase.HoursUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		hoursUsecase:   hoursUsecase,
		logger:         logger,
	}
}

func productFilter(r *http.Request) usecase.ProductFilter {
	return usecase.ProductFilter{
		Search:     r.URL.Query().Get("q"),
		CategoryID: r.URL.Query().Get("category"),
	}
}

// listProducts
//
//	@Summary		Товары витрины
//	@Description	Активные товары в наличии или под заказ с поиском и фильтром по категории
//	@Tags			catalog
//	@Produce		json
//	@Param			q			query		string	false	"Поиск по названию, марке и описанию"
//	@Param			category	query		string	false	"ID категории"
//	@Success		200			{array}		ProductDTO
//	@Failure		502			{object}	ErrorResponse
//	@Router			/catalog/products [get]
func (c *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalogUsecase.ListProducts(r.Context(), productFilter(r))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductDTO(products, false))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	ProductDTO
//	@Failure	404	{object}	ErrorResponse
//	@Router		/catalog/products/{id} [get]
func (c *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := c.catalogUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductDTO(product, false))
}

func (c *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrCategoryDTO(categories))
}

type HomeDTO struct {
	Products   []ProductDTO  `json:"products"`
	Categories []CategoryDTO `json:"categories"`
	Hours      HoursDTO      `json:"hours"`
}

// home
//
//	@Summary	Главная страница
//	@Description	Товары, категории и состояние магазина одним запросом
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{object}	HomeDTO
//	@Router		/catalog/home [get]
func (c *CatalogHandler) home(w http.ResponseWriter, r *http.Request) {
	res, err := c.catalogUsecase.Storefront(r.Context(), productFilter(r))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, HomeDTO{
		Products:   toArrProductDTO(res.Products, false),
		Categories: toArrCategoryDTO(res.Categories),
		Hours:      toHoursDTO(&res.Hours, c.hoursUsecase.Now()),
	})
}

// hoursStatus
//
//	@Summary	Часы работы сейчас
//	@Tags		hours
//	@Produce	json
//	@Success	200	{object}	HoursDTO
//	@Router		/hours/status [get]
func (c *CatalogHandler) hoursStatus(w http.ResponseWriter, r *http.Request) {
	status, err := c.hoursUsecase.Status(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toHoursDTO(status, c.hoursUsecase.Now()))
}
