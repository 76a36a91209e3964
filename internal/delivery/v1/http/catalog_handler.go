package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	currency       string
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, currency string, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, currency: currency, logger: logger}
}

// listProducts
//
//	@Summary		Товары каталога
//	@Description	Возвращает товары категории в порядке каталога. Без параметра или с "all" возвращается весь каталог.
//	@Tags			catalog
//	@Produce		json
//	@Param			category	query		string	false	"Идентификатор категории"
//	@Success		200			{object}	ProductListResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}

	products := h.catalogUsecase.FilterByCategory(category)
	WriteSuccess(w, http.StatusOK, toProductListResponse(category, products, h.currency))
}

// featured
//
//	@Summary		Популярные товары
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	ProductListResponse
//	@Router			/products/featured [get]
func (h *CatalogHandler) featured(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toProductListResponse("", h.catalogUsecase.Featured(), h.currency))
}

// productByID
//
//	@Summary		Товар по идентификатору
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *CatalogHandler) productByID(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r, "id")
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.ProductByID(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product, h.currency))
}

// listCategories
//
//	@Summary		Категории каталога
//	@Description	Первая категория всегда "all".
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCategoryListResponse(h.catalogUsecase.ListCategories()))
}
