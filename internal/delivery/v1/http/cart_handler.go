package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	sessions    *Sessions
	currency    string
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, sessions *Sessions, currency string, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, sessions: sessions, currency: currency, logger: logger}
}

// getCart
//
//	@Summary		Корзина текущей сессии
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	CartResponse
//	@Router			/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.cartUsecase.GetCart(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view, h.currency))
}

// addItem
//
//	@Summary		Добавить товар в корзину
//	@Description	Повторное добавление увеличивает количество на 1.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AddCartItemRequest	true	"Товар"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.ProductID <= 0 {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	view, err := h.cartUsecase.AddToCart(r.Context(), SessionFromContext(r.Context()), req.ProductID)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view, h.currency))
}

// updateItem
//
//	@Summary		Изменить количество товара
//	@Description	Количество меняется на delta, но не опускается ниже 1.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int						true	"Идентификатор товара"
//	@Param			body		body		UpdateCartItemRequest	true	"Изменение количества"
//	@Success		200			{object}	CartResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/cart/items/{productID} [patch]
func (h *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.Delta == nil {
		WriteError(w, e.Wrap("delta is required", e.ErrInvalidRequestBody))
		return
	}

	view, err := h.cartUsecase.UpdateQuantity(r.Context(), SessionFromContext(r.Context()), productID, *req.Delta)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view, h.currency))
}

// removeItem
//
//	@Summary		Удалить товар из корзины
//	@Tags			cart
//	@Produce		json
//	@Param			productID	path		int	true	"Идентификатор товара"
//	@Success		200			{object}	CartResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/cart/items/{productID} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := productIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.cartUsecase.RemoveFromCart(r.Context(), SessionFromContext(r.Context()), productID)
	if err != nil {
		h.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(view, h.currency))
}

// endSession
//
//	@Summary		Завершить сессию
//	@Description	Корзина удаляется, cookie сессии сбрасывается.
//	@Tags			cart
//	@Success		204
//	@Router			/cart [delete]
func (h *CartHandler) endSession(w http.ResponseWriter, r *http.Request) {
	if err := h.cartUsecase.EndSession(r.Context(), SessionFromContext(r.Context())); err != nil {
		h.writeUsecaseError(w, err)
		return
	}

	h.sessions.Expire(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) writeUsecaseError(w http.ResponseWriter, err error) {
	if code, _ := ToHTTPResponse(err); code >= http.StatusInternalServerError {
		h.logger.Errorf(err, "cart request failed")
	} else {
		h.logger.Warnf("%d %s", code, err.Error())
	}

	WriteError(w, err)
}
