package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

type AddCartItemRequest struct {
	ProductID json.Number `json:"productId"`
}

// CartItemResponse — позиция корзины, обогащённая полями продукта.
type CartItemResponse struct {
	CartItemID       int64  `json:"cartItemId"`
	Price            int64  `json:"price"`
	ProductID        int64  `json:"productId"`
	Image            string `json:"image"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	BandName         string `json:"bandName"`
	Genre            string `json:"genre"`
	Year             int32  `json:"year"`
}

// getCart
//
//	@Summary		Корзина текущей сессии
//	@Description	Возвращает позиции корзины; сессия без корзины — пустой массив
//	@Tags			cart
//	@Produce		json
//	@Success		200	{array}		CartItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	token, err := TokenFromCtx(r.Context())
	if err != nil {
		WriteError(w, c.logger, err)
		return
	}

	items, err := c.cartUsecase.GetCart(r.Context(), token)
	if err != nil {
		WriteError(w, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartItemResponses(items))
}

// addToCart
//
//	@Summary		Добавление товара в корзину
//	@Description	Создаёт корзину при первом добавлении и фиксирует цену товара
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AddCartItemRequest	true	"Идентификатор товара"
//	@Success		201		{object}	CartItemResponse
//	@Failure		400		{object}	ErrorResponse	"Негодный productId"
//	@Router			/cart [post]
func (c *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	token, err := TokenFromCtx(r.Context())
	if err != nil {
		WriteError(w, c.logger, err)
		return
	}

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, c.logger, e.BadRequest("productId must be a positive integer"))
		return
	}

	productID, err := req.ProductID.Int64()
	if err != nil {
		WriteError(w, c.logger, e.BadRequest("productId must be a positive integer"))
		return
	}

	item, err := c.cartUsecase.AddItem(r.Context(), token, productID)
	if err != nil {
		WriteError(w, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCartItemResponse(item))
}

func toCartItemResponse(item *usecase.CartItemInfo) CartItemResponse {
	return CartItemResponse{
		CartItemID:       item.CartItemID,
		Price:            item.Price,
		ProductID:        item.ProductID,
		Image:            item.Image,
		Name:             item.Name,
		ShortDescription: item.ShortDescription,
		BandName:         item.BandName,
		Genre:            item.Genre,
		Year:             item.Year,
	}
}

func toCartItemResponses(items []usecase.CartItemInfo) []CartItemResponse {
	result := make([]CartItemResponse, 0, len(items))
	for i := range items {
		result = append(result, toCartItemResponse(&items[i]))
	}
	return result
}
