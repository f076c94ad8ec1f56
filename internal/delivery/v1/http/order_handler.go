package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type CheckoutRequest struct {
	Name            string `json:"name"`
	CreditCard      string `json:"creditCard"`
	ShippingAddress string `json:"shippingAddress"`
}

// OrderResponse — поля созданного заказа.
type OrderResponse struct {
	OrderID         int64     `json:"orderId"`
	CreatedAt       time.Time `json:"createdAt"`
	Name            string    `json:"name"`
	CreditCard      string    `json:"creditCard"`
	ShippingAddress string    `json:"shippingAddress"`
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Создаёт заказ из корзины сессии и отвязывает корзину от сессии
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CheckoutRequest	true	"Данные покупателя"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Отсутствует cartId или поле покупателя"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	token, err := TokenFromCtx(r.Context())
	if err != nil {
		WriteError(w, o.logger, err)
		return
	}

	// Пустое тело эквивалентно телу без полей: первым сообщается отсутствующий cartId
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, o.logger, e.BadRequest("request body must be valid JSON"))
		return
	}

	res, err := o.orderUsecase.Checkout(r.Context(), token, usecase.NewCheckoutReq(req.Name, req.CreditCard, req.ShippingAddress))
	if err != nil {
		WriteError(w, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, OrderResponse{
		OrderID:         res.OrderID,
		CreatedAt:       res.CreatedAt,
		Name:            res.Name,
		CreditCard:      res.CreditCard,
		ShippingAddress: res.ShippingAddress,
	})
}
