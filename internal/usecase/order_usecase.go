package usecase

import (
	"context"
	"encoding/json"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

// OrderUseCase реализует оформление заказа из корзины сессии.
type OrderUseCase struct {
	orderRepo   OrderRepository
	outboxRepo  OutboxRepository
	sessionRepo SessionRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	sessionRepo SessionRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		sessionRepo: sessionRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// Checkout создаёт заказ по корзине сессии и отвязывает корзину от сессии.
// Поля проверяются в фиксированном порядке: cartId, name, creditCard, shippingAddress;
// сообщается только первое отсутствующее. Заказ и outbox-событие пишутся в одной транзакции.
func (o *OrderUseCase) Checkout(ctx context.Context, token string, req *CheckoutReq) (*CheckoutRes, error) {
	const op = "OrderUseCase.Checkout"

	cartID, hasCart, err := o.sessionRepo.GetCartID(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Валидация данных
	if !hasCart {
		return nil, e.BadRequest("valid cartId is required")
	}
	if req.Name == "" {
		return nil, e.BadRequest("a customer name is required")
	}
	if req.CreditCard == "" {
		return nil, e.BadRequest("a credit card is required")
	}
	if req.ShippingAddress == "" {
		return nil, e.BadRequest("a shipping address is required")
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order, err := o.orderRepo.Create(ctx, domain.NewOrder(cartID, req.Name, req.CreditCard, req.ShippingAddress))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	event, err := o.buildOrderCreatedEvent(order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.outboxRepo.Create(ctx, event); err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Заказ уже создан; несброшенная сессия оставит корзину адресуемой,
	// но не откатит заказ
	if err := o.sessionRepo.ClearCartID(ctx, token); err != nil {
		o.logger.Warnf("Failed to clear cart from session: %v", e.Wrap(op, err))
	}

	return &CheckoutRes{
		OrderID:         order.ID,
		CreatedAt:       order.CreatedAt,
		Name:            order.Name,
		CreditCard:      order.CreditCard,
		ShippingAddress: order.ShippingAddress,
	}, nil
}

// buildOrderCreatedEvent формирует outbox-событие order.created.
func (o *OrderUseCase) buildOrderCreatedEvent(order *domain.Order) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(OrderCreatedPayload{
		EventID:   eventID,
		OrderID:   order.ID,
		CartID:    order.CartID,
		CreatedAt: order.CreatedAt.UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return NewOutboxEvent(eventID, OrderCreated, order.ID, payload), nil
}
