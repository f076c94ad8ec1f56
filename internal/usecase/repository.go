package usecase

import (
	"context"

	"github.com/vinylcrate/go-backend/internal/domain"
)

type HealthRepository interface {
	Check(ctx context.Context) (string, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]ProductSummary, error)
	GetByID(ctx context.Context, productID int64) (*domain.Product, error)
	// GetPrice читает цену внутри транзакции из контекста.
	GetPrice(ctx context.Context, productID int64) (int64, error)
}

type CartRepository interface {
	// CreateCart, InsertItem и GetItem выполняются внутри транзакции из контекста.
	CreateCart(ctx context.Context) (*domain.Cart, error)
	InsertItem(ctx context.Context, item *domain.CartItem) (int64, error)
	GetItem(ctx context.Context, cartItemID int64) (*CartItemInfo, error)
	ListItems(ctx context.Context, cartID int64) ([]CartItemInfo, error)
}

type OrderRepository interface {
	// Create выполняется внутри транзакции из контекста.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

// SessionRepository хранит привязку сессионного токена к корзине.
type SessionRepository interface {
	GetCartID(ctx context.Context, token string) (int64, bool, error)
	SetCartID(ctx context.Context, token string, cartID int64) error
	ClearCartID(ctx context.Context, token string) error
}
