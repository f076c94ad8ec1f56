package usecase

import (
	"context"

	"github.com/vinylcrate/go-backend/internal/domain"
)

type HealthUC interface {
	Check(ctx context.Context) (*HealthRes, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context) ([]ProductSummary, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
}

type CartUC interface {
	GetCart(ctx context.Context, token string) ([]CartItemInfo, error)
	AddItem(ctx context.Context, token string, productID int64) (*CartItemInfo, error)
}

type OrderUC interface {
	Checkout(ctx context.Context, token string, req *CheckoutReq) (*CheckoutRes, error)
}
