package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

// CatalogUseCase реализует чтение каталога.
// Каталог наполняется из cmd/seed; API только читает.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts возвращает публичные поля всех позиций каталога.
// Порядок определяет клиент.
func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]ProductSummary, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает полную запись продукта.
// Отсутствующий productId — клиентская ошибка 404 с указанием идентификатора.
func (c *CatalogUseCase) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.NewClientError(http.StatusNotFound, "%d is not a valid productId", productID)
		}

		return nil, e.Wrap(op, err)
	}

	return product, nil
}
