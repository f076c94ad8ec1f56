package usecase

import (
	"context"
	"errors"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

// CartUseCase реализует работу с корзиной текущей сессии.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	sessionRepo SessionRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	sessionRepo SessionRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		sessionRepo: sessionRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// GetCart возвращает позиции корзины сессии.
// Сессия без корзины — пустой список, а не ошибка.
func (c *CartUseCase) GetCart(ctx context.Context, token string) ([]CartItemInfo, error) {
	const op = "CartUseCase.GetCart"

	cartID, hasCart, err := c.sessionRepo.GetCartID(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !hasCart {
		return []CartItemInfo{}, nil
	}

	items, err := c.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return items, nil
}

// AddItem добавляет продукт в корзину сессии, создавая корзину при первом добавлении.
// Проверка цены, создание корзины, вставка позиции и её обогащённое перечитывание
// выполняются в одной транзакции; привязка корзины к сессии — после коммита.
func (c *CartUseCase) AddItem(ctx context.Context, token string, productID int64) (*CartItemInfo, error) {
	const op = "CartUseCase.AddItem"

	// Валидация данных
	if productID <= 0 {
		return nil, e.BadRequest("productId must be a positive integer")
	}

	cartID, hasCart, err := c.sessionRepo.GetCartID(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Фиксация цены на момент добавления
	price, err := c.productRepo.GetPrice(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Исторически это 400, а не 404: клиент прислал заведомо негодный productId
			err = e.BadRequest("unable to locate productId %d", productID)
			return nil, err
		}

		return nil, e.Wrap(op, err)
	}

	// Создание корзины при первом использовании
	if !hasCart {
		cart, crErr := c.cartRepo.CreateCart(ctx)
		if crErr != nil {
			err = crErr
			return nil, e.Wrap(op, err)
		}
		cartID = cart.ID
	}

	itemID, err := c.cartRepo.InsertItem(ctx, domain.NewCartItem(cartID, productID, price))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	item, err := c.cartRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.sessionRepo.SetCartID(ctx, token, cartID); err != nil {
		return nil, e.Wrap(op, err)
	}

	return item, nil
}
