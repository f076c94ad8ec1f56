package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/tr"
)

// cartItemColumns — позиция корзины, обогащённая полями продукта для витрины.
const cartItemColumns = `
	SELECT c.cart_item_id,
	       c.price,
	       p.product_id,
	       p.image,
	       p.name,
	       p.short_description,
	       p.band_name,
	       p.genre,
	       p.year
	FROM cart_items AS c
	JOIN products AS p USING (product_id)
`

// CartRepo реализует репозиторий корзин поверх PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
}

func NewCartRepo(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// CreateCart создаёт пустую корзину внутри транзакции из контекста.
func (c *CartRepo) CreateCart(ctx context.Context) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO carts DEFAULT VALUES
		RETURNING cart_id, created_at
	`

	var cart domain.Cart
	if err := tx.QueryRow(ctx, query).Scan(&cart.ID, &cart.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &cart, nil
}

// InsertItem добавляет позицию с зафиксированной ценой внутри транзакции из контекста.
func (c *CartRepo) InsertItem(ctx context.Context, item *domain.CartItem) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO cart_items (cart_id, product_id, price)
		VALUES ($1, $2, $3)
		RETURNING cart_item_id
	`

	var cartItemID int64
	if err := tx.QueryRow(ctx, query, item.CartID, item.ProductID, item.Price).
		Scan(&cartItemID); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return cartItemID, nil
}

// GetItem перечитывает вставленную позицию с полями продукта внутри транзакции из контекста.
func (c *CartRepo) GetItem(ctx context.Context, cartItemID int64) (*usecase.CartItemInfo, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := cartItemColumns + `WHERE c.cart_item_id = $1`

	var item usecase.CartItemInfo
	if err := tx.QueryRow(ctx, query, cartItemID).Scan(
		&item.CartItemID, &item.Price, &item.ProductID, &item.Image, &item.Name,
		&item.ShortDescription, &item.BandName, &item.Genre, &item.Year,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &item, nil
}

// ListItems возвращает все позиции корзины с полями продукта.
func (c *CartRepo) ListItems(ctx context.Context, cartID int64) ([]usecase.CartItemInfo, error) {
	query := cartItemColumns + `WHERE c.cart_id = $1`

	rows, err := c.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.CartItemInfo, 0)
	for rows.Next() {
		var item usecase.CartItemInfo
		if err := rows.Scan(
			&item.CartItemID, &item.Price, &item.ProductID, &item.Image, &item.Name,
			&item.ShortDescription, &item.BandName, &item.Genre, &item.Year,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
