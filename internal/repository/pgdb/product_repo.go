package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/vinylcrate/go-backend/internal/domain"
	"github.com/vinylcrate/go-backend/internal/repository/pgdb/converter"
	"github.com/vinylcrate/go-backend/internal/usecase"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/tr"
)

// ProductRepo реализует репозиторий каталога поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает публичные поля всех продуктов каталога.
func (p *ProductRepo) List(ctx context.Context) ([]usecase.ProductSummary, error) {
	query := `
		SELECT product_id, name, price, image, short_description, band_name
		FROM products
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductSummary, 0)
	for rows.Next() {
		var product usecase.ProductSummary
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Price,
			&product.Image, &product.ShortDescription, &product.BandName,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetByID возвращает полную запись продукта.
// Отсутствие строки приходит как обёрнутый pgx.ErrNoRows.
func (p *ProductRepo) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `
		SELECT product_id, name, price, image, short_description,
		       long_description, band_name, genre, year, created_at
		FROM products
		WHERE product_id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, productID).Scan(
		&model.ID, &model.Name, &model.Price, &model.Image, &model.ShortDescription,
		&model.LongDescription, &model.BandName, &model.Genre, &model.Year, &model.CreatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetPrice читает цену продукта внутри транзакции из контекста.
// Отсутствие строки приходит как обёрнутый pgx.ErrNoRows.
func (p *ProductRepo) GetPrice(ctx context.Context, productID int64) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		SELECT price
		FROM products
		WHERE product_id = $1
	`

	var price int64
	if err := tx.QueryRow(ctx, query, productID).Scan(&price); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return price, nil
}
