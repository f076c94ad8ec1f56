package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/vinylcrate/go-backend/pkg/e"
)

// HealthRepo проверяет связь с PostgreSQL.
type HealthRepo struct {
	pool *pgxpool.Pool
}

func NewHealthRepo(pool *pgxpool.Pool) *HealthRepo {
	return &HealthRepo{pool: pool}
}

func (h *HealthRepo) Check(ctx context.Context) (string, error) {
	query := `SELECT 'successfully connected' AS message`

	var message string
	if err := h.pool.QueryRow(ctx, query).Scan(&message); err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return message, nil
}
