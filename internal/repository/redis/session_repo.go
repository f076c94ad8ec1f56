package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
	"github.com/vinylcrate/go-backend/internal/cfg"
	"github.com/vinylcrate/go-backend/pkg/clients"
	"github.com/vinylcrate/go-backend/pkg/e"
	"github.com/vinylcrate/go-backend/pkg/logger"
)

// SessionRepo хранит привязку сессионного токена к корзине в Redis.
// Одна сессия — не более одной активной корзины.
type SessionRepo struct {
	client *clients.RedisClient
	cfg    *cfg.SessionCfg
	logger logger.Logger
}

func NewSessionRepo(client *clients.RedisClient, cfg *cfg.SessionCfg, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCartID возвращает корзину сессии. Отсутствие записи — не ошибка.
func (s *SessionRepo) GetCartID(ctx context.Context, token string) (int64, bool, error) {
	value, err := s.client.Client.Get(ctx, s.sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return 0, false, nil
		}

		return 0, false, e.Wrap(whereami.WhereAmI(), err)
	}

	cartID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// Повреждённая запись бесполезна, убираем её и считаем сессию пустой
		s.logger.Warnf("Corrupted session value for key %s: %v", s.sessionKey(token), err)
		if delErr := s.client.Client.Del(ctx, s.sessionKey(token)).Err(); delErr != nil {
			s.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}
		return 0, false, nil
	}

	return cartID, true, nil
}

// SetCartID привязывает корзину к сессии, продлевая TTL записи.
func (s *SessionRepo) SetCartID(ctx context.Context, token string, cartID int64) error {
	key := s.sessionKey(token)
	value := strconv.FormatInt(cartID, 10)

	if err := s.client.Client.Set(ctx, key, value, s.cfg.TTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ClearCartID отвязывает корзину от сессии.
func (s *SessionRepo) ClearCartID(ctx context.Context, token string) error {
	if err := s.client.Client.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// sessionKey возвращает Redis-ключ записи сессии
func (s *SessionRepo) sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
