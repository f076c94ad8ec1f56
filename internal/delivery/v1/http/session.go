package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vinylcrate/go-backend/internal/cfg"
	"github.com/vinylcrate/go-backend/pkg/e"
)

// SessionManager выдаёт и проверяет подписанный сессионный токен в cookie.
// Сам токен непрозрачен; состояние сессии живёт в Redis.
type SessionManager struct {
	cfg *cfg.SessionCfg
}

func NewSessionManager(cfg *cfg.SessionCfg) *SessionManager {
	return &SessionManager{cfg: cfg}
}

// Middleware кладёт токен сессии в контекст запроса.
// Отсутствующая или подделанная cookie прозрачно заменяется новой сессией.
func (m *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := m.tokenFromCookie(r)
		if !ok {
			token = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     m.cfg.CookieName,
				Value:    token + "." + m.sign(token),
				Path:     "/",
				MaxAge:   int(m.cfg.TTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), "session_token", token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromCtx извлекает токен сессии из контекста запроса
func TokenFromCtx(ctx context.Context) (string, error) {
	tokenAny := ctx.Value("session_token")
	token, ok := tokenAny.(string)
	if !ok {
		return "", e.ErrSessionTokenNotFound
	}
	return token, nil
}

// tokenFromCookie возвращает токен из cookie, если подпись сходится.
func (m *SessionManager) tokenFromCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return "", false
	}

	token, signature, found := strings.Cut(cookie.Value, ".")
	if !found || token == "" {
		return "", false
	}

	if !hmac.Equal([]byte(signature), []byte(m.sign(token))) {
		return "", false
	}

	return token, true
}

// sign возвращает HMAC-SHA256 подпись токена в base64.
func (m *SessionManager) sign(token string) string {
	mac := hmac.New(sha256.New, []byte(m.cfg.Secret))
	mac.Write([]byte(token))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
