package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSessionMiddleware(t *testing.T, m *SessionManager, cookie *http.Cookie) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var gotToken string
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := TokenFromCtx(r.Context())
		require.NoError(t, err)
		gotToken = token
	}))

	req := httptest.NewRequest("GET", "/api/cart", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return gotToken, rec
}

func TestSessionMiddleware_IssuesCookieForNewVisitor(t *testing.T) {
	m := NewSessionManager(testSessionCfg())

	token, rec := runSessionMiddleware(t, m, nil)

	require.NotEmpty(t, token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.Equal(t, token+"."+m.sign(token), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_KeepsValidCookie(t *testing.T) {
	m := NewSessionManager(testSessionCfg())

	cookie := &http.Cookie{
		Name:  "session_token",
		Value: "visitor-1." + m.sign("visitor-1"),
	}

	token, rec := runSessionMiddleware(t, m, cookie)

	assert.Equal(t, "visitor-1", token)
	assert.Empty(t, rec.Result().Cookies(), "valid cookie must not be reissued")
}

func TestSessionMiddleware_RejectsTamperedSignature(t *testing.T) {
	m := NewSessionManager(testSessionCfg())

	cookie := &http.Cookie{
		Name:  "session_token",
		Value: "visitor-1.forged-signature",
	}

	token, rec := runSessionMiddleware(t, m, cookie)

	require.NotEmpty(t, token)
	assert.NotEqual(t, "visitor-1", token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1, "tampered cookie must be replaced")
}

func TestSessionMiddleware_RejectsCookieWithoutSignature(t *testing.T) {
	m := NewSessionManager(testSessionCfg())

	token, _ := runSessionMiddleware(t, m, &http.Cookie{Name: "session_token", Value: "visitor-1"})

	require.NotEmpty(t, token)
	assert.NotEqual(t, "visitor-1", token)
}

func TestTokenFromCtx_MissingToken(t *testing.T) {
	_, err := TokenFromCtx(context.Background())
	require.Error(t, err)
}
