package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmachado/go-auth-api/internal/service"
	"github.com/rmachado/go-auth-api/internal/utils"
	"github.com/rmachado/go-auth-api/models"
)

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

// nextSpy records whether the wrapped handler was invoked and with what
// context value.
type nextSpy struct {
	called bool
	userID string
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, _ = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/user-1", nil)
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Acesso Negado.", decodeMsg(t, rec))
	assert.False(t, spy.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"scheme only", "Bearer"},
		{"empty token segment", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{}, nil)
			spy := &nextSpy{}

			req := httptest.NewRequest(http.MethodGet, "/user/user-1", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			h.auth(spy.handler()).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Acesso Negado.", decodeMsg(t, rec))
			assert.False(t, spy.called)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	h := newTestHandler(t, auth, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/user-1", nil)
	req.Header.Set("Authorization", "Bearer tampered.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Token Inválido", decodeMsg(t, rec))
	assert.False(t, spy.called)
}

// TestAuthMiddleware_TrailingJunkAfterToken pins that extra segments after
// the token do not short-circuit with 401: the first segment is handed to
// verification, so a bad one answers 400 like any other invalid token.
func TestAuthMiddleware_TrailingJunkAfterToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "abc", tokenString)
			return models.Token{}, service.ErrTokenIsInvalid
		},
	}
	h := newTestHandler(t, auth, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/user-1", nil)
	req.Header.Set("Authorization", "Bearer abc def")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Token Inválido", decodeMsg(t, rec))
	assert.False(t, spy.called)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "good.jwt.token", tokenString)
			return models.Token{UserID: "user-1", SignedString: tokenString}, nil
		},
	}
	h := newTestHandler(t, auth, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/user/user-1", nil)
	req.Header.Set("Authorization", "Bearer good.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	assert.Equal(t, "user-1", spy.userID)
}
