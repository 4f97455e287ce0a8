package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielnamimi665/barber-shop-web/internal/integrations/identity"
)

type fakeResolver struct {
	ident *identity.Identity
	err   error
	token string
}

func (r *fakeResolver) Resolve(_ context.Context, token string) (*identity.Identity, error) {
	r.token = token
	return r.ident, r.err
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func identityCapture(captured **identity.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ident, ok := GetIdentity(r.Context()); ok {
			*captured = ident
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_HeaderMode(t *testing.T) {
	auth := NewAuth(nil, nopLogger{})

	var captured *identity.Identity
	handler := auth.Middleware(identityCapture(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "u1")
	req.Header.Set("X-Is-Admin", "true")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.UserID)
	assert.True(t, captured.IsAdmin)
}

func TestAuth_HeaderMode_MissingUserID(t *testing.T) {
	auth := NewAuth(nil, nopLogger{})

	var captured *identity.Identity
	handler := auth.Middleware(identityCapture(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestAuth_ResolverMode(t *testing.T) {
	resolver := &fakeResolver{ident: &identity.Identity{UserID: "u2", IsAdmin: false}}
	auth := NewAuth(resolver, nopLogger{})

	var captured *identity.Identity
	handler := auth.Middleware(identityCapture(&captured))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-token", resolver.token)
	require.NotNil(t, captured)
	assert.Equal(t, "u2", captured.UserID)
}

func TestAuth_ResolverMode_Rejections(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		auth := NewAuth(&fakeResolver{}, nopLogger{})
		handler := auth.Middleware(http.NotFoundHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unrecognized token", func(t *testing.T) {
		auth := NewAuth(&fakeResolver{err: identity.ErrUnauthenticated}, nopLogger{})
		handler := auth.Middleware(http.NotFoundHandler())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_AdminOnly(t *testing.T) {
	auth := NewAuth(nil, nopLogger{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := auth.Middleware(auth.AdminOnly(next))

	// Обычный пользователь
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Администратор
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-ID", "admin")
	req.Header.Set("X-Is-Admin", "true")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
