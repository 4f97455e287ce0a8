package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielnamimi665/barber-shop-web/internal/api/handlers"
	"github.com/danielnamimi665/barber-shop-web/internal/integrations/identity"
)

const (
	headerAuthorization = "Authorization"
	headerUserID        = "X-User-ID"
	headerIsAdmin       = "X-Is-Admin"

	msgMissingCredentials = "отсутствуют данные аутентификации"
	msgInvalidToken       = "сессия не распознана"
	msgAdminOnly          = "доступ только для администратора"
)

type contextKey string

const identityContextKey contextKey = "identity"

// IdentityResolver проверяет bearer-токен и возвращает личность пользователя
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*identity.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает личность пользователя и кладет её в контекст запроса.
// При настроенном провайдере проверяется bearer-токен; без провайдера
// (локальная разработка, доверенный reverse proxy) личность берётся из
// заголовков X-User-ID / X-Is-Admin.
type Auth struct {
	resolver IdentityResolver
	logger   Logger
}

// NewAuth создает новый auth middleware
func NewAuth(resolver IdentityResolver, logger Logger) *Auth {
	return &Auth{
		resolver: resolver,
		logger:   logger,
	}
}

// Middleware проверяет аутентификацию запроса
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := a.authenticate(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только администраторов. Вешается поверх Middleware.
func (a *Auth) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := GetIdentity(r.Context())
		if !ok {
			a.logger.Warn("%s %s - Missing identity in context", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingCredentials)
			return
		}

		if !ident.IsAdmin {
			a.logger.Warn("%s %s - User %s is not an admin", r.Method, r.URL.Path, ident.UserID)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (a *Auth) authenticate(w http.ResponseWriter, r *http.Request) (*identity.Identity, bool) {
	if a.resolver == nil {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			a.logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, headerUserID)
			handlers.RespondUnauthorized(w, msgMissingCredentials)
			return nil, false
		}

		return &identity.Identity{
			UserID:  userID,
			IsAdmin: r.Header.Get(headerIsAdmin) == "true",
		}, true
	}

	token := bearerToken(r)
	if token == "" {
		a.logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
		handlers.RespondUnauthorized(w, msgMissingCredentials)
		return nil, false
	}

	ident, err := a.resolver.Resolve(r.Context(), token)
	if err != nil {
		a.logger.Warn("%s %s - Failed to resolve session: %v", r.Method, r.URL.Path, err)
		handlers.RespondUnauthorized(w, msgInvalidToken)
		return nil, false
	}

	return ident, true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(headerAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// GetIdentity извлекает личность пользователя из контекста
func GetIdentity(ctx context.Context) (*identity.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(*identity.Identity)
	return ident, ok
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	ident, ok := GetIdentity(ctx)
	if !ok {
		return "", false
	}
	return ident.UserID, true
}
