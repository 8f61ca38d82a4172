// Package middleware holds the HTTP cross-cutting concerns: the three
// authorization tiers, request logging and panic recovery.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tigerbridge/tigerbridge/internal/domain"
	"github.com/tigerbridge/tigerbridge/pkg/auth"
	"github.com/tigerbridge/tigerbridge/pkg/response"
)

type contextKey string

const userKey contextKey = "user"

// UserSource resolves a token subject to a stored user.
type UserSource interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Auth struct {
	jwtService auth.JWTServiceInterface
	users      UserSource
}

func NewAuth(jwtService auth.JWTServiceInterface, users UserSource) *Auth {
	return &Auth{jwtService: jwtService, users: users}
}

// UserFromContext returns the user placed there by Authenticate.
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

// Authenticate is the first tier: a valid bearer token whose subject is
// a known user. Any failure is a plain 401; the reason is not leaked.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := a.jwtService.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		user, err := a.users.FindByEmail(r.Context(), claims.Email)
		if err != nil {
			response.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			response.Error(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireActive is the second tier. An authenticated but not yet
// activated account gets 403, which is deliberately distinct from the
// 401 of a bad token.
func (a *Auth) RequireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			response.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !user.IsActive {
			response.Error(w, http.StatusForbidden, "Inactive user. Contact administrator.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperuser is the third tier, for the administrative surface.
func (a *Auth) RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			response.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		if !user.IsSuperuser {
			response.Error(w, http.StatusForbidden, "Superuser privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
