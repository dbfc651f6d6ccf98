package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-shopcart/models"
	"go-shopcart/stores"
	"go-shopcart/utils"
)

// Key type for context
type contextKey string

const (
	// ClaimsContextKey holds the decoded token claims
	ClaimsContextKey = contextKey("claims")
	// UserContextKey holds the hydrated user record
	UserContextKey = contextKey("user")
)

// ClaimsFrom extracts decoded claims attached by Authenticate
func ClaimsFrom(ctx context.Context) (*utils.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*utils.Claims)
	return claims, ok
}

// UserFrom extracts the user record attached by LoadUser
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserContextKey).(models.User)
	return user, ok
}

// Auth holds the collaborators of the authentication pipeline. The
// signing secret and user storage are injected at construction.
type Auth struct {
	Tokens *utils.TokenService
	Users  stores.UserStore
}

// NewAuth creates the auth middleware set
func NewAuth(tokens *utils.TokenService, users stores.UserStore) *Auth {
	return &Auth{Tokens: tokens, Users: users}
}

// Authenticate verifies the bearer token and attaches the decoded
// claims to the request context
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteError(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		claims, err := a.Tokens.Verify(parts[1])
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoadUser fetches the current user record for the authenticated
// subject and attaches it to the context. The stored record takes
// precedence over the token claims, so a deleted account invalidates
// the request even while its token is still cryptographically valid.
func (a *Auth) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok {
			utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		id, err := claims.SubjectID()
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		user, err := a.Users.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, stores.ErrUserNotFound) {
				utils.WriteError(w, http.StatusNotFound, "User not found")
				return
			}
			utils.WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		user.Password = ""

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole admits users whose role is any one of the listed roles.
// It must run after LoadUser; a missing user is treated as an
// authentication failure, not a role mismatch.
func (a *Auth) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.WriteError(w, http.StatusForbidden, "Access denied. Insufficient permissions")
		})
	}
}
