package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/averyhale/socialnet/internal/domain"
	"github.com/averyhale/socialnet/internal/service"
)

type contextKey string

const accountKey contextKey = "account"

// Auth validates the bearer token and resolves the live account before the
// request proceeds. Tokens are stateless and never revoked, so the account
// lookup here is the only thing that stops a token issued before deletion.
func Auth(svcs *service.Services) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				log.Printf("ERROR [middleware.Auth] missing token")
				http.Error(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			accountID, err := svcs.Token.Validate(raw)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token validation failed: %v", err)
				if errors.Is(err, domain.ErrTokenExpired) {
					http.Error(w, "Token expired", http.StatusUnauthorized)
				} else {
					http.Error(w, "Invalid token", http.StatusUnauthorized)
				}
				return
			}

			account, err := svcs.Account.GetByID(r.Context(), accountID)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] account lookup failed: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers the Authorization header, falling back to the token
// query parameter.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

// CurrentAccount returns the authenticated account placed in the context by
// Auth.
func CurrentAccount(ctx context.Context) (*domain.Account, bool) {
	account, ok := ctx.Value(accountKey).(*domain.Account)
	return account, ok
}
