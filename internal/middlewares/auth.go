package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-currency-exchange/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetPlayerID(ctx context.Context, tokenString string) (string, error)
}

type playerKey struct{}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores the authenticated player id in the request context
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			playerID, err := tokener.GetPlayerID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPlayerID(ctx, playerID)))
		})
	}
}

// WithPlayerID stores an authenticated player id in the context
func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, playerKey{}, playerID)
}

// PlayerIDFromContext returns the authenticated player id, if any
func PlayerIDFromContext(ctx context.Context) (string, bool) {
	playerID, ok := ctx.Value(playerKey{}).(string)
	return playerID, ok && playerID != ""
}
