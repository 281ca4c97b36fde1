package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-atlas/internal/jwt"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/logger"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionLoader builds the session of a user id.
type SessionLoader interface {
	SessionFor(ctx context.Context, userID string) (models.AuthState, error)
}

type sessionKey struct{}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, session models.AuthState) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session of the request, logged out when none is set.
func SessionFromContext(ctx context.Context) models.AuthState {
	session, ok := ctx.Value(sessionKey{}).(models.AuthState)
	if !ok {
		return models.LoggedOut()
	}
	return session
}

// SessionMiddleware resolves the bearer token into a session and stores it in
// the request context. Requests without a usable token continue logged out.
func SessionMiddleware(tokener Tokener, sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			session := models.LoggedOut()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			switch {
			case errors.Is(err, jwt.ErrMissingAuthHeader):
			case err != nil:
				logger.Log.Warnw("ignoring malformed authorization header", "err", err)
			default:
				claims, err := tokener.GetClaims(ctx, tokenString)
				if err != nil {
					logger.Log.Warnw("ignoring invalid token", "err", err)
					break
				}
				session, err = sessions.SessionFor(ctx, claims.UserID)
				if err != nil {
					logger.Log.Errorw("failed to load session", "user_id", claims.UserID, "err", err)
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

// RequireUser rejects requests without an authenticated session.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()).IsUser() {
			logger.Log.Infow("authorization failed", "uri", r.RequestURI)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose session is not an administrator.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := SessionFromContext(r.Context())
		if !session.IsUser() {
			logger.Log.Infow("authorization failed", "uri", r.RequestURI)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !session.IsAdmin() {
			logger.Log.Infow("admin role required", "user_id", session.UserID(), "uri", r.RequestURI)
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
