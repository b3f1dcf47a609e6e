package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mkessler/taskhub-api/internal/api/shared"
	"github.com/mkessler/taskhub-api/internal/platform/logger"
	"github.com/mkessler/taskhub-api/internal/redact"
	"github.com/mkessler/taskhub-api/internal/service/auth"
	"github.com/mkessler/taskhub-api/internal/store"
)

// AuthMiddleware provides JWT authentication for routes.
// Beyond verifying the token's signature and expiry, it resolves the
// embedded user ID to a live user record, so a token issued for a user
// that no longer exists stops working immediately.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates JWT tokens from the Authorization header, resolves
// the token's user, and adds the user ID to the request context for
// authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token := parts[1]

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				log.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		// The token may outlive its user; check the account still exists.
		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Debug("token references a user that no longer exists",
					"user_id", claims.UserID)
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			log.Error("failed to resolve token user", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := shared.WithUserID(r.Context(), user.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (int64, bool) {
	return shared.UserID(r.Context())
}
