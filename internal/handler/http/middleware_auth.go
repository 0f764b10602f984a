package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

// auth rejects requests without a valid "Authorization: Bearer <token>"
// header with 401. On success the token claims are stored in the request
// context for [utils.GetUserIDFromContext].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, token.Claims)))
	})
}
