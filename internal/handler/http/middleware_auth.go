// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/internal/utils"
	"github.com/rmachado/go-auth-api/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication on
// protected routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.AuthService.ParseToken], and on success
// stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// The middleware short-circuits the request in two distinct ways:
//   - 401 Unauthorized when the header is absent or carries no token
//     segment (the caller never presented a credential).
//   - 400 Bad Request when a token is present but fails verification
//     (tampered signature, wrong issuer, malformed string).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Msg: msgAccessDenied}, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Msg: msgAccessDenied}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgInvalidToken}, http.StatusBadRequest)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
