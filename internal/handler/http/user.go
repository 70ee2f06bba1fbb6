package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/internal/store"
	"github.com/rmachado/go-auth-api/internal/utils"
	"github.com/rmachado/go-auth-api/models"
)

// root is the public liveness endpoint.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Msg: msgAppRunning}, http.StatusOK)
}

// getUser serves the protected profile endpoint.
//
// The user is resolved from the {id} path parameter, not from the verified
// token claims: any authenticated caller may fetch any profile. This
// mirrors the API contract as shipped; do not tighten it to self-only
// access without coordinating a contract change with the clients.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	foundUser, err := h.services.UserService.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("id", id).Msg("user not found")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgProfileNotFound}, http.StatusNotFound)
			return
		}

		log.Err(err).Str("id", id).Msg("unexpected error occurred during user lookup")
		utils.WriteJSON(w, models.MessageResponse{Msg: msgServerError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UserResponse{User: foundUser}, http.StatusOK)
}
