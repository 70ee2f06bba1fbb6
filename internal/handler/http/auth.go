package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rmachado/go-auth-api/internal/logger"
	"github.com/rmachado/go-auth-api/internal/service"
	"github.com/rmachado/go-auth-api/internal/store"
	"github.com/rmachado/go-auth-api/internal/utils"
	"github.com/rmachado/go-auth-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Msg: msgServerError}, http.StatusBadRequest)
		return
	}

	// Field validation order is part of the API contract: the first
	// failing check wins and each failure is reported distinctly.
	if msg, ok := validateRegisterPayload(payload); !ok {
		log.Warn().Str("email", payload.Email).Str("reason", msg).Msg("registration payload rejected")
		utils.WriteJSON(w, models.MessageResponse{Msg: msg}, http.StatusUnprocessableEntity)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, payload.Name, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Warn().Str("email", payload.Email).Msg("email already taken")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgEmailTaken}, http.StatusUnprocessableEntity)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgServerError}, http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgRegisterFailed}, http.StatusInternalServerError)
			return
		}
	}

	// No token is issued at registration; the client must log in.
	utils.WriteJSON(w, models.MessageResponse{Msg: msgUserCreated}, http.StatusOK)
}

// validateRegisterPayload applies the registration field checks in contract
// order and returns the client-facing message of the first failure.
func validateRegisterPayload(payload models.RegisterRequest) (string, bool) {
	switch {
	case payload.Name == "":
		return msgMissingName, false
	case payload.Email == "":
		return msgMissingEmail, false
	case payload.Password == "":
		return msgMissingPassword, false
	case payload.Password != payload.ConfirmPassword:
		return msgPasswordsDiffer, false
	}

	return "", true
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Msg: msgServerError}, http.StatusBadRequest)
		return
	}

	if payload.Email == "" {
		utils.WriteJSON(w, models.MessageResponse{Msg: msgMissingEmail}, http.StatusUnprocessableEntity)
		return
	}
	if payload.Password == "" {
		utils.WriteJSON(w, models.MessageResponse{Msg: msgMissingPassword}, http.StatusUnprocessableEntity)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Str("email", payload.Email).Msg("no user was found")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgUserNotFound}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Warn().Str("email", payload.Email).Msg("wrong password")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgWrongPassword}, http.StatusUnprocessableEntity)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.MessageResponse{Msg: msgServerError}, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.ID).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Msg: msgServerError}, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Msg: msgLoginOK, Token: token.SignedString}, http.StatusOK)
}
