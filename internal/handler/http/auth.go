package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// register creates an account and answers with its first token pair.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg(app.MsgInvalidDataProvided)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg(app.MsgUserAlreadyExists)
			http.Error(w, app.MsgUserAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	pair, err := h.services.AuthService.CreateTokens(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// refreshToken exchanges a refresh token for a new token pair.
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Err(err).Msg("token refresh failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// me returns the authenticated user.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.me").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.me").Msg("error getting user")
		http.Error(w, "error getting user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
