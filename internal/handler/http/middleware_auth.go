package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

// auth resolves the caller from a bearer access token and stores the user id
// under [utils.UserIDCtxKey]. Websocket clients that cannot set headers may
// pass the token as the access_token query parameter instead.
//
// Every failure answers 401. Refresh tokens are rejected by ParseToken.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("request without usable credentials")
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			msg := http.StatusText(http.StatusUnauthorized)
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				msg = service.ErrTokenIsExpiredOrInvalid.Error()
			}
			http.Error(w, msg, http.StatusUnauthorized)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", token.UserID)
		})

		ctx = utils.WithUserID(ctx, token.UserID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
	})
}

func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		return getTokenFromAuthHeader(header)
	}
	if token := r.URL.Query().Get(accessTokenParam); token != "" {
		return token, nil
	}
	return "", ErrEmptyAuthorizationHeader
}

const accessTokenParam = "access_token"

// getTokenFromAuthHeader parses "Bearer <token>". The scheme is matched
// case-insensitively and blanks around the token are ignored.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimLeft(authHeader, " "), " ")
	if !found {
		return "", ErrInvalidAuthorizationHeader
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrUnsupportedAuthScheme
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
