package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/minhng-dev/taskblog/internal/apperr"
	"github.com/minhng-dev/taskblog/internal/logger"
	"github.com/minhng-dev/taskblog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via the auth service, and on success stores the authenticated
// user's ID and role in the request context under [utils.UserIDCtxKey] and
// [utils.UserRoleCtxKey] before delegating to the next handler.
//
// Rejections are rendered as 401 failure envelopes:
//   - The "Authorization" header is absent.
//   - The header value cannot be parsed as a bearer token.
//   - The token is expired, forged, or carries the wrong issuer.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Msg("missing Authorization header")
			renderError(w, r, apperr.New(apperr.Unauthorized, "Authorization header is required."))
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed Authorization header")
			renderError(w, r, apperr.Wrap(apperr.Unauthorized, "Invalid authorization header.", err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			renderError(w, r, err)
			return
		}

		// Store the authenticated user's identity in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		ctx = context.WithValue(ctx, utils.UserRoleCtxKey, token.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
