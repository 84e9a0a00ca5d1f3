package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/utils"
)

// auth is an HTTP middleware that enforces authentication on the protected
// route group.
//
// Requests are authenticated one of two ways, tried in order:
//
//  1. Session cookie. The cookie value is resolved against the sessions
//     table via [service.AuthService.ResolveSession]; on success both the
//     user id and the session id are stored in the request context, so the
//     logout handler can invalidate the right session.
//  2. Bearer token. The "Authorization" header is parsed and validated via
//     [service.AuthService.ParseToken]; only the user id is stored, since a
//     token carries no server-side session.
//
// Requests carrying neither credential, an unknown or expired session, or an
// invalid token are rejected with HTTP 401 Unauthorized before any handler
// runs. All rejection events are logged using the context-scoped logger
// obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
			session, err := h.services.AuthService.ResolveSession(ctx, cookie.Value)
			if err != nil {
				log.Err(err).Msg("session resolution failed")
				writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, utils.UserIDCtxKey, session.UserID)
			ctx = context.WithValue(ctx, utils.SessionIDCtxKey, session.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrNoCredentialsProvided).Send()
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(errors.Join(ErrInvalidAuthorizationHeader, err)).Send()
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
