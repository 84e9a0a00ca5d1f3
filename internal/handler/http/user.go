package http

import (
	"net/http"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/utils"
	"github.com/invoicerd/invoicer/models"
)

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("current user lookup failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CurrentUserResponse{Email: user.Email}, http.StatusOK)
}
