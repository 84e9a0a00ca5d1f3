package http

import (
	"errors"
	"net/http"

	"github.com/invoicerd/invoicer/internal/service"
	"github.com/invoicerd/invoicer/internal/store"
	"github.com/invoicerd/invoicer/internal/utils"
	"github.com/invoicerd/invoicer/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrSessionExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	// an authenticated request for an account that no longer exists means
	// the credential is stale, not that a resource is missing
	store.ErrNoUserWasFound:  http.StatusUnauthorized,
	store.ErrSessionNotFound: http.StatusUnauthorized,
	store.ErrInvoiceNotSaved: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends a JSON error body with the given status. The message is
// what the client sees; internal error detail stays in the logs.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
