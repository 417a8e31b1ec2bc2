package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bio-link/internal/service"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidUsername:         http.StatusBadRequest,
	service.ErrReservedUsername:        http.StatusBadRequest,
	service.ErrInvalidAlias:            http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPageNotFound:            http.StatusNotFound,
	service.ErrPremiumRequired:         http.StatusPaymentRequired,
	service.ErrAliasUnavailable:        http.StatusConflict,

	validators.ErrValidationFailed:    http.StatusBadRequest,
	validators.ErrUnknownSection:      http.StatusBadRequest,
	validators.ErrEmptySectionPayload: http.StatusBadRequest,
	validators.ErrMalformedPayload:    http.StatusBadRequest,
	validators.ErrFieldOutsideSection: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoProfileWasFound:     http.StatusNotFound,
	store.ErrNoTemplateWasFound:    http.StatusNotFound,
	store.ErrConfigNotSaved:        http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps err to an HTTP status and writes a plain-text response.
// Internal errors are masked with the generic status text so that wrapped
// SQL details never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
