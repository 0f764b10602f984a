package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

type errorStatus struct {
	status int
	reason string
}

var errorStatusMap = map[error]errorStatus{
	ErrInvalidJSON:                     {http.StatusBadRequest, reasonInvalidRequest},
	ErrInvalidGzipBody:                 {http.StatusBadRequest, reasonInvalidRequest},
	ErrEmptyAuthorizationHeader:        {http.StatusUnauthorized, reasonInvalidToken},
	ErrInvalidAuthorizationHeader:      {http.StatusUnauthorized, reasonInvalidToken},
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, reasonInvalidRequest},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, reasonInvalidCredentials},
	service.ErrTokenIsExpired:          {http.StatusUnauthorized, reasonInvalidToken},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, reasonInvalidToken},

	store.ErrEmailAlreadyExists: {http.StatusConflict, reasonEmailTaken},
	store.ErrNoUserWasFound:     {http.StatusNotFound, reasonNotFound},
}

// statusFromError returns the HTTP status and reason for err. Unknown errors
// are internal errors.
func statusFromError(err error) (int, string) {
	for target, s := range errorStatusMap {
		if errors.Is(err, target) {
			return s.status, s.reason
		}
	}
	return http.StatusInternalServerError, reasonInternal
}

// writeError maps err to a JSON error response. Client errors carry the
// error text; server errors only the status text, the cause is logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, reason := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = http.StatusText(status)
	} else {
		logger.FromRequest(r).Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, reason, message)
}
