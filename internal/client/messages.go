package client

import (
	"errors"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
)

// Human-readable descriptions of adapter failures.
const (
	MsgInvalidCredentials = "login failed: invalid email or password"
	MsgEmailTaken         = "registration failed: this email is already registered"
	MsgInvalidData        = "request rejected: check the email and password (8 to 72 bytes)"
	MsgSessionExpired     = "session expired or invalid: log in again"
	MsgServerUnavailable  = "server is unavailable, try again later"
	MsgInternalError      = "server error, try again later"
)

var adapterMessages = []struct {
	err error
	msg string
}{
	{adapter.ErrConflict, MsgEmailTaken},
	{adapter.ErrBadRequest, MsgInvalidData},
	{adapter.ErrNoToken, MsgSessionExpired},
	{adapter.ErrServiceUnavailable, MsgServerUnavailable},
	{adapter.ErrBadGateway, MsgServerUnavailable},
	{adapter.ErrInternalServerError, MsgInternalError},
}

// describe returns the message for a known adapter error followed by the
// server's detail, or err's own text. onUnauthorized describes a 401, which
// means bad credentials on login and a stale token elsewhere.
func describe(err error, onUnauthorized string) string {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return onUnauthorized + " (" + err.Error() + ")"
	}
	for _, m := range adapterMessages {
		if errors.Is(err, m.err) {
			return m.msg + " (" + err.Error() + ")"
		}
	}
	return err.Error()
}
