package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var registration models.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.AuthService.Register(r.Context(), registration)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAuthResponse(w, r, result, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !result.OK() {
		log.Info().Str("outcome", result.Outcome.String()).Msg("login rejected")

		message := service.ErrInvalidCredentials.Error()
		if h.options.RevealCredentialErrors {
			message = result.Err().Error()
		}
		utils.WriteError(w, http.StatusUnauthorized, reasonInvalidCredentials, message)
		return
	}

	log.Debug().Int64("id", result.User.UserID).Msg("user successfully logged in")
	writeAuthResponse(w, r, result, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.AuthService.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// writeAuthResponse sends the session token in both the Authorization header
// and the body. The user is always scrubbed to its public view.
func writeAuthResponse(w http.ResponseWriter, r *http.Request, result service.LoginResult, status int) {
	w.Header().Set("Authorization", "Bearer "+result.Token.SignedString)

	response := models.AuthResponse{
		ServiceToken: result.Token.SignedString,
		User:         result.User.Public(),
	}
	if _, err := utils.WriteJSON(w, response, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing auth response")
	}
}
