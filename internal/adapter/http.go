package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST [ServerAdapter] for cfg.HTTPAddress,
// which may be a bare host:port or a full URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, registration models.Registration) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/register", registration)
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/user/login", credentials)
}

// authenticate posts body to path and stores the issued token. The
// Authorization header wins over the body token when both are present.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var authResponse models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&authResponse).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	token := authResponse.ServiceToken
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err = utils.ParseBearerToken(header); err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}
	if token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: %w", path, ErrNoToken)
	}

	h.SetToken(token)
	authResponse.ServiceToken = token

	h.logger.Debug().Str("path", path).Int64("id", authResponse.User.UserID).Msg("authenticated")
	return authResponse, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.PublicUser, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.PublicUser{}, err
	}

	var user models.PublicUser
	resp, err := req.SetResult(&user).Get("/api/user/profile")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
