package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_FromFlags(t *testing.T) {
	cfg, err := getClientConfig([]string{
		"-a", "localhost:8080",
		"-email", "a@b.com",
		"-password", "secret",
		"-name", "Alice",
		"-register",
		"-profile",
		"-copy",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "a@b.com", cfg.Email)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "Alice", cfg.Name)
	assert.True(t, cfg.Register)
	assert.True(t, cfg.Profile)
	assert.True(t, cfg.CopyToken)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	t.Setenv("AUTH_CLIENT_SERVER_ADDRESS", "http://auth.local")
	t.Setenv("AUTH_CLIENT_REQUEST_TIMEOUT", "3s")
	t.Setenv("AUTH_CLIENT_EMAIL", "env@b.com")
	t.Setenv("AUTH_CLIENT_PASSWORD", "env-secret")

	cfg, err := getClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "http://auth.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "env@b.com", cfg.Email)
	assert.Equal(t, "env-secret", cfg.Password)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("AUTH_CLIENT_SERVER_ADDRESS", "http://auth.local")
	t.Setenv("AUTH_CLIENT_EMAIL", "env@b.com")
	t.Setenv("AUTH_CLIENT_PASSWORD", "env-secret")

	cfg, err := getClientConfig([]string{"-email", "flag@b.com"})

	require.NoError(t, err)
	assert.Equal(t, "flag@b.com", cfg.Email)
	assert.Equal(t, "env-secret", cfg.Password)
}

func TestGetClientConfig_MissingAddress(t *testing.T) {
	_, err := getClientConfig([]string{"-email", "a@b.com", "-password", "x"})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestGetClientConfig_MissingCredentials(t *testing.T) {
	_, err := getClientConfig([]string{"-a", "localhost:8080", "-email", "a@b.com"})
	assert.ErrorIs(t, err, ErrInvalidClientCredentials)
}
