package service

import (
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))

	services, err := NewServices(repo, testAppConfig(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.AuthService)
	require.NotNil(t, services.AppInfoService)
	assert.IsType(t, &AuthValidationService{}, services.AuthService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	repo := mock.NewMockUserRepository(gomock.NewController(t))

	_, err := NewServices(repo, config.App{TokenSignKey: "k"}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
