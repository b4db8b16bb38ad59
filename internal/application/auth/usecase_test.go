package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonpereira/nexus-crm/internal/application/auth"
	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/domain"
	"github.com/edsonpereira/nexus-crm/internal/infrastructure/storage"
	"github.com/edsonpereira/nexus-crm/pkg/jwt"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

var testJWTCfg = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "nexus-crm"}

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *usecase.NotificationUseCase) {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := storage.New(t.TempDir(), log)
	require.NoError(t, err)
	notifier, err := usecase.NewNotificationUseCase(store, log)
	require.NoError(t, err)
	uc, err := auth.NewAuthUseCase("admin@nexus.com", "nexus123", testJWTCfg, notifier)
	require.NoError(t, err)
	return uc, notifier
}

func TestLogin_CredencialCorrectaEmiteTokenYSaluda(t *testing.T) {
	uc, notifier := newAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@nexus.com", Password: "nexus123"})
	require.NoError(t, err)
	require.NotNil(t, resp)

	email, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@nexus.com", email)

	notifs := notifier.List()
	require.NotEmpty(t, notifs)
	assert.Equal(t, "Bem-vindo ao Nexus CRM!", notifs[0].Message)
}

func TestLogin_EmailIgnoraCapitalizacion(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "Admin@Nexus.com", Password: "nexus123"})
	assert.NoError(t, err)
}

func TestLogin_CredencialIncorrecta(t *testing.T) {
	uc, notifier := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "admin@nexus.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "otro@nexus.com", Password: "nexus123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.Empty(t, notifier.List())
}

func TestNewAuthUseCase_CredencialVaciaEsError(t *testing.T) {
	_, err := auth.NewAuthUseCase("", "nexus123", testJWTCfg, nil)
	assert.Error(t, err)
	_, err = auth.NewAuthUseCase("admin@nexus.com", "", testJWTCfg, nil)
	assert.Error(t, err)
}
