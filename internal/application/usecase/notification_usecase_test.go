package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/internal/infrastructure/storage"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

func newNotifier(t *testing.T) (*usecase.NotificationUseCase, string) {
	t.Helper()
	dir := t.TempDir()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := storage.New(dir, log)
	require.NoError(t, err)
	notifier, err := usecase.NewNotificationUseCase(store, log)
	require.NoError(t, err)
	return notifier, dir
}

func TestAppend_AnteponeConIDYTimestamp(t *testing.T) {
	notifier, _ := newNotifier(t)

	notifier.Append("primera", entity.NotifInfo)
	notifier.Append("segunda", entity.NotifSuccess)

	list := notifier.List()
	require.Len(t, list, 2)
	assert.Equal(t, "segunda", list[0].Message)
	assert.Equal(t, "primera", list[1].Message)
	assert.NotEmpty(t, list[0].ID)
	assert.NotEqual(t, list[0].ID, list[1].ID)
	assert.False(t, list[0].Timestamp.IsZero())
	assert.False(t, list[0].Read)
}

func TestAppend_RecortaALasCincuentaMasRecientes(t *testing.T) {
	notifier, _ := newNotifier(t)

	for i := 0; i < 51; i++ {
		notifier.Append(fmt.Sprintf("mensaje %d", i), entity.NotifInfo)
	}

	list := notifier.List()
	require.Len(t, list, 50)
	// La más reciente primero; la número 0 fue descartada
	assert.Equal(t, "mensaje 50", list[0].Message)
	assert.Equal(t, "mensaje 1", list[49].Message)
}

func TestClear_VaciaYPersiste(t *testing.T) {
	notifier, dir := newNotifier(t)

	notifier.Append("algo", entity.NotifWarning)
	require.NoError(t, notifier.Clear())
	assert.Empty(t, notifier.List())

	// Reabrir confirma que el vaciado quedó en disco
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := storage.New(dir, log)
	require.NoError(t, err)
	reopened, err := usecase.NewNotificationUseCase(store, log)
	require.NoError(t, err)
	assert.Empty(t, reopened.List())
}

func TestNotificaciones_SobrevivenUnReinicio(t *testing.T) {
	notifier, dir := newNotifier(t)

	notifier.Append("persistida", entity.NotifSuccess)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := storage.New(dir, log)
	require.NoError(t, err)
	reopened, err := usecase.NewNotificationUseCase(store, log)
	require.NoError(t, err)

	list := reopened.List()
	require.Len(t, list, 1)
	assert.Equal(t, "persistida", list[0].Message)
	assert.Equal(t, entity.NotifSuccess, list[0].Type)
}
