package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/internal/infrastructure/storage"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

func newStore(t *testing.T) (*storage.FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	store, err := storage.New(dir, log)
	require.NoError(t, err)
	return store, dir
}

func TestLoad_SinArchivoDevuelveVacio(t *testing.T) {
	store, _ := newStore(t)

	customers, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, customers)

	notifications, err := store.LoadNotifications()
	require.NoError(t, err)
	assert.Empty(t, notifications)

	cfg, err := store.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, entity.CRMConfig{}, cfg)
}

func TestLoad_BlobCorruptoSeTrataComoVacio(t *testing.T) {
	store, dir := newStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.json"), []byte("{no es json"), 0o644))

	customers, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestLoad_BlobConTiposInvalidosSeTrataComoVacio(t *testing.T) {
	store, dir := newStore(t)

	// Sintaxis válida pero tipos incorrectos: Unmarshal falla a mitad de la
	// colección y no debe quedar ningún registro parcial
	blob := []byte(`[{"id":"c-1","name":"Ana"},{"id":"c-2","name":12345}]`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.json"), blob, 0o644))

	customers, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestSaveLoad_RoundTripDeClientes(t *testing.T) {
	store, _ := newStore(t)

	in := []entity.Customer{
		{
			ID:     "c-1",
			Name:   "Ana Silva",
			Phone:  "11999990000",
			Email:  "ana@example.com",
			Value:  decimal.NewFromInt(100),
			Date:   "2024-01-01",
			Status: entity.StatusActive,
			Notes:  "contrato anual",
		},
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].ID, out[0].ID)
	assert.Equal(t, in[0].Name, out[0].Name)
	assert.True(t, in[0].Value.Equal(out[0].Value))
	assert.Equal(t, in[0].Status, out[0].Status)
}

func TestSaveLoad_RoundTripDeNotificaciones(t *testing.T) {
	store, _ := newStore(t)

	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	in := []entity.Notification{{ID: "n-1", Message: "hola", Timestamp: ts, Type: entity.NotifInfo}}
	require.NoError(t, store.SaveNotifications(in))

	out, err := store.LoadNotifications()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "hola", out[0].Message)
	assert.True(t, ts.Equal(out[0].Timestamp))
}

func TestSaveLoad_RoundTripDeConfig(t *testing.T) {
	store, _ := newStore(t)

	in := entity.CRMConfig{WebhookURL: "https://hooks.example.com", CompanyName: "Nexus Global"}
	require.NoError(t, store.SaveConfig(in))

	out, err := store.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveLoad_ReguardarLoLeidoEsIdentico(t *testing.T) {
	store, dir := newStore(t)

	in := []entity.Customer{
		{
			ID:     "c-1",
			Name:   "Ana Silva",
			Phone:  "11999990000",
			Value:  decimal.NewFromInt(100),
			Date:   "2024-01-01",
			Status: entity.StatusActive,
		},
		{
			ID:     "c-2",
			Name:   "Bruno Costa",
			Phone:  "21988880000",
			Value:  decimal.RequireFromString("1234.56"),
			Date:   "2024-02-15",
			Status: entity.StatusOverdue,
		},
	}
	require.NoError(t, store.Save(in))

	path := filepath.Join(dir, "customers.json")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// save(load()) no cambia un byte del blob persistido
	loaded, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(loaded))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestWrite_NoDejaArchivoTemporal(t *testing.T) {
	store, dir := newStore(t)

	require.NoError(t, store.Save([]entity.Customer{}))

	_, err := os.Stat(filepath.Join(dir, "customers.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "customers.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}
