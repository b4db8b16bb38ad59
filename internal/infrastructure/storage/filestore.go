// Package storage implementa la puerta de persistencia local: cada colección
// vive en su propio archivo JSON dentro de un directorio de datos. Sin
// transacciones ni índices; el que escribe al último gana (hay un solo
// escritor lógico).
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/internal/domain/repository"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

// Nombres de archivo de cada blob persistido.
const (
	customersFile     = "customers.json"
	notificationsFile = "notifications.json"
	configFile        = "config.json"
)

// FileStore persiste los blobs del CRM como archivos JSON.
// Un blob ausente o corrupto se lee como colección vacía: un archivo dañado
// no debe impedir el arranque de la aplicación.
type FileStore struct {
	dir string
	log *logger.Logger
}

var (
	_ repository.CustomerStore     = (*FileStore)(nil)
	_ repository.NotificationStore = (*FileStore)(nil)
	_ repository.ConfigStore       = (*FileStore)(nil)
)

// New crea el FileStore y asegura que el directorio de datos exista.
func New(dir string, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &FileStore{dir: dir, log: log}, nil
}

// Load lee la colección de clientes persistida.
func (s *FileStore) Load() ([]entity.Customer, error) {
	customers, err := readJSON[[]entity.Customer](s, customersFile)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []entity.Customer{}
	}
	return customers, nil
}

// Save sobreescribe la colección completa de clientes.
func (s *FileStore) Save(customers []entity.Customer) error {
	return s.writeJSON(customersFile, customers)
}

// LoadNotifications lee la bitácora de notificaciones persistida.
func (s *FileStore) LoadNotifications() ([]entity.Notification, error) {
	notifications, err := readJSON[[]entity.Notification](s, notificationsFile)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []entity.Notification{}
	}
	return notifications, nil
}

// SaveNotifications sobreescribe la bitácora completa.
func (s *FileStore) SaveNotifications(notifications []entity.Notification) error {
	return s.writeJSON(notificationsFile, notifications)
}

// LoadConfig lee la configuración del CRM; si no existe devuelve el cero.
func (s *FileStore) LoadConfig() (entity.CRMConfig, error) {
	return readJSON[entity.CRMConfig](s, configFile)
}

// SaveConfig sobreescribe la configuración del CRM.
func (s *FileStore) SaveConfig(cfg entity.CRMConfig) error {
	return s.writeJSON(configFile, cfg)
}

// readJSON carga un blob. Archivo ausente o JSON inválido se tratan como
// blob vacío; el JSON inválido además se registra como warning para no
// perder el síntoma. Se decodifica sobre un valor aparte porque Unmarshal
// puede dejar elementos parcialmente poblados ante un error de tipos, y un
// blob dañado debe leerse vacío, nunca a medias.
func readJSON[T any](s *FileStore, name string) (T, error) {
	var zero T
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, nil
		}
		return zero, fmt.Errorf("storage: leer %s: %w", name, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		if s.log != nil {
			s.log.Warn().Str("file", name).Err(err).Msg("blob persistido inválido, se trata como vacío")
		}
		return zero, nil
	}
	return out, nil
}

// writeJSON serializa v y lo escribe de forma atómica (tmp + rename) para
// que un corte a mitad de escritura nunca deje un blob truncado.
func (s *FileStore) writeJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: serializar %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("storage: renombrar %s: %w", name, err)
	}
	return nil
}
