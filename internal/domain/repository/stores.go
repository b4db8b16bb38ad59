package repository

import "github.com/edsonpereira/nexus-crm/internal/domain/entity"

// CustomerStore puerto de persistencia para la colección de clientes.
// Load devuelve la colección completa en el orden persistido; Save la
// sobreescribe entera (write-through, sin escrituras parciales).
type CustomerStore interface {
	Load() ([]entity.Customer, error)
	Save(customers []entity.Customer) error
}

// NotificationStore puerto de persistencia para la bitácora de notificaciones.
type NotificationStore interface {
	LoadNotifications() ([]entity.Notification, error)
	SaveNotifications(notifications []entity.Notification) error
}

// ConfigStore puerto de persistencia para la configuración del CRM.
type ConfigStore interface {
	LoadConfig() (entity.CRMConfig, error)
	SaveConfig(cfg entity.CRMConfig) error
}
