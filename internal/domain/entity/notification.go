package entity

import "time"

// NotificationType severidad de una notificación del sistema.
type NotificationType string

const (
	NotifInfo    NotificationType = "info"
	NotifSuccess NotificationType = "success"
	NotifWarning NotificationType = "warning"
	NotifError   NotificationType = "error"
)

// Notification mensaje generado por el sistema (bitácora acotada a 50).
// Read se persiste por compatibilidad con el formato histórico, pero ninguna
// operación lo marca en true; la bitácora solo se limpia completa.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
}
