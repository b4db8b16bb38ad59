package ports

import (
	"context"

	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

// Eventos de ciclo de vida que se publican por webhook.
const (
	EventCreated      = "created"
	EventStatusChange = "status_change"
	EventDeleted      = "deleted"
	EventAIWhatsApp   = "ia_whatsapp_notification"
)

// WebhookDispatcher puerto de salida para publicar eventos de ciclo de vida.
// Entrega a-lo-sumo-una-vez y al mejor esfuerzo: sin reintentos, sin cola.
// La URL destino se pasa en cada llamada porque es configuración editable
// en caliente por el usuario.
type WebhookDispatcher interface {
	Dispatch(ctx context.Context, url, event string, customer entity.Customer, extra map[string]any) error
}
