package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/internal/domain/repository"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

// maxNotifications tope de la bitácora: al superarlo se descarta lo más viejo.
const maxNotifications = 50

// NotificationUseCase bitácora append-only de mensajes del sistema.
// Más-reciente-primero, acotada a 50 entradas, persistida en cada cambio.
// Es seguro llamarla desde varios handlers concurrentes.
type NotificationUseCase struct {
	store repository.NotificationStore
	log   *logger.Logger

	mu    sync.Mutex
	items []entity.Notification
}

// NewNotificationUseCase carga la bitácora persistida y construye el caso de uso.
func NewNotificationUseCase(store repository.NotificationStore, log *logger.Logger) (*NotificationUseCase, error) {
	items, err := store.LoadNotifications()
	if err != nil {
		return nil, err
	}
	return &NotificationUseCase{store: store, log: log, items: items}, nil
}

// Append agrega una notificación al frente de la bitácora, recorta a las 50
// más recientes y persiste. Un fallo de persistencia se registra pero no se
// propaga: perder una notificación no debe abortar la operación que la emitió.
func (uc *NotificationUseCase) Append(message string, typ entity.NotificationType) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	n := entity.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Timestamp: time.Now().UTC(),
		Type:      typ,
		Read:      false,
	}
	uc.items = append([]entity.Notification{n}, uc.items...)
	if len(uc.items) > maxNotifications {
		uc.items = uc.items[:maxNotifications]
	}
	if err := uc.store.SaveNotifications(uc.items); err != nil {
		uc.log.Error().Err(err).Msg("persistir bitácora de notificaciones")
	}
}

// List devuelve las notificaciones, la más reciente primero.
func (uc *NotificationUseCase) List() []entity.Notification {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Notification, len(uc.items))
	copy(out, uc.items)
	return out
}

// Clear vacía la bitácora y persiste el estado vacío. Acción explícita del
// usuario; no hay deshacer.
func (uc *NotificationUseCase) Clear() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.items = []entity.Notification{}
	return uc.store.SaveNotifications(uc.items)
}
