package usecase

import (
	"context"

	"github.com/edsonpereira/nexus-crm/internal/application/ports"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

// WebhookNotifier encadena el despacho de un evento con su reflejo en la
// bitácora: éxito → notificación success, fallo de transporte → notificación
// error. Sin URL configurada no hay llamada de red ni notificación alguna.
//
// El fallo del webhook nunca bloquea ni revierte la mutación que lo originó.
type WebhookNotifier struct {
	dispatcher ports.WebhookDispatcher
	settings   *SettingsUseCase
	notifier   *NotificationUseCase
	log        *logger.Logger
}

// NewWebhookNotifier construye el notificador.
func NewWebhookNotifier(dispatcher ports.WebhookDispatcher, settings *SettingsUseCase, notifier *NotificationUseCase, log *logger.Logger) *WebhookNotifier {
	return &WebhookNotifier{dispatcher: dispatcher, settings: settings, notifier: notifier, log: log}
}

// Send publica el evento al webhook configurado, al mejor esfuerzo.
func (w *WebhookNotifier) Send(ctx context.Context, event string, customer entity.Customer, extra map[string]any) {
	url := w.settings.WebhookURL()
	if url == "" {
		return
	}
	w.log.Debug().Str("event", event).Str("customer", customer.Name).Msg("webhook disparado")
	if err := w.dispatcher.Dispatch(ctx, url, event, customer, extra); err != nil {
		w.log.Error().Err(err).Str("event", event).Msg("envío de webhook")
		w.notifier.Append("Falha ao enviar webhook", entity.NotifError)
		return
	}
	w.notifier.Append("Webhook enviado: "+event, entity.NotifSuccess)
}
