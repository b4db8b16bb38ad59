// Package webhook implementa el despachador de eventos salientes: un único
// POST JSON por evento, sin reintentos ni confirmación de entrega más allá
// del resultado del transporte.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/edsonpereira/nexus-crm/internal/application/ports"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

// Verificar en tiempo de compilación que Dispatcher implementa el puerto.
var _ ports.WebhookDispatcher = (*Dispatcher)(nil)

// payload cuerpo del POST saliente. Timestamp es el instante del despacho
// en ISO-8601 (UTC).
type payload struct {
	Event     string          `json:"event"`
	Customer  entity.Customer `json:"customer"`
	ExtraData map[string]any  `json:"extraData,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// Dispatcher envía eventos de ciclo de vida a la URL configurada.
type Dispatcher struct {
	httpClient *http.Client
}

// New construye el despachador con el timeout de red indicado.
func New(timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Dispatch publica el evento. Cualquier fallo de transporte o respuesta
// no-2xx se devuelve como error; el caller decide cómo notificarlo. La
// mutación que originó el evento ya está persistida y nunca se revierte.
func (d *Dispatcher) Dispatch(ctx context.Context, url, event string, customer entity.Customer, extra map[string]any) error {
	body, err := json.Marshal(payload{
		Event:     event,
		Customer:  customer,
		ExtraData: extra,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("webhook: serializar payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()
	// Drenar el cuerpo para reutilizar la conexión
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook: HTTP %d", resp.StatusCode)
	}
	return nil
}
