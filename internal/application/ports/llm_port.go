package ports

import (
	"context"

	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

// LLMService define el puerto de salida hacia el servicio de IA generativa.
// Cualquier adaptador (Gemini, OpenAI, mock) debe implementar esta interfaz.
// La capa de aplicación solo conoce este contrato, no la implementación
// concreta, y es la responsable de sustituir fallos por textos de respaldo.
type LLMService interface {
	// CustomerInsight genera un resumen profesional y próximos pasos para el
	// cliente. El contexto debe llevar un timeout para evitar bloqueos en
	// llamadas externas.
	CustomerInsight(ctx context.Context, customer entity.Customer) (string, error)

	// OutreachMessage genera un mensaje de contacto corto cuyo tono depende
	// del estado del contrato del cliente.
	OutreachMessage(ctx context.Context, customer entity.Customer) (string, error)
}
