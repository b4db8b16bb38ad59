package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/edsonpereira/nexus-crm/internal/application/ports"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

// llmTimeout tope por llamada al LLM para que las latencias externas no
// bloqueen los goroutines del servidor.
const llmTimeout = 20 * time.Second

// Textos de respaldo (pt-BR). Se devuelven en lugar del error cuando la
// llamada al modelo falla o vuelve vacía; el caller nunca ve el error.
const (
	fallbackInsightEmpty  = "Não foi possível gerar insights no momento."
	fallbackInsightError  = "Erro ao gerar recomendações da IA. Tente novamente mais tarde."
	fallbackOutreachEmpty = "Olá! Gostariamos de conversar sobre seu contrato."
	fallbackOutreachError = "Olá, notamos uma pendência em seu cadastro. Por favor, entre em contato."
)

// AIUseCase orquesta las dos asesorías de IA: el insight estratégico por
// cliente y el mensaje de contacto con su deep-link de WhatsApp. Ambas son
// de un solo disparo, sin caché: re-invocar regenera desde cero.
type AIUseCase struct {
	llm      ports.LLMService
	notifier *NotificationUseCase
	webhook  *WebhookNotifier
	log      *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, notifier *NotificationUseCase, webhook *WebhookNotifier, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, notifier: notifier, webhook: webhook, log: log}
}

// GetInsight devuelve el texto del modelo tal cual, o el texto de respaldo
// si la llamada falla. El fallo se registra en el log pero no genera
// notificación: el usuario ya ve el texto de respaldo en pantalla.
func (uc *AIUseCase) GetInsight(ctx context.Context, customer entity.Customer) string {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	text, err := uc.llm.CustomerInsight(ctx, customer)
	if err != nil {
		uc.log.Error().Err(err).Str("customer", customer.Name).Msg("insight de IA")
		return fallbackInsightError
	}
	if text == "" {
		return fallbackInsightEmpty
	}
	return text
}

// NotifyCustomer genera el mensaje de contacto y encadena los efectos:
// notificación con el mensaje, evento "ia_whatsapp_notification" al webhook
// y deep-link de WhatsApp. Si la generación falla se usa el texto de
// respaldo y el fallo sí queda en la bitácora como error.
func (uc *AIUseCase) NotifyCustomer(ctx context.Context, customer entity.Customer) (message, whatsappURL string) {
	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	message, err := uc.llm.OutreachMessage(llmCtx, customer)
	if err != nil {
		uc.log.Error().Err(err).Str("customer", customer.Name).Msg("mensaje de contacto de IA")
		uc.notifier.Append("Erro ao processar notificação de IA", entity.NotifError)
		message = fallbackOutreachError
	} else if message == "" {
		message = fallbackOutreachEmpty
	}

	uc.notifier.Append(fmt.Sprintf("Mensagem gerada para %s: %s", customer.Name, message), entity.NotifInfo)
	uc.webhook.Send(ctx, ports.EventAIWhatsApp, customer, map[string]any{"ai_message": message})

	whatsappURL = BuildWhatsAppLink(customer.Phone, message)
	uc.notifier.Append("WhatsApp aberto para "+customer.Name, entity.NotifSuccess)
	return message, whatsappURL
}

// BuildWhatsAppLink construye el deep-link de mensajería: teléfono reducido
// a dígitos y mensaje codificado para URL. Operación puramente de cadenas.
func BuildWhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	// QueryEscape codifica el espacio como '+'; wa.me espera %20
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), encoded)
}
