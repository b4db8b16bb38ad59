// Package ai contiene los adaptadores hacia servicios de IA generativa.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/edsonpereira/nexus-crm/internal/application/ports"
	"github.com/edsonpereira/nexus-crm/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// Los prompts van en portugués de Brasil: es el idioma del producto y de
// los mensajes que el usuario reenvía a sus clientes.
const (
	insightPromptTmpl = `Forneça um resumo profissional e 3 próximos passos acionáveis para um cliente com os seguintes detalhes:
Nome: %s
Status: %s
Valor Atual: R$%s
Data do Contrato: %s

Mantenha o texto conciso, profissional e totalmente em português do Brasil. Use um tom positivo e estratégico.`

	outreachPromptTmpl = `Escreva uma mensagem de contato curta e profissional para enviar ao cliente %s via WhatsApp ou E-mail.
Contexto:
Status: %s
Valor do Contrato: R$%s
Data de Referência: %s

Regras:
- Se estiver "Active", a mensagem deve ser de agradecimento e manutenção.
- Se estiver "Overdue", a mensagem deve ser um lembrete gentil mas firme sobre o pagamento.
- Se estiver "Expired", a mensagem deve ser um convite para renovação com foco em benefícios.
- Use emojis adequados e mantenha um tom humano.
- Responda apenas com o texto da mensagem.`
)

// GeminiService adaptador que implementa LLMService llamando a la API REST
// de Google Gemini. Usa únicamente net/http para no añadir dependencias.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string // formato con %s para modelo y api key
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío las llamadas devuelven error descriptivo; el caso de
// uso lo convierte en el texto de respaldo.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiBaseURL,
		httpClient: &http.Client{
			Timeout: 25 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature float32  `json:"temperature"`
	TopP        *float32 `json:"topP,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// CustomerInsight pide un resumen estratégico del cliente con tres próximos
// pasos accionables. Devuelve el texto del modelo tal cual.
func (s *GeminiService) CustomerInsight(ctx context.Context, customer entity.Customer) (string, error) {
	prompt := fmt.Sprintf(insightPromptTmpl,
		customer.Name, customer.Status, customer.Value.String(), customer.Date)
	topP := float32(0.95)
	return s.generate(ctx, prompt, genConfig{Temperature: 0.7, TopP: &topP})
}

// OutreachMessage pide un mensaje de contacto corto condicionado al estado
// del contrato del cliente.
func (s *GeminiService) OutreachMessage(ctx context.Context, customer entity.Customer) (string, error) {
	prompt := fmt.Sprintf(outreachPromptTmpl,
		customer.Name, customer.Status, customer.Value.String(), customer.Date)
	return s.generate(ctx, prompt, genConfig{Temperature: 0.8})
}

// generate envía el prompt al endpoint generateContent y devuelve el primer
// candidato como texto plano.
func (s *GeminiService) generate(ctx context.Context, prompt string, cfg genConfig) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
		GenerationConfig: cfg,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", nil // respuesta vacía: el caso de uso decide el texto de respaldo
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
