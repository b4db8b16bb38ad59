package dto

// InsightResponse recomendación generada por IA para un cliente.
type InsightResponse struct {
	CustomerID string `json:"customer_id"`
	Insight    string `json:"insight"`
}

// OutreachResponse mensaje de contacto generado por IA y el deep-link
// de WhatsApp listo para abrir.
type OutreachResponse struct {
	CustomerID  string `json:"customer_id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
