package entity

// CRMConfig configuración editable por el usuario. Instancia única,
// persistida en su propio blob, independiente de clientes y notificaciones.
type CRMConfig struct {
	WebhookURL  string `json:"webhookUrl"`
	CompanyName string `json:"companyName"`
}
