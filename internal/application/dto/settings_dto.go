package dto

// SettingsRequest entrada para actualizar la configuración del CRM.
type SettingsRequest struct {
	WebhookURL  string `json:"webhookUrl" validate:"omitempty,url"`
	CompanyName string `json:"companyName" validate:"required,min=1,max=120"`
}
