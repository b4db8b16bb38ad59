package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/edsonpereira/nexus-crm/internal/application/auth"
	"github.com/edsonpereira/nexus-crm/internal/application/dto"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	"github.com/edsonpereira/nexus-crm/internal/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CustomerUC     *usecase.CustomerUseCase
	DashboardUC    *usecase.DashboardUseCase
	NotificationUC *usecase.NotificationUseCase
	SettingsUC     *usecase.SettingsUseCase
	AIUC           *usecase.AIUseCase
	Validator      *validation.Validator
	JWTSecret      string
}

// Router registra las rutas de la API. Todo /api salvo el login va detrás
// del middleware de sesión.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Validator)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/export", customerHandler.ExportCSV)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Delete("/", customerHandler.ClearAll)

	// Asesorías de IA por cliente
	aiHandler := NewAIHandler(deps.AIUC, deps.CustomerUC)
	customers.Post("/:id/insight", aiHandler.Insight)
	customers.Post("/:id/notify", aiHandler.Notify)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Notifications
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	protected.Get("/notifications", notificationHandler.List)
	protected.Delete("/notifications", notificationHandler.Clear)

	// Settings
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.Validator)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)
	protected.Post("/settings/sync", settingsHandler.Sync)
}

// validationError responde 400 con los mensajes por campo si el error viene
// del validador; cualquier otro error se reporta como entrada inválida.
func validationError(c *fiber.Ctx, err error) error {
	var fe *validation.FieldErrors
	if errors.As(err, &fe) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Fields: fe.Fields})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}
