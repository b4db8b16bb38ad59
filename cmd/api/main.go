package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/edsonpereira/nexus-crm/internal/application/auth"
	"github.com/edsonpereira/nexus-crm/internal/application/usecase"
	infraai "github.com/edsonpereira/nexus-crm/internal/infrastructure/ai"
	"github.com/edsonpereira/nexus-crm/internal/infrastructure/storage"
	"github.com/edsonpereira/nexus-crm/internal/infrastructure/webhook"
	httpRouter "github.com/edsonpereira/nexus-crm/internal/interfaces/http"
	"github.com/edsonpereira/nexus-crm/internal/validation"
	"github.com/edsonpereira/nexus-crm/pkg/config"
	"github.com/edsonpereira/nexus-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Storage.DataDir).
		Msg("iniciando aplicación")

	store, err := storage.New(cfg.Storage.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}

	notificationUC, err := usecase.NewNotificationUseCase(store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar bitácora de notificaciones")
	}
	settingsUC, err := usecase.NewSettingsUseCase(store, notificationUC, cfg.App.CompanyName)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar configuración del CRM")
	}

	dispatcher := webhook.New(time.Duration(cfg.Webhook.TimeoutSeconds) * time.Second)
	webhookNotifier := usecase.NewWebhookNotifier(dispatcher, settingsUC, notificationUC, log)

	customerUC, err := usecase.NewCustomerUseCase(store, notificationUC, webhookNotifier)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar registro de clientes")
	}
	dashboardUC := usecase.NewDashboardUseCase(customerUC)

	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	aiUC := usecase.NewAIUseCase(geminiSvc, notificationUC, webhookNotifier, log)

	authUC, err := auth.NewAuthUseCase(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, notificationUC)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nexus CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CustomerUC:     customerUC,
		DashboardUC:    dashboardUC,
		NotificationUC: notificationUC,
		SettingsUC:     settingsUC,
		AIUC:           aiUC,
		Validator:      validation.New(),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
