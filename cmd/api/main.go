package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bill-reminder-api/internal/application/usecase"
	"github.com/jhoicas/bill-reminder-api/internal/infrastructure/mail"
	"github.com/jhoicas/bill-reminder-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/bill-reminder-api/internal/infrastructure/ws"
	httpRouter "github.com/jhoicas/bill-reminder-api/internal/interfaces/http"
	"github.com/jhoicas/bill-reminder-api/pkg/config"
	"github.com/jhoicas/bill-reminder-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.Mongo.Database)

	billRepo := mongodb.NewBillRepository(db)
	reminderRepo := mongodb.NewReminderRepository(db)

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	mailer := mail.NewSender(cfg.Mail, log)

	billUC := usecase.NewBillUseCase(billRepo, hub)
	reminderUC := usecase.NewReminderUseCase(reminderRepo, billRepo, mailer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// El cliente React y el socket se sirven desde cualquier origen (como el CORS(app) original)
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BillUC:     billUC,
		ReminderUC: reminderUC,
		Hub:        hub,
		StaticDir:  cfg.HTTP.StaticDir,
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

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
