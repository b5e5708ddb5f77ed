package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-reminder-api/internal/application/usecase"
	"github.com/jhoicas/bill-reminder-api/internal/infrastructure/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BillUC     *usecase.BillUseCase
	ReminderUC *usecase.ReminderUseCase
	Hub        *ws.Hub
	StaticDir  string
}

// Router registra las rutas de la API, el canal de websocket y el cliente estático.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Bills
	bills := api.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC)
	bills.Get("/", billHandler.List)
	bills.Post("/", billHandler.Create)
	bills.Put("/:id", billHandler.Update)
	bills.Delete("/:id", billHandler.Delete)
	bills.Put("/:id/pay", billHandler.MarkPaid)

	// Reminders
	reminders := api.Group("/reminders")
	reminderHandler := NewReminderHandler(deps.ReminderUC)
	reminders.Get("/", reminderHandler.List)
	reminders.Post("/", reminderHandler.Create)

	// Live updates (evento bill-updated)
	app.Use("/ws", ws.Upgrade)
	app.Get("/ws", deps.Hub.Handler())

	// Build del cliente React: asset conocido o fallback a index.html (SPA)
	app.Static("/", deps.StaticDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(deps.StaticDir, "index.html"))
	})
}
