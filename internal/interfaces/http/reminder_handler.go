package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-reminder-api/internal/application/dto"
	"github.com/jhoicas/bill-reminder-api/internal/application/usecase"
	"github.com/jhoicas/bill-reminder-api/internal/domain"
)

// ReminderHandler maneja las peticiones HTTP de recordatorios.
type ReminderHandler struct {
	uc *usecase.ReminderUseCase
}

// NewReminderHandler construye el handler.
func NewReminderHandler(uc *usecase.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{uc: uc}
}

// Create POST /api/reminders
func (h *ReminderHandler) Create(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), fields)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido cuando send_email es true"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la factura referenciada no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// List GET /api/reminders
func (h *ReminderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
