package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-reminder-api/internal/application/dto"
	"github.com/jhoicas/bill-reminder-api/internal/application/usecase"
	"github.com/jhoicas/bill-reminder-api/internal/domain"
)

// BillHandler maneja las peticiones HTTP de facturas.
type BillHandler struct {
	uc *usecase.BillUseCase
}

// NewBillHandler construye el handler.
func NewBillHandler(uc *usecase.BillUseCase) *BillHandler {
	return &BillHandler{uc: uc}
}

// List GET /api/bills?status=all|upcoming|overdue|paid
func (h *BillHandler) List(c *fiber.Ctx) error {
	status := c.Query("status", "all")
	out, err := h.uc.List(c.Context(), status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create POST /api/bills
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.Context(), fields)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "due_date es requerido en formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// Update PUT /api/bills/:id
func (h *BillHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), id, fields); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "due_date debe tener formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Bill updated successfully"})
}

// Delete DELETE /api/bills/:id
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Bill deleted successfully"})
}

// MarkPaid PUT /api/bills/:id/pay
func (h *BillHandler) MarkPaid(c *fiber.Ctx) error {
	if err := h.uc.MarkPaid(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Bill marked as paid"})
}
