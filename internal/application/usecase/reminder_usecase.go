package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bill-reminder-api/internal/application/dto"
	"github.com/jhoicas/bill-reminder-api/internal/domain"
	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
	"github.com/jhoicas/bill-reminder-api/internal/domain/repository"
)

// Asunto fijo del correo de recordatorio.
const reminderSubject = "Bill Reminder"

// ReminderUseCase casos de uso de recordatorios.
type ReminderUseCase struct {
	reminders repository.ReminderRepository
	bills     repository.BillRepository
	mailer    Mailer
}

// NewReminderUseCase construye el caso de uso.
func NewReminderUseCase(reminders repository.ReminderRepository, bills repository.BillRepository, mailer Mailer) *ReminderUseCase {
	return &ReminderUseCase{reminders: reminders, bills: bills, mailer: mailer}
}

// Create sella created_at y persiste el recordatorio. Si send_email es true,
// busca la factura referenciada (ErrNotFound si no existe: sin ella no hay
// nombre ni fecha que interpolar) y despacha el correo al email de la petición.
// No hay acople transaccional: un fallo del correo deja el recordatorio ya
// persistido y se propaga como error de la petición.
func (uc *ReminderUseCase) Create(ctx context.Context, fields map[string]any) (string, error) {
	sendEmail, _ := fields["send_email"].(bool)
	emailAddr, _ := fields["email"].(string)
	billID, _ := fields["bill_id"].(string)
	if sendEmail && emailAddr == "" {
		return "", domain.ErrInvalidInput
	}

	reminder := &entity.Reminder{
		BillID:    billID,
		CreatedAt: time.Now(),
		SendEmail: sendEmail,
		Email:     emailAddr,
		Extra:     extraFields(fields, "_id", "bill_id", "created_at", "send_email", "email"),
	}
	id, err := uc.reminders.Insert(ctx, reminder)
	if err != nil {
		return "", err
	}

	if sendEmail {
		bill, err := uc.bills.GetByID(ctx, billID)
		if err != nil {
			return "", err
		}
		if bill == nil {
			return "", domain.ErrNotFound
		}
		body := fmt.Sprintf("Reminder: Your bill %s is due on %s",
			bill.Name, bill.DueDate.Format(entity.DueDateLayout))
		if err := uc.mailer.Send(ctx, emailAddr, reminderSubject, body); err != nil {
			return "", err
		}
	}

	return id, nil
}

// List lista todos los recordatorios (el cliente los muestra junto a sus facturas).
func (uc *ReminderUseCase) List(ctx context.Context) ([]dto.ReminderDocument, error) {
	reminders, err := uc.reminders.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToReminderDocuments(reminders), nil
}
