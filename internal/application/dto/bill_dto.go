package dto

import (
	"time"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
)

// BillDocument documento JSON de una factura tal como lo espera el cliente:
// _id como string, due_date como YYYY-MM-DD y los campos libres aplanados
// al mismo nivel que los fijos.
type BillDocument map[string]any

// ToBillDocument arma el documento de respuesta a partir de la entidad.
func ToBillDocument(b *entity.Bill) BillDocument {
	doc := BillDocument{}
	for k, v := range b.Extra {
		doc[k] = v
	}
	doc["_id"] = b.ID
	doc["name"] = b.Name
	doc["due_date"] = b.DueDate.Format(entity.DueDateLayout)
	doc["paid"] = b.Paid
	return doc
}

// ToBillDocuments mapea la lista completa conservando el orden del repositorio.
func ToBillDocuments(bills []*entity.Bill) []BillDocument {
	out := make([]BillDocument, 0, len(bills))
	for _, b := range bills {
		out = append(out, ToBillDocument(b))
	}
	return out
}

// ReminderDocument documento JSON de un recordatorio.
type ReminderDocument map[string]any

// ToReminderDocument arma el documento de respuesta a partir de la entidad.
func ToReminderDocument(r *entity.Reminder) ReminderDocument {
	doc := ReminderDocument{}
	for k, v := range r.Extra {
		doc[k] = v
	}
	doc["_id"] = r.ID
	doc["bill_id"] = r.BillID
	doc["created_at"] = r.CreatedAt.Format(time.RFC3339)
	doc["send_email"] = r.SendEmail
	doc["email"] = r.Email
	return doc
}

// ToReminderDocuments mapea la lista completa.
func ToReminderDocuments(reminders []*entity.Reminder) []ReminderDocument {
	out := make([]ReminderDocument, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, ToReminderDocument(r))
	}
	return out
}
