package entity

import "time"

// Reminder representa una solicitud de notificación ligada a una Bill.
// BillID es una referencia débil (no se valida integridad referencial al crear).
// Inmutable una vez creada: no existen operaciones de update/delete.
type Reminder struct {
	ID        string
	BillID    string
	CreatedAt time.Time
	SendEmail bool
	Email     string // destinatario, requerido solo si SendEmail
	Extra     map[string]any
}
