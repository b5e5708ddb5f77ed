package entity

import "time"

// DueDateLayout formato de fecha de vencimiento en el API (YYYY-MM-DD).
const DueDateLayout = "2006-01-02"

// BillStatus filtro de listado de facturas.
type BillStatus string

const (
	StatusAll      BillStatus = "all"
	StatusUpcoming BillStatus = "upcoming"
	StatusOverdue  BillStatus = "overdue"
	StatusPaid     BillStatus = "paid"
)

// ParseBillStatus interpreta el query param status. Un valor desconocido
// se trata como "all" (contrato observable heredado: el cliente no recibe error).
func ParseBillStatus(s string) BillStatus {
	switch BillStatus(s) {
	case StatusUpcoming, StatusOverdue, StatusPaid:
		return BillStatus(s)
	default:
		return StatusAll
	}
}

// Bill representa una cuenta por pagar con fecha de vencimiento y bandera de pago.
// Extra conserva los campos libres que envía el cliente (amount, category, ...)
// tal cual, sin validación; se persisten y se devuelven sin tocar.
type Bill struct {
	ID      string
	Name    string
	DueDate time.Time
	Paid    bool
	Extra   map[string]any
}

// Matches indica si la factura entra en el filtro de estado respecto a now.
// upcoming: due_date >= now y no pagada; overdue: due_date < now y no pagada;
// paid: pagada; all: siempre.
func (s BillStatus) Matches(b *Bill, now time.Time) bool {
	switch s {
	case StatusUpcoming:
		return !b.Paid && !b.DueDate.Before(now)
	case StatusOverdue:
		return !b.Paid && b.DueDate.Before(now)
	case StatusPaid:
		return b.Paid
	default:
		return true
	}
}
