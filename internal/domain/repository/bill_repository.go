package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
)

// BillRepository define el puerto de persistencia para Bill.
// El store asigna el ID en Insert. Update/Delete sobre un ID inexistente
// (o no parseable) son no-op sin error: el contrato del API es idempotente.
type BillRepository interface {
	List(ctx context.Context, status entity.BillStatus, now time.Time) ([]*entity.Bill, error)
	Insert(ctx context.Context, bill *entity.Bill) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Bill, error)
}
