package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/bill-reminder-api/internal/application/dto"
	"github.com/jhoicas/bill-reminder-api/internal/domain"
	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
	"github.com/jhoicas/bill-reminder-api/internal/domain/repository"
)

// BillUseCase casos de uso del ciclo de vida de facturas.
type BillUseCase struct {
	repo        repository.BillRepository
	broadcaster Broadcaster
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(repo repository.BillRepository, broadcaster Broadcaster) *BillUseCase {
	return &BillUseCase{repo: repo, broadcaster: broadcaster}
}

// List lista facturas según el filtro de estado, ordenadas por due_date ascendente.
func (uc *BillUseCase) List(ctx context.Context, status string) ([]dto.BillDocument, error) {
	bills, err := uc.repo.List(ctx, entity.ParseBillStatus(status), time.Now())
	if err != nil {
		return nil, err
	}
	return dto.ToBillDocuments(bills), nil
}

// Create crea una factura. due_date es obligatorio en formato YYYY-MM-DD y
// paid se fuerza a false ignorando lo que mande el caller. Los demás campos
// pasan tal cual al documento. Devuelve el ID asignado por el store.
func (uc *BillUseCase) Create(ctx context.Context, fields map[string]any) (string, error) {
	due, err := parseDueDate(fields)
	if err != nil {
		return "", err
	}
	name, _ := fields["name"].(string)
	bill := &entity.Bill{
		Name:    name,
		DueDate: due,
		Paid:    false,
		Extra:   extraFields(fields, "_id", "name", "due_date", "paid"),
	}
	return uc.repo.Insert(ctx, bill)
}

// Update aplica un merge parcial: solo los campos enviados se reemplazan.
// Si viene due_date debe parsear como YYYY-MM-DD. No hay chequeo de existencia;
// un ID desconocido es un no-op exitoso. Tras un update exitoso publica el
// documento actualizado a los listeners (solo si el registro se puede releer).
func (uc *BillUseCase) Update(ctx context.Context, id string, fields map[string]any) error {
	delete(fields, "_id")
	if _, ok := fields["due_date"]; ok {
		due, err := parseDueDate(fields)
		if err != nil {
			return err
		}
		fields["due_date"] = due
	}
	if err := uc.repo.Update(ctx, id, fields); err != nil {
		return err
	}
	bill, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill != nil {
		uc.broadcaster.Publish(EventBillUpdated, dto.ToBillDocument(bill))
	}
	return nil
}

// Delete elimina la factura si existe; la ausencia no es error (delete idempotente).
func (uc *BillUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// MarkPaid marca paid=true incondicionalmente, con la misma idempotencia que Delete.
func (uc *BillUseCase) MarkPaid(ctx context.Context, id string) error {
	return uc.repo.Update(ctx, id, map[string]any{"paid": true})
}

// parseDueDate extrae y valida due_date del cuerpo. Ausente o no parseable -> ErrInvalidInput.
func parseDueDate(fields map[string]any) (time.Time, error) {
	raw, ok := fields["due_date"].(string)
	if !ok {
		return time.Time{}, domain.ErrInvalidInput
	}
	due, err := time.Parse(entity.DueDateLayout, raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return due, nil
}

// extraFields copia los campos libres del cuerpo, excluyendo los fijos.
func extraFields(fields map[string]any, fixed ...string) map[string]any {
	extra := make(map[string]any)
	for k, v := range fields {
		extra[k] = v
	}
	for _, k := range fixed {
		delete(extra, k)
	}
	return extra
}
