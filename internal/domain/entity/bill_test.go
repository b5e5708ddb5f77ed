package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseBillStatus — el contrato heredado: un status desconocido no es error,
// se trata como "all".
// ──────────────────────────────────────────────────────────────────────────────

func TestParseBillStatus_ValoresConocidos(t *testing.T) {
	assert.Equal(t, entity.StatusUpcoming, entity.ParseBillStatus("upcoming"))
	assert.Equal(t, entity.StatusOverdue, entity.ParseBillStatus("overdue"))
	assert.Equal(t, entity.StatusPaid, entity.ParseBillStatus("paid"))
	assert.Equal(t, entity.StatusAll, entity.ParseBillStatus("all"))
}

func TestParseBillStatus_DesconocidoCaeEnAll(t *testing.T) {
	assert.Equal(t, entity.StatusAll, entity.ParseBillStatus("whatever"))
	assert.Equal(t, entity.StatusAll, entity.ParseBillStatus(""))
	assert.Equal(t, entity.StatusAll, entity.ParseBillStatus("PAID"), "el filtro es case sensitive")
}

// ──────────────────────────────────────────────────────────────────────────────
// Matches — semántica de los filtros respecto a now
// ──────────────────────────────────────────────────────────────────────────────

func TestMatches_UpcomingYOverdueSonDisjuntos(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	pasada := &entity.Bill{Name: "Rent", DueDate: now.AddDate(0, 0, -10), Paid: false}
	futura := &entity.Bill{Name: "Water", DueDate: now.AddDate(0, 0, 10), Paid: false}

	assert.True(t, entity.StatusOverdue.Matches(pasada, now))
	assert.False(t, entity.StatusUpcoming.Matches(pasada, now))

	assert.True(t, entity.StatusUpcoming.Matches(futura, now))
	assert.False(t, entity.StatusOverdue.Matches(futura, now))
}

func TestMatches_VencimientoExactoEsUpcoming(t *testing.T) {
	// due_date >= now cuenta como upcoming, no como overdue
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	b := &entity.Bill{Name: "Rent", DueDate: now, Paid: false}

	assert.True(t, entity.StatusUpcoming.Matches(b, now))
	assert.False(t, entity.StatusOverdue.Matches(b, now))
}

func TestMatches_PagadaSoloEntraEnPaidYAll(t *testing.T) {
	now := time.Now()
	pagada := &entity.Bill{Name: "Internet", DueDate: now.AddDate(0, 0, -5), Paid: true}

	assert.True(t, entity.StatusPaid.Matches(pagada, now))
	assert.True(t, entity.StatusAll.Matches(pagada, now))
	assert.False(t, entity.StatusOverdue.Matches(pagada, now), "una factura pagada nunca está vencida")
	assert.False(t, entity.StatusUpcoming.Matches(pagada, now))
}

func TestMatches_AllAceptaTodo(t *testing.T) {
	now := time.Now()
	for _, b := range []*entity.Bill{
		{DueDate: now.AddDate(0, 0, -1), Paid: false},
		{DueDate: now.AddDate(0, 0, 1), Paid: false},
		{DueDate: now.AddDate(0, 0, 1), Paid: true},
	} {
		assert.True(t, entity.StatusAll.Matches(b, now))
	}
}
