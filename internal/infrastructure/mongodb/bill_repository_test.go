package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
)

// Tests del mapeo puro entidad<->documento y de la traducción del filtro de
// estado a BSON. Las operaciones contra el store real quedan fuera: el driver
// es un colaborador opaco.

func TestStatusFilter_TraduceCadaEstado(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		bson.M{"due_date": bson.M{"$gte": now}, "paid": false},
		statusFilter(entity.StatusUpcoming, now))

	assert.Equal(t,
		bson.M{"due_date": bson.M{"$lt": now}, "paid": false},
		statusFilter(entity.StatusOverdue, now))

	assert.Equal(t, bson.M{"paid": true}, statusFilter(entity.StatusPaid, now))

	// all y cualquier valor desconocido: sin filtro
	assert.Equal(t, bson.M{}, statusFilter(entity.StatusAll, now))
	assert.Equal(t, bson.M{}, statusFilter(entity.BillStatus("junk"), now))
}

func TestBillToDoc_AplanaLosCamposLibres(t *testing.T) {
	due := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := &entity.Bill{
		Name:    "Rent",
		DueDate: due,
		Paid:    false,
		Extra:   map[string]any{"amount": 1200.50, "category": "housing"},
	}

	doc := billToDoc(b)

	assert.Equal(t, "Rent", doc["name"])
	assert.Equal(t, due, doc["due_date"])
	assert.Equal(t, false, doc["paid"])
	assert.Equal(t, 1200.50, doc["amount"])
	assert.Equal(t, "housing", doc["category"])
	assert.NotContains(t, doc, "_id", "el store asigna el _id, nunca lo mandamos")
}

func TestBillToDoc_LosCamposFijosGananALosLibres(t *testing.T) {
	// Un Extra con "paid" no puede pisar la bandera real
	b := &entity.Bill{
		Name:    "Rent",
		DueDate: time.Now(),
		Paid:    false,
		Extra:   map[string]any{"paid": true},
	}
	doc := billToDoc(b)
	assert.Equal(t, false, doc["paid"])
}

func TestBillFromDoc_ReconstruyeEntidadCompleta(t *testing.T) {
	oid := primitive.NewObjectID()
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	doc := bson.M{
		"_id":      oid,
		"name":     "Internet",
		"due_date": primitive.NewDateTimeFromTime(due), // encoding del driver
		"paid":     true,
		"amount":   80.0,
	}

	b := billFromDoc(doc)

	assert.Equal(t, oid.Hex(), b.ID, "el _id se renderiza como string hex")
	assert.Equal(t, "Internet", b.Name)
	assert.True(t, due.Equal(b.DueDate))
	assert.True(t, b.Paid)
	assert.Equal(t, 80.0, b.Extra["amount"])
	assert.NotContains(t, b.Extra, "name")
	assert.NotContains(t, b.Extra, "_id")
}

func TestReminderFromDoc_ReconstruyeEntidad(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
	doc := bson.M{
		"_id":         oid,
		"bill_id":     "abc123",
		"created_at":  primitive.NewDateTimeFromTime(created),
		"send_email":  true,
		"email":       "a@b.com",
		"days_before": int32(3),
	}

	r := reminderFromDoc(doc)

	require.NotNil(t, r)
	assert.Equal(t, oid.Hex(), r.ID)
	assert.Equal(t, "abc123", r.BillID)
	assert.True(t, created.Equal(r.CreatedAt))
	assert.True(t, r.SendEmail)
	assert.Equal(t, "a@b.com", r.Email)
	assert.Equal(t, int32(3), r.Extra["days_before"])
}
