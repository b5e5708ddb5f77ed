package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
	"github.com/jhoicas/bill-reminder-api/internal/domain/repository"
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo adaptador de BillRepository sobre la colección "bills".
// Los documentos guardan los campos fijos y los libres al mismo nivel,
// tal como los manda el cliente.
type BillRepo struct {
	col *mongo.Collection
}

// NewBillRepository construye el adaptador.
func NewBillRepository(db *mongo.Database) *BillRepo {
	return &BillRepo{col: db.Collection(billsCollection)}
}

// statusFilter traduce el filtro de estado a una query BSON equivalente a
// la semántica de entity.BillStatus.Matches. Un estado desconocido cae en
// el filtro vacío (all).
func statusFilter(status entity.BillStatus, now time.Time) bson.M {
	switch status {
	case entity.StatusUpcoming:
		return bson.M{"due_date": bson.M{"$gte": now}, "paid": false}
	case entity.StatusOverdue:
		return bson.M{"due_date": bson.M{"$lt": now}, "paid": false}
	case entity.StatusPaid:
		return bson.M{"paid": true}
	default:
		return bson.M{}
	}
}

// List lista facturas según el filtro, ordenadas por due_date ascendente.
func (r *BillRepo) List(ctx context.Context, status entity.BillStatus, now time.Time) ([]*entity.Bill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.col.Find(ctx, statusFilter(status, now), opts)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Bill
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode bill: %w", err)
		}
		list = append(list, billFromDoc(doc))
	}
	return list, cursor.Err()
}

// Insert persiste una factura nueva y devuelve el ObjectID asignado en hex.
func (r *BillRepo) Insert(ctx context.Context, bill *entity.Bill) (string, error) {
	res, err := r.col.InsertOne(ctx, billToDoc(bill))
	if err != nil {
		return "", fmt.Errorf("insert bill: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert bill: id inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update hace $set parcial de los campos enviados. Un ID inexistente o no
// parseable no matchea ningún documento: no-op sin error (contrato idempotente).
func (r *BillRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if len(fields) == 0 {
		return nil
	}
	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)}); err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	return nil
}

// Delete elimina por ID con la misma idempotencia que Update.
func (r *BillRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID; (nil, nil) si no existe.
func (r *BillRepo) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc bson.M
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return billFromDoc(doc), nil
}

// billToDoc arma el documento BSON: campos fijos más los libres al mismo nivel.
func billToDoc(b *entity.Bill) bson.M {
	doc := bson.M{}
	for k, v := range b.Extra {
		doc[k] = v
	}
	doc["name"] = b.Name
	doc["due_date"] = b.DueDate
	doc["paid"] = b.Paid
	return doc
}

// billFromDoc reconstruye la entidad desde el documento crudo.
func billFromDoc(doc bson.M) *entity.Bill {
	b := &entity.Bill{Extra: make(map[string]any)}
	for k, v := range doc {
		switch k {
		case "_id":
			if oid, ok := v.(primitive.ObjectID); ok {
				b.ID = oid.Hex()
			}
		case "name":
			b.Name, _ = v.(string)
		case "due_date":
			b.DueDate = asTime(v)
		case "paid":
			b.Paid, _ = v.(bool)
		default:
			b.Extra[k] = v
		}
	}
	return b
}

// asTime normaliza los dos encodings de fecha que devuelve el driver.
func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time()
	}
	return time.Time{}
}
