package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
	"github.com/jhoicas/bill-reminder-api/internal/domain/repository"
)

var _ repository.ReminderRepository = (*ReminderRepo)(nil)

// ReminderRepo adaptador de ReminderRepository sobre la colección "reminders".
type ReminderRepo struct {
	col *mongo.Collection
}

// NewReminderRepository construye el adaptador.
func NewReminderRepository(db *mongo.Database) *ReminderRepo {
	return &ReminderRepo{col: db.Collection(remindersCollection)}
}

// Insert persiste un recordatorio nuevo y devuelve el ObjectID asignado en hex.
func (r *ReminderRepo) Insert(ctx context.Context, reminder *entity.Reminder) (string, error) {
	doc := bson.M{}
	for k, v := range reminder.Extra {
		doc[k] = v
	}
	doc["bill_id"] = reminder.BillID
	doc["created_at"] = reminder.CreatedAt
	doc["send_email"] = reminder.SendEmail
	doc["email"] = reminder.Email

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert reminder: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert reminder: id inesperado %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// List devuelve todos los recordatorios.
func (r *ReminderRepo) List(ctx context.Context) ([]*entity.Reminder, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*entity.Reminder
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode reminder: %w", err)
		}
		list = append(list, reminderFromDoc(doc))
	}
	return list, cursor.Err()
}

// reminderFromDoc reconstruye la entidad desde el documento crudo.
func reminderFromDoc(doc bson.M) *entity.Reminder {
	r := &entity.Reminder{Extra: make(map[string]any)}
	for k, v := range doc {
		switch k {
		case "_id":
			if oid, ok := v.(primitive.ObjectID); ok {
				r.ID = oid.Hex()
			}
		case "bill_id":
			r.BillID, _ = v.(string)
		case "created_at":
			r.CreatedAt = asTime(v)
		case "send_email":
			r.SendEmail, _ = v.(bool)
		case "email":
			r.Email, _ = v.(string)
		default:
			r.Extra[k] = v
		}
	}
	return r
}
