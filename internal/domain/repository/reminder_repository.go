package repository

import (
	"context"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
)

// ReminderRepository define el puerto de persistencia para Reminder.
type ReminderRepository interface {
	Insert(ctx context.Context, reminder *entity.Reminder) (string, error)
	List(ctx context.Context) ([]*entity.Reminder, error)
}
