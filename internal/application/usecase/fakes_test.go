package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bill-reminder-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos. Replican el contrato del adaptador Mongo:
// IDs asignados al insertar, update/delete no-op sobre ID desconocido,
// listado filtrado y ordenado por due_date ascendente.
// ──────────────────────────────────────────────────────────────────────────────

type memBillRepo struct {
	bills   map[string]*entity.Bill
	failure error // si se setea, todas las operaciones fallan con este error
}

func newMemBillRepo() *memBillRepo {
	return &memBillRepo{bills: make(map[string]*entity.Bill)}
}

func cloneBill(b *entity.Bill) *entity.Bill {
	c := *b
	c.Extra = make(map[string]any, len(b.Extra))
	for k, v := range b.Extra {
		c.Extra[k] = v
	}
	return &c
}

func (m *memBillRepo) List(_ context.Context, status entity.BillStatus, now time.Time) ([]*entity.Bill, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*entity.Bill
	for _, b := range m.bills {
		if status.Matches(b, now) {
			out = append(out, cloneBill(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (m *memBillRepo) Insert(_ context.Context, bill *entity.Bill) (string, error) {
	if m.failure != nil {
		return "", m.failure
	}
	c := cloneBill(bill)
	c.ID = uuid.NewString()
	m.bills[c.ID] = c
	return c.ID, nil
}

func (m *memBillRepo) Update(_ context.Context, id string, fields map[string]any) error {
	if m.failure != nil {
		return m.failure
	}
	b, ok := m.bills[id]
	if !ok {
		return nil // no-op idempotente
	}
	for k, v := range fields {
		switch k {
		case "name":
			b.Name, _ = v.(string)
		case "due_date":
			b.DueDate, _ = v.(time.Time)
		case "paid":
			b.Paid, _ = v.(bool)
		default:
			b.Extra[k] = v
		}
	}
	return nil
}

func (m *memBillRepo) Delete(_ context.Context, id string) error {
	if m.failure != nil {
		return m.failure
	}
	delete(m.bills, id)
	return nil
}

func (m *memBillRepo) GetByID(_ context.Context, id string) (*entity.Bill, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	b, ok := m.bills[id]
	if !ok {
		return nil, nil
	}
	return cloneBill(b), nil
}

type memReminderRepo struct {
	reminders []*entity.Reminder
	failure   error
}

func (m *memReminderRepo) Insert(_ context.Context, reminder *entity.Reminder) (string, error) {
	if m.failure != nil {
		return "", m.failure
	}
	c := *reminder
	c.ID = uuid.NewString()
	m.reminders = append(m.reminders, &c)
	return c.ID, nil
}

func (m *memReminderRepo) List(_ context.Context) ([]*entity.Reminder, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	return append([]*entity.Reminder(nil), m.reminders...), nil
}

type publishedEvent struct {
	event string
	data  any
}

type fakeBroadcaster struct {
	events []publishedEvent
}

func (f *fakeBroadcaster) Publish(event string, data any) {
	f.events = append(f.events, publishedEvent{event: event, data: data})
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	failure error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.failure != nil {
		return f.failure
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
