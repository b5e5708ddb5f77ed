package usecase

import "context"

// EventBillUpdated nombre del evento que reciben los clientes conectados
// cuando una factura cambia. El payload es el documento completo actualizado.
const EventBillUpdated = "bill-updated"

// Mailer puerto de salida hacia el relay de correo. El envío es síncrono:
// un fallo del relay se propaga al caller como error de la petición.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Broadcaster puerto de salida para anunciar cambios a los listeners conectados.
// La publicación es fire-and-forget: sin ack, sin reintentos, sin orden garantizado.
type Broadcaster interface {
	Publish(event string, data any)
}
