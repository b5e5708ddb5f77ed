package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta de creación: el ID asignado por el store.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MessageResponse acuse de recibo simple para update/delete/pay.
type MessageResponse struct {
	Message string `json:"message"`
}
