package ws

import (
	"context"
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bill-reminder-api/internal/application/usecase"
	"github.com/jhoicas/bill-reminder-api/pkg/logger"
)

var _ usecase.Broadcaster = (*Hub)(nil)

// Hub adaptador del puerto Broadcaster sobre websockets.
// Todo el estado (clientes conectados) se serializa en el run loop:
// register/unregister/broadcast pasan por canales, sin locks.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]struct{}
	log        *logger.Logger
}

type client struct {
	send chan []byte
}

// NewHub construye el hub. Hay que arrancar Run en una goroutine aparte.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*client]struct{}),
		log:        log,
	}
}

// Run atiende registros, bajas y difusión hasta que el contexto se cancele.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for cl := range h.clients {
				delete(h.clients, cl)
				close(cl.send)
			}
			return
		case cl := <-h.register:
			h.clients[cl] = struct{}{}
		case cl := <-h.unregister:
			if _, ok := h.clients[cl]; ok {
				delete(h.clients, cl)
				close(cl.send)
			}
		case msg := <-h.broadcast:
			for cl := range h.clients {
				select {
				case cl.send <- msg:
				default:
					// Cliente lento: se descarta en vez de bloquear la difusión
					delete(h.clients, cl)
					close(cl.send)
				}
			}
		}
	}
}

// Publish difunde un evento a todos los clientes conectados. Fire-and-forget:
// si nadie escucha o el hub está saturado, el evento se pierde sin error.
func (h *Hub) Publish(event string, data any) {
	payload, err := json.Marshal(map[string]any{"event": event, "data": data})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("serializar evento")
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn().Str("event", event).Msg("difusión saturada, evento descartado")
	}
}

// Handler devuelve el handler Fiber que atiende GET /ws.
// Cada conexión mantiene una goroutine de escritura sobre su canal propio;
// la lectura solo sirve para detectar el cierre del lado del cliente.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		cl := &client{send: make(chan []byte, 16)}
		h.register <- cl
		defer func() { h.unregister <- cl }()

		go func() {
			for msg := range cl.send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
			_ = conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

// Upgrade middleware que rechaza con 426 las peticiones que no son upgrade de websocket.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}
