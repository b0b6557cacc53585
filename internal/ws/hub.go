package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub fans station events out to every connected websocket client.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
	logger     *zap.Logger
}

// Event is the envelope sent to clients
type Event struct {
	Type   string      `json:"type"`
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			h.logger.Debug("ws client connected", zap.Int("clients", h.count()))

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Publish queues an event for broadcast without blocking the caller.
func (h *Hub) Publish(action string, payload interface{}) {
	msg, err := json.Marshal(Event{Type: "station_update", Action: action, Data: payload})
	if err != nil {
		h.logger.Warn("failed to encode ws event", zap.String("action", action), zap.Error(err))
		return
	}
	go func() {
		h.Broadcast <- msg
	}()
}

func (h *Hub) count() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}
