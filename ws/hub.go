package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/necropharaoh/qr-menu-system/services"
)

// Hub fans state-change events out to named rooms: "admin" for the staff
// dashboard, "table-{id}" for each seated table. It implements
// services.Publisher so the business logic never sees the transport.
type Hub struct {
	rooms      map[string]map[*websocket.Conn]bool
	broadcast  chan envelope
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn *websocket.Conn
	Room string
}

// envelope is the wire format: {event, data, timestamp}.
type envelope struct {
	Room      string    `json:"-"`
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan envelope),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run owns the room map; start it once before serving connections.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.rooms[sub.Room] == nil {
				h.rooms[sub.Room] = make(map[*websocket.Conn]bool)
			}
			h.rooms[sub.Room][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.rooms[sub.Room][sub.Conn]; ok {
				delete(h.rooms[sub.Room], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.rooms[msg.Room] {
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.rooms[msg.Room], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish satisfies services.Publisher. Delivery is at-most-once: a failed
// write evicts the connection and the event is gone.
func (h *Hub) Publish(channel, event string, payload any) {
	h.broadcast <- envelope{
		Room:      channel,
		Event:     event,
		Data:      payload,
		Timestamp: time.Now().UTC(),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// joinMessage is the client's hello after the upgrade:
//
//	{"type":"admin-connect"} or {"type":"table-connect","table_id":3}
type joinMessage struct {
	Type    string `json:"type"`
	TableID uint   `json:"table_id"`
}

// WS route: GET /ws
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	go h.listen(conn)
}

// listen reads join messages from the client and keeps the connection's
// room memberships until it drops.
func (h *Hub) listen(conn *websocket.Conn) {
	var joined []string
	defer func() {
		for _, room := range joined {
			h.unregister <- subscription{Conn: conn, Room: room}
		}
		if len(joined) == 0 {
			conn.Close()
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg joinMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("ws invalid payload: %v", err)
			continue
		}

		var room string
		switch msg.Type {
		case "admin-connect":
			room = services.ChannelAdmin
		case "table-connect":
			if msg.TableID == 0 {
				continue
			}
			room = services.TableChannel(msg.TableID)
		default:
			continue
		}

		h.register <- subscription{Conn: conn, Room: room}
		joined = append(joined, room)
	}
}
