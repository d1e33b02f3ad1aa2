package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	clientSendBuf = 64
	maxFrameSize  = 4096
	writeDeadline = 5 * time.Second
	pongWait      = 60 * time.Second
	pingInterval  = 45 * time.Second
)

// Broadcaster is what the HTTP layer publishes match events through.
type Broadcaster interface {
	Broadcast(env Envelope)
}

// Nop discards everything. Used when the chat hub is disabled.
type Nop struct{}

func (Nop) Broadcast(Envelope) {}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

// Hub relays chat messages and match events to every connected WebSocket client.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewHub builds a hub. allowedOrigin "" or "*" accepts any origin.
func NewHub(allowedOrigin string) *Hub {
	h := &Hub{clients: make(map[*client]struct{})}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if allowedOrigin == "" || allowedOrigin == "*" || origin == "" {
				return true
			}
			return strings.EqualFold(origin, allowedOrigin)
		},
	}
	return h
}

// Broadcast enqueues env to every client without blocking. Clients whose buffer
// is full are disconnected.
func (h *Hub) Broadcast(env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		log.Printf("chat: marshal error: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("chat: dropping slow client %s", c.conn.RemoteAddr())
			delete(h.clients, c)
			c.conn.Close()
		}
	}
}

// ClientCount reports how many clients are connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// HandleWS upgrades the request and starts the client pumps.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chat: upgrade failed: %v", err)
		return
	}

	cl := &client{
		conn: conn,
		send: make(chan []byte, clientSendBuf),
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
	log.Printf("chat: client connected %s", conn.RemoteAddr())

	go h.writePump(cl)
	go h.readPump(cl)
}

// writePump owns the connection: on exit it unregisters the client and closes it.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		h.removeClient(c)
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.done:
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump relays inbound chat messages. It never closes c.send.
func (h *Hub) readPump(c *client) {
	defer close(c.done)

	c.conn.SetReadLimit(maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var in inbound
		if err := json.Unmarshal(data, &in); err != nil {
			continue
		}
		if in.Type != TypeChatMessage || strings.TrimSpace(in.Body) == "" {
			continue
		}
		h.Broadcast(chatEnvelope(in))
	}
}

func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		log.Printf("chat: client disconnected %s", c.conn.RemoteAddr())
	}
}
