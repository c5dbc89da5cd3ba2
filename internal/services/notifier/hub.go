package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

const defaultSendBufferSize = 16

// Hub implements Dispatcher by broadcasting events to websocket subscribers
type Hub struct {
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	upgrader   websocket.Upgrader

	bufferSize int
	count      atomic.Int64

	mu      sync.Mutex
	running bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a websocket hub. A nil config selects the defaults.
func NewHub(cfg *Config) *Hub {
	bufferSize := defaultSendBufferSize
	if cfg != nil && cfg.SendBufferSize > 0 {
		bufferSize = cfg.SendBufferSize
	}

	return &Hub{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		upgrader:   websocket.Upgrader{},
		bufferSize: bufferSize,
	}
}

// Run processes subscriptions and broadcasts until the context is cancelled
func (h *Hub) Run(ctx context.Context) {
	h.mu.Lock()
	h.running = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.running = false
		h.mu.Unlock()

		for c := range h.clients {
			close(c.send)
			delete(h.clients, c)
		}
		h.count.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Store(int64(len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.count.Store(int64(len(h.clients)))
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Client is too far behind, drop it
					delete(h.clients, c)
					close(c.send)
				}
			}
			h.count.Store(int64(len(h.clients)))
		}
	}
}

// SubscriberCount reports how many subscribers are currently connected
func (h *Hub) SubscriberCount() int {
	return int(h.count.Load())
}

// Publish marshals the event and queues it for broadcast. It never blocks
// on slow subscribers.
func (h *Hub) Publish(ctx context.Context, event *Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	select {
	case h.broadcast <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HandleSubscribe upgrades an HTTP request to a websocket subscription
func (h *Hub) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade subscriber connection: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, h.bufferSize),
	}

	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

// writePump forwards queued events to the websocket connection
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	// Hub closed the channel
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}

// readPump discards inbound messages and unregisters the client on close
func (c *client) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
