package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/enerscope/enerscope/internal/domain"
	"github.com/enerscope/enerscope/internal/observability/telemetry"
)

// Hub fans each newly settled rendered report out to connected viewers.
// Subscribers only ever receive whole report views; there is no inbound
// protocol beyond connection keep-alive.
type Hub struct {
	// Registered subscribers.
	clients map[*Client]bool

	// Outbound report views.
	broadcast chan []byte

	register   chan *Client
	unregister chan *Client

	log *zap.Logger
	mu  sync.RWMutex
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	// Buffered channel of outbound messages.
	send chan []byte
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		log:        log,
	}
}

// PublishReport implements ports.ReportPublisher.
func (h *Hub) PublishReport(view *domain.ReportView) {
	payload, err := json.Marshal(view)
	if err != nil {
		h.log.Error("Failed to encode report for broadcast", zap.Error(err))
		return
	}
	h.broadcast <- payload
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			telemetry.ReportSubscribers.Set(float64(len(h.clients)))
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			telemetry.ReportSubscribers.Set(float64(len(h.clients)))
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow subscriber; drop it rather than block the hub.
					close(client.send)
					delete(h.clients, client)
				}
			}
			telemetry.ReportSubscribers.Set(float64(len(h.clients)))
			h.mu.Unlock()
		}
	}
}

// AddClient registers a new subscriber connection and services it until it
// closes. Must be called from the websocket handler goroutine.
func (h *Hub) AddClient(conn *websocket.Conn) {
	client := &Client{hub: h, conn: conn, send: make(chan []byte, 8)}
	client.hub.register <- client

	go client.writePump()
	client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		// Subscribers never send data; the read loop only services control
		// frames and detects disconnects.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
