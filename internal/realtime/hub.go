// Package realtime pushes full collection snapshots to WebSocket
// subscribers. There is no diffing and no ordering guarantee between
// collections: every mutation re-sends the whole collection and the last
// snapshot wins.
package realtime

import (
	"context"
	"sync"
	"time"

	"electromed-tracker/internal/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// sendBuffer bounds each client's outbox. A client that cannot keep up
	// with snapshot volume is dropped, not back-pressured.
	sendBuffer = 8
)

// Known collection names.
const (
	CollectionShipments = "shipments"
	CollectionServices  = "services"
)

// SnapshotFunc produces the current full state of a collection, already
// JSON-encoded.
type SnapshotFunc func(ctx context.Context) ([]byte, error)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans collection snapshots out to subscribed clients.
type Hub struct {
	mu      sync.RWMutex
	sources map[string]SnapshotFunc
	clients map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		sources: make(map[string]SnapshotFunc),
		clients: make(map[string]map[*client]struct{}),
	}
}

// RegisterSource binds a collection name to its snapshot producer.
func (h *Hub) RegisterSource(collection string, fn SnapshotFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sources[collection] = fn
}

// Known reports whether a collection name has a registered source.
func (h *Hub) Known(collection string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.sources[collection]
	return ok
}

// Subscribe attaches a WebSocket connection to a collection. The client
// receives the current snapshot immediately, then one snapshot per mutation.
// Subscribe takes ownership of the connection and returns once the pumps are
// running.
func (h *Hub) Subscribe(ctx context.Context, collection string, conn *websocket.Conn) error {
	h.mu.RLock()
	source, ok := h.sources[collection]
	h.mu.RUnlock()
	if !ok {
		return ErrUnknownCollection
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	snapshot, err := source(ctx)
	if err != nil {
		return err
	}
	c.send <- snapshot

	h.mu.Lock()
	if h.clients[collection] == nil {
		h.clients[collection] = make(map[*client]struct{})
	}
	h.clients[collection][c] = struct{}{}
	h.mu.Unlock()

	logger.Debug("Realtime subscriber attached",
		zap.String("collection", collection),
	)

	go h.writePump(collection, c)
	go h.readPump(collection, c)
	return nil
}

// Broadcast re-snapshots a collection and queues it to every subscriber.
// Clients whose outbox is full are disconnected.
func (h *Hub) Broadcast(ctx context.Context, collection string) {
	h.mu.RLock()
	source, ok := h.sources[collection]
	subscribers := len(h.clients[collection])
	h.mu.RUnlock()

	if !ok || subscribers == 0 {
		return
	}

	snapshot, err := source(ctx)
	if err != nil {
		logger.Error("Snapshot failed, broadcast skipped",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return
	}

	// Sends happen under the read lock and channel closes under the write
	// lock, so a send can never race a close.
	h.mu.RLock()
	var slow []*client
	for c := range h.clients[collection] {
		select {
		case c.send <- snapshot:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.drop(collection, c)
		logger.Warn("Dropped slow realtime subscriber",
			zap.String("collection", collection),
		)
	}
}

// ShipmentsChanged lets the hub serve as the shipment service's Notifier.
func (h *Hub) ShipmentsChanged(ctx context.Context) {
	h.Broadcast(ctx, CollectionShipments)
}

// ServicesChanged notifies services-catalog subscribers.
func (h *Hub) ServicesChanged(ctx context.Context) {
	h.Broadcast(ctx, CollectionServices)
}

func (h *Hub) drop(collection string, c *client) {
	h.mu.Lock()
	if subs, ok := h.clients[collection]; ok {
		if _, present := subs[c]; present {
			delete(subs, c)
			close(c.send)
		}
	}
	h.mu.Unlock()
}

func (h *Hub) writePump(collection string, c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				h.drop(collection, c)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.drop(collection, c)
				return
			}
		}
	}
}

// readPump discards inbound frames; the stream is one-way. It exists to
// notice closes and to keep the pong deadline fresh.
func (h *Hub) readPump(collection string, c *client) {
	defer func() {
		h.drop(collection, c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
