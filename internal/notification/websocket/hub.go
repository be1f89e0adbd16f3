package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/gauravmalhotra04/raiden-ai/internal/model"
	"github.com/gauravmalhotra04/raiden-ai/internal/notification"
	"github.com/gauravmalhotra04/raiden-ai/pkg/log"
)

const (
	defaultSendBuffer   = 32
	defaultWriteTimeout = 10 * time.Second
	defaultPongWait     = 60 * time.Second
	maxMessageSize      = 4096
)

// SnapshotFunc returns the tasks sent to a client right after it connects.
// It runs while broadcasts are held back, so it must not publish to the hub.
type SnapshotFunc func(ctx context.Context) ([]model.Task, error)

// Config tunes the hub. Zero values use defaults.
type Config struct {
	SendBuffer     int
	WriteTimeout   time.Duration
	PongWait       time.Duration
	AllowedOrigins []string
	Snapshot       SnapshotFunc
}

// Hub keeps the set of connected push listeners and broadcasts events to
// them. Each client has its own bounded queue; a client that cannot keep up
// loses messages instead of slowing everyone else down.
type Hub struct {
	l        log.Logger
	cfg      Config
	upgrader gorillaws.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool
}

var _ notification.Sink = (*Hub)(nil)

// New creates a Hub with no clients.
func New(l log.Logger, cfg Config) *Hub {
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = defaultSendBuffer
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = defaultPongWait
	}

	h := &Hub{
		l:       l,
		cfg:     cfg,
		clients: make(map[*client]struct{}),
	}
	h.upgrader = gorillaws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Publish implements notification.Sink. It never blocks on a client.
func (h *Hub) Publish(ctx context.Context, event notification.Event) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	dropped := 0
	for c := range h.clients {
		if !c.enqueue(msg) {
			dropped++
		}
	}
	if dropped > 0 {
		h.l.Warnf(ctx, "websocket.Hub.Publish: event=%s dropped for %d slow clients", event.Name, dropped)
	}
	return nil
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Handle upgrades the request and serves the connection until it closes.
func (h *Hub) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "websocket.Hub.Handle: upgrade: %v", err)
		return
	}

	cl := newClient(conn, h.cfg.SendBuffer)
	if !h.register(ctx, cl) {
		_ = conn.Close()
		return
	}
	h.l.Infof(ctx, "websocket.Hub.Handle: client connected from %s", c.ClientIP())

	go h.writePump(cl)
	h.readPump(cl)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := h.clients
	h.clients = make(map[*client]struct{})
	h.mu.Unlock()

	for c := range clients {
		c.shutdown()
	}
}

// register adds c to the broadcast set. The snapshot is read and queued under
// the same lock, so it is the first message and no event published meanwhile
// is missed. A listener may see an update already reflected in its snapshot.
func (h *Hub) register(ctx context.Context, c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	if msg, ok := h.snapshot(ctx); ok {
		c.enqueue(msg)
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) snapshot(ctx context.Context) ([]byte, bool) {
	if h.cfg.Snapshot == nil {
		return nil, false
	}
	tasks, err := h.cfg.Snapshot(ctx)
	if err != nil {
		h.l.Errorf(ctx, "websocket.Hub.Handle: snapshot: %v", err)
		return nil, false
	}
	msg, err := json.Marshal(notification.Event{
		Name: notification.EventInitialTasks,
		Data: notification.TaskListPayload{Tasks: notification.NewTaskPayloads(tasks)},
	})
	if err != nil {
		h.l.Errorf(ctx, "websocket.Hub.Handle: marshal snapshot: %v", err)
		return nil, false
	}
	return msg, true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.shutdown()
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range h.cfg.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// readPump discards inbound messages; it exists to process control frames
// and to notice when the peer goes away.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(h.cfg.PongWait * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(gorillaws.TextMessage, msg); err != nil {
				c.shutdown()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(gorillaws.PingMessage, nil); err != nil {
				c.shutdown()
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(
				gorillaws.CloseMessage,
				gorillaws.FormatCloseMessage(gorillaws.CloseGoingAway, ""),
				time.Now().Add(h.cfg.WriteTimeout),
			)
			return
		}
	}
}
