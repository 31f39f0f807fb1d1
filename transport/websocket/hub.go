package websocket

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type connResolver interface {
	ConnOf(playerID string) (string, bool)
}

type client struct {
	id     string
	outbox chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id string, outboxSize int) *client {
	return &client{
		id:     id,
		outbox: make(chan []byte, outboxSize),
		done:   make(chan struct{}),
	}
}

func (that *client) close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// Hub routes notifications to connection outboxes. Delivery never blocks:
// a full or closed outbox drops the message.
type Hub struct {
	logger   *slog.Logger
	resolver connResolver

	clientsMutex sync.RWMutex
	clients      map[string]*client
}

func NewHub(logger *slog.Logger, resolver connResolver) *Hub {
	return &Hub{
		logger:   logger,
		resolver: resolver,

		clients: make(map[string]*client),
	}
}

func (that *Hub) add(c *client) {
	that.clientsMutex.Lock()
	that.clients[c.id] = c
	that.clientsMutex.Unlock()
}

func (that *Hub) remove(connID string) {
	that.clientsMutex.Lock()
	c, ok := that.clients[connID]
	delete(that.clients, connID)
	that.clientsMutex.Unlock()

	if ok {
		c.close()
	}
}

// Clients - number of open connections.
func (that *Hub) Clients() int {
	that.clientsMutex.RLock()
	defer that.clientsMutex.RUnlock()

	return len(that.clients)
}

// Send - player addressed notifications go to the player's current connection.
func (that *Hub) Send(notifications []entity.Notification) {
	log := that.logger.With("method", "Send")

	for _, notification := range notifications {
		data, err := encode(notification.Action, notification.Payload)
		if err != nil {
			log.Error("failed to encode notification", "action", notification.Action, "error", err)
			continue
		}

		switch {
		case notification.Broadcast:
			that.clientsMutex.RLock()
			for _, c := range that.clients {
				that.enqueue(c, notification.Action, data)
			}
			that.clientsMutex.RUnlock()
		case notification.ConnID != "":
			that.deliver(notification.ConnID, notification.Action, data)
		case notification.PlayerID != "":
			connID, ok := that.resolver.ConnOf(notification.PlayerID)
			if !ok {
				log.Debug("player is offline", "playerID", notification.PlayerID, "action", notification.Action)
				continue
			}

			that.deliver(connID, notification.Action, data)
		}
	}
}

func (that *Hub) deliver(connID, action string, data []byte) {
	that.clientsMutex.RLock()
	c, ok := that.clients[connID]
	that.clientsMutex.RUnlock()

	if !ok {
		that.logger.Debug("connection not found", "method", "deliver", "connID", connID, "action", action)
		return
	}

	that.enqueue(c, action, data)
}

func (that *Hub) enqueue(c *client, action string, data []byte) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.outbox <- data:
	default:
		that.logger.Warn("outbox full, message dropped", "method", "enqueue", "connID", c.id, "action", action)
	}
}
