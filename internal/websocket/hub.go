package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"notes-backend/internal/pkg/logger"
	"notes-backend/pkg/events"

	"github.com/redis/go-redis/v9"
)

const clusterChannel = "record_events"

// Hub tracks connected notification clients, keyed by username (a user may
// hold several connections). When a Redis client is supplied, events are also
// relayed through a pub/sub channel so other instances can deliver them.
type Hub struct {
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Username] = append(h.clients[client.Username], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"username": client.Username})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Username]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.Username] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.Username]) == 0 {
					delete(h.clients, client.Username)
					h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"username": client.Username})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a record event to every connected client and, when Redis
// is configured, to the cluster channel for other instances.
func (h *Hub) Broadcast(evt events.BaseEvent) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "event",
		"data": evt,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal broadcast", map[string]interface{}{"error": err.Error()})
		return
	}

	if h.rdb == nil {
		h.broadcastLocal(data)
		return
	}

	// Route through Redis so every instance, this one included, delivers
	// exactly once via its subscriber.
	if err := h.rdb.Publish(context.Background(), clusterChannel, data).Err(); err != nil {
		h.logger.Warn("Hub", "Failed to relay broadcast to Redis", map[string]interface{}{"error": err.Error()})
		h.broadcastLocal(data)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client send buffer full, dropping message", map[string]interface{}{"username": client.Username})
			}
		}
	}
}

func (h *Hub) subscribeToRedis() {
	sub := h.rdb.Subscribe(context.Background(), clusterChannel)
	defer sub.Close()

	for msg := range sub.Channel() {
		h.broadcastLocal([]byte(msg.Payload))
	}
}
