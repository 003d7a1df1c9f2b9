package stream

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

const channelPattern = "session:*:events"

// sendBuffer bounds the per-client queue; a client that falls this far
// behind starts losing events.
const sendBuffer = 64

// Hub fans session events out to websocket clients. With a Redis client
// attached, events travel through pub/sub so clients on every instance
// see them.
type Hub struct {
	mu       sync.RWMutex
	watchers map[string]map[*Client]struct{}
	redis    *redis.Client
}

// Client is one websocket subscriber for one session.
type Client struct {
	SessionID string
	Send      chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		watchers: map[string]map[*Client]struct{}{},
		redis:    redisClient,
	}
	if redisClient != nil {
		pubsub := redisClient.PSubscribe(context.Background(), channelPattern)
		// wait for the subscription ack so broadcasts right after startup
		// are not lost
		if _, err := pubsub.Receive(context.Background()); err != nil {
			log.Printf("redis subscribe error: %v", err)
		}
		go h.consume(pubsub)
	}
	return h
}

func (h *Hub) Register(sessionID string) *Client {
	c := &Client{SessionID: sessionID, Send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	set := h.watchers[sessionID]
	if set == nil {
		set = map[*Client]struct{}{}
		h.watchers[sessionID] = set
	}
	set[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set := h.watchers[c.SessionID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.watchers, c.SessionID)
		}
	}
	h.mu.Unlock()
	close(c.Send)
}

// Broadcast delivers a payload to every client watching a session. With
// Redis attached, delivery goes through pub/sub so every instance's
// clients see it exactly once; without Redis it goes straight to local
// clients.
func (h *Hub) Broadcast(sessionID string, payload []byte) {
	if h.redis == nil {
		h.deliver(sessionID, payload)
		return
	}
	if err := h.redis.Publish(context.Background(), sessionChannel(sessionID), payload).Err(); err != nil {
		log.Printf("redis publish error: %v", err)
	}
}

func (h *Hub) deliver(sessionID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.watchers[sessionID] {
		select {
		case c.Send <- payload:
		default:
			// slow client, drop
		}
	}
}

func (h *Hub) consume(pubsub *redis.PubSub) {
	defer pubsub.Close()
	for msg := range pubsub.Channel() {
		h.deliver(sessionIDFromChannel(msg.Channel), []byte(msg.Payload))
	}
}

func sessionChannel(sessionID string) string {
	return "session:" + sessionID + ":events"
}

func sessionIDFromChannel(ch string) string {
	id, ok := strings.CutPrefix(ch, "session:")
	if !ok {
		return ""
	}
	id, ok = strings.CutSuffix(id, ":events")
	if !ok {
		return ""
	}
	return id
}
