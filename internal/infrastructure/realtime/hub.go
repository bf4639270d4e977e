// Package realtime keeps the set of connected websocket clients and fans
// broadcast events out to them.
package realtime

import (
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/luminosmc/community-api/internal/core/domain"
)

// Stats receives hub activity. Implementations must be safe for concurrent use.
type Stats interface {
	Connected(n int)
	Broadcast(eventType string, dropped int)
}

type nopStats struct{}

func (nopStats) Connected(int) {}
func (nopStats) Broadcast(string, int) {}

// Hub is the process-wide registry of realtime clients. It starts empty.
// Delivery is at most once: a client whose buffer is full misses the event.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	stats   Stats
	log     zerolog.Logger
}

func NewHub(stats Stats, log zerolog.Logger) *Hub {
	if stats == nil {
		stats = nopStats{}
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		stats:   stats,
		log:     log,
	}
}

// Connect registers a new open client for conn.
func (h *Hub) Connect(conn *websocket.Conn) *Client {
	c := newClient(h, conn)

	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.stats.Connected(n)
	h.log.Debug().Uint64("client_id", c.id).Int("clients", n).Msg("realtime client connected")
	return c
}

// Disconnect removes c and closes its send buffer. Calling it again for the
// same client is a no-op.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	close(c.send)
	n := len(h.clients)
	h.mu.Unlock()

	h.stats.Connected(n)
	h.log.Debug().Uint64("client_id", c.id).Int("clients", n).Msg("realtime client disconnected")
}

// Broadcast encodes event once and queues it for every registered client.
// It never blocks on a slow client and never reports delivery failures.
func (h *Hub) Broadcast(event domain.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("type", string(event.Type)).Msg("encode broadcast event")
		return
	}

	dropped := 0
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			dropped++
		}
	}
	h.mu.RUnlock()

	if dropped > 0 {
		h.log.Warn().Str("type", string(event.Type)).Int("dropped", dropped).Msg("slow realtime clients skipped")
	}
	h.stats.Broadcast(string(event.Type), dropped)
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll disconnects every client. Their write pumps send a close frame
// and exit.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.Disconnect(c)
	}
}
