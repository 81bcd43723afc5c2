package ws

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

const (
	sendBufferSize     = 64
	deliveryBufferSize = 256
)

type delivery struct {
	userIDs []string
	payload []byte
}

// Hub tracks live connections per user. All map access happens on the Run
// goroutine; other goroutines talk to it through channels.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	outbound   chan delivery
	done       chan struct{}
	online     atomic.Int64
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		outbound:   make(chan delivery, deliveryBufferSize),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
				}
			}

			h.clients = make(map[string]map[*Client]struct{})
			h.online.Store(0)

			return

		case c := <-h.register:
			set, ok := h.clients[c.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[c.userID] = set
			}

			set[c] = struct{}{}
			h.online.Add(1)

			log.Debug().Str("user_id", c.userID).Msg("WebSocket client registered")

		case c := <-h.unregister:
			h.remove(c)

		case d := <-h.outbound:
			for _, userID := range d.userIDs {
				for c := range h.clients[userID] {
					select {
					case c.send <- d.payload:
					default:
						log.Warn().Str("user_id", userID).Msg("WebSocket client is too slow, dropping connection")
						h.remove(c)
					}
				}
			}
		}
	}
}

// attach hands a client to the Run loop; it fails once the hub has stopped.
func (h *Hub) attach(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) detach(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) remove(c *Client) {
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}

	if _, ok = set[c]; !ok {
		return
	}

	delete(set, c)
	close(c.send)
	h.online.Add(-1)

	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
}

// SendToUsers queues payload for every connection of the given users.
// It never blocks the caller; when the queue is full the payload is dropped.
func (h *Hub) SendToUsers(userIDs []string, payload []byte) {
	if len(userIDs) == 0 {
		return
	}

	select {
	case h.outbound <- delivery{userIDs: userIDs, payload: payload}:
	default:
		log.Warn().Strs("user_ids", userIDs).Msg("WebSocket outbound queue is full, dropping message")
	}
}

// Online reports the number of open connections.
func (h *Hub) Online() int {
	return int(h.online.Load())
}
