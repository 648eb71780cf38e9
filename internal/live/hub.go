package live

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Event types
const (
	EventHeadCount          = "headcount"
	EventReservationCreated = "reservation.created"
	EventReservationUpdated = "reservation.updated"
	EventReservationDeleted = "reservation.deleted"
)

// Event is one message fanned out to stream subscribers.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	At   time.Time   `json:"timestamp"`
}

// CountMessage is the payload streamed to the public live counter.
type CountMessage struct {
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// Subscriber receives events on C until it is unsubscribed.
type Subscriber struct {
	C      <-chan Event
	ch     chan Event
	filter func(Event) bool
}

// Hub keeps the set of stream subscribers and broadcasts events to them.
// A subscriber whose buffer is full misses the event; Publish never blocks.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	buffer      int
	closed      bool
	log         *logrus.Logger
}

// NewHub creates a hub whose subscribers buffer up to buffer events.
func NewHub(buffer int, log *logrus.Logger) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
		buffer:      buffer,
		log:         log,
	}
}

// Subscribe registers a subscriber. A nil filter accepts every event.
// After Close the returned subscriber's channel is already closed.
func (h *Hub) Subscribe(filter func(Event) bool) *Subscriber {
	ch := make(chan Event, h.buffer)
	sub := &Subscriber{C: ch, ch: ch, filter: filter}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return sub
	}
	h.subscribers[sub] = struct{}{}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.log.WithField("subscribers", count).Debug("stream subscriber registered")
	return sub
}

// Unsubscribe removes a subscriber and closes its channel. Calling it twice is safe.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.ch)
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.log.WithField("subscribers", count).Debug("stream subscriber removed")
}

// Publish delivers ev to every interested subscriber.
func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers {
		if sub.filter != nil && !sub.filter(ev) {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			h.log.WithField("event", ev.Type).Warn("stream subscriber lagging, event dropped")
		}
	}
}

// Close ends every subscription so open streams return. It runs on server
// shutdown; later calls are no-ops.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	count := len(h.subscribers)
	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		close(sub.ch)
	}
	h.mu.Unlock()

	h.log.WithField("subscribers", count).Info("stream hub closed")
}

// Len returns the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// OnlyHeadCount is a filter for the public counter stream.
func OnlyHeadCount(ev Event) bool {
	return ev.Type == EventHeadCount
}
