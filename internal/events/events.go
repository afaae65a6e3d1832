package events

import (
	"sync"
	"time"
)

// Event types published after successful store writes. Subscribers treat
// them as an instruction to refetch; payloads stay empty because
// refresh-after-write is always a full refetch, not an incremental merge.
const (
	ReservationsChanged = "reservations.changed"
	TodosChanged        = "todos.changed"
	WaitlistChanged     = "waitlist.changed"
)

// Event represents a lightweight domain event.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// EventHandler reacts to an event.
type EventHandler func(event Event)

// Bus provides in-process pub/sub for events.
type Bus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *Bus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	// Handlers run synchronously; caller decides concurrency model.
	for _, handler := range handlers {
		handler(event)
	}
}
