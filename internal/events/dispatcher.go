package events

import (
	"context"
	"sync"
)

// EventHandler processes a single published event.
type EventHandler func(context.Context, Event) error

// Dispatcher decouples the services that raise portal events from the
// notification side that consumes them.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

type inMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

// NewInMemoryDispatcher returns a synchronous single-process dispatcher.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{handlers: make(map[EventType][]EventHandler)}
}

// Publish delivers the event to every subscriber in registration order.
// A failing handler does not block the others; publication itself never
// fails so domain operations are not coupled to notification outcomes.
func (d *inMemoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	subscribers := make([]EventHandler, len(d.handlers[event.Type]))
	copy(subscribers, d.handlers[event.Type])
	d.mu.RUnlock()

	for _, handle := range subscribers {
		_ = handle(ctx, event)
	}
	return nil
}

func (d *inMemoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	d.mu.Unlock()
}
