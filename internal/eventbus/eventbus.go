package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"

	"pageswipe/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPageTurned       = domain.EventPageTurned
	EventThresholdCrossed = domain.EventThresholdCrossed
	EventPagesChanged     = domain.EventPagesChanged
	EventSessionSaved     = domain.EventSessionSaved
	EventError            = domain.EventError
)

// Re-export domain event types
type PageTurnedEvent = domain.PageTurnedEvent
type ThresholdCrossedEvent = domain.ThresholdCrossedEvent
type PagesChangedEvent = domain.PagesChangedEvent
type SessionSavedEvent = domain.SessionSavedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers events synchronously, in publish order, on the
// publisher's goroutine. A handler finishes before Publish returns.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	log      logrus.FieldLogger
}

// New creates a new event bus
func New(log logrus.FieldLogger) EventBus {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &bus{
		handlers: make(map[EventType][]subscription),
		log:      log,
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Threshold events follow the pointer, keep them out of the info log
	if event.Type() == EventThresholdCrossed {
		b.log.WithField("event", event.Type()).Debug("publishing event")
	} else {
		b.log.WithField("event", event.Type()).Info("publishing event")
	}

	// Copy so handlers can subscribe or unsubscribe while we iterate
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(s.handler, event)
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithFields(logrus.Fields{
				"event": event.Type(),
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("event handler panic")
		}
	}()
	h(event)
}
