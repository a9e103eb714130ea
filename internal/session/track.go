package session

import (
	"github.com/sirupsen/logrus"

	"pageswipe/internal/eventbus"
)

// Track records every page turn published on bus into store. It returns
// the unsubscribe function.
func Track(bus eventbus.EventBus, store *Store, log logrus.FieldLogger) func() {
	return bus.Subscribe(eventbus.EventPageTurned, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.PageTurnedEvent)
		if !ok {
			return
		}
		if err := store.Record(ev.Index); err != nil {
			log.WithError(err).WithField("path", store.Path()).Warn("session save failed")
			bus.Publish(eventbus.ErrorEvent{Message: "could not save session", Err: err})
			return
		}
		bus.Publish(eventbus.SessionSavedEvent{Path: store.Path()})
	})
}
