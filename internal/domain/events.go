package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageTurned       EventType = "PageTurned"
	EventThresholdCrossed EventType = "ThresholdCrossed"
	EventPagesChanged     EventType = "PagesChanged"
	EventSessionSaved     EventType = "SessionSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageTurnedEvent is emitted when a carousel commits a new focused page
type PageTurnedEvent struct {
	CarouselID string
	Index      int // 1-based
}

func (e PageTurnedEvent) Type() EventType { return EventPageTurned }

// ThresholdCrossedEvent is emitted when a drag first reaches the commit distance
type ThresholdCrossedEvent struct {
	CarouselID string
	Direction  int // -1 back, +1 forward
}

func (e ThresholdCrossedEvent) Type() EventType { return EventThresholdCrossed }

// PagesChangedEvent is emitted when the page directory is rescanned
type PagesChangedEvent struct {
	Dir   string
	Pages []Page
}

func (e PagesChangedEvent) Type() EventType { return EventPagesChanged }

// SessionSavedEvent is emitted after the session file is written
type SessionSavedEvent struct {
	Path string
}

func (e SessionSavedEvent) Type() EventType { return EventSessionSaved }

// ErrorEvent is emitted when a background service fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
