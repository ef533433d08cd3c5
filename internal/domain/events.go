package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIndexChanged   EventType = "IndexChanged"
	EventChapterUpdated EventType = "ChapterUpdated"
	EventBookOpened     EventType = "BookOpened"
	EventBookClosed     EventType = "BookClosed"
	EventFlipStarted    EventType = "FlipStarted"
	EventFlipFailed     EventType = "FlipFailed"
	EventDragStarted    EventType = "DragStarted"
	EventDragResolved   EventType = "DragResolved"
	EventSoundCue       EventType = "SoundCue"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventError          EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IndexChangedEvent is emitted after a completed flip, once the page
// index has been updated
type IndexChangedEvent struct {
	NewIndex int
}

func (e IndexChangedEvent) Type() EventType { return EventIndexChanged }

// ChapterUpdatedEvent is emitted after a completed flip so chapter-aware
// UI (TOC highlight, chapter label) can recompute from the new index
type ChapterUpdatedEvent struct{}

func (e ChapterUpdatedEvent) Type() EventType { return EventChapterUpdated }

// BookOpenedEvent is emitted when a boundary flip opens the book
type BookOpenedEvent struct{}

func (e BookOpenedEvent) Type() EventType { return EventBookOpened }

// BookClosedEvent is emitted when a boundary flip closes the book
type BookClosedEvent struct{}

func (e BookClosedEvent) Type() EventType { return EventBookClosed }

// FlipStartedEvent is emitted when a discrete flip begins animating
type FlipStartedEvent struct {
	Direction Direction
	Target    int
}

func (e FlipStartedEvent) Type() EventType { return EventFlipStarted }

// FlipFailedEvent is emitted when the frame animator fails and the
// engine recovers without updating the index
type FlipFailedEvent struct {
	Err error
}

func (e FlipFailedEvent) Type() EventType { return EventFlipFailed }

// DragStartedEvent is emitted when a corner drag gesture begins
type DragStartedEvent struct {
	Direction Direction
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragResolvedEvent is emitted when a drag gesture finishes
type DragResolvedEvent struct {
	Completed bool
}

func (e DragResolvedEvent) Type() EventType { return EventDragResolved }

// SoundCueEvent is emitted when a sound effect should play
type SoundCueEvent struct {
	Cue  SoundCue
	Rate float64
}

func (e SoundCueEvent) Type() EventType { return EventSoundCue }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
