// Package event provides a small typed event bus for editor notifications.
//
// Delivery is synchronous and in registration order. Handlers must not
// block; they receive a fully-formed snapshot payload and cannot veto the
// operation that produced the event.
package event

import "time"

// Topic identifies the kind of event using dot notation.
type Topic string

// Event topics published by the editor session.
const (
	// TopicStateChanged is published after every state-changing call.
	TopicStateChanged Topic = "editor.state.changed"

	// TopicDocumentCreated is published when a document is created.
	TopicDocumentCreated Topic = "document.created"

	// TopicDocumentDeleted is published when a document is deleted.
	TopicDocumentDeleted Topic = "document.deleted"

	// TopicDocumentRenamed is published when a document is renamed.
	TopicDocumentRenamed Topic = "document.renamed"

	// TopicHistoryApplied is published after an undo or redo takes effect.
	TopicHistoryApplied Topic = "history.applied"
)

// WildcardAll subscribes a handler to every topic.
const WildcardAll Topic = "*"

// Event is the structure passed to subscribers.
type Event struct {
	// Topic is the event kind.
	Topic Topic

	// Payload carries event-specific data.
	Payload any

	// Time is when the event was published.
	Time time.Time
}

// Handler is the function signature for event subscribers.
type Handler func(Event)
