package event

import (
	"sync"
	"time"
)

// Subscription represents an active subscription on a Bus.
type Subscription struct {
	id      uint64
	topic   Topic
	handler Handler
	bus     *Bus
}

// Topic returns the subscribed topic.
func (s *Subscription) Topic() Topic {
	return s.topic
}

// Cancel removes the subscription from its bus. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.bus != nil {
		s.bus.remove(s.id)
	}
}

// Bus dispatches events to subscribers synchronously, in registration order.
type Bus struct {
	mu     sync.Mutex
	subs   []*Subscription
	nextID uint64
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for a topic. WildcardAll matches every topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{
		id:      b.nextID,
		topic:   topic,
		handler: handler,
		bus:     b,
	}
	b.subs = append(b.subs, sub)
	return sub
}

// Publish delivers an event to all matching subscribers.
// The subscriber list is copied first so a handler may cancel itself
// (or register new handlers) during dispatch.
func (b *Bus) Publish(topic Topic, payload any) {
	ev := Event{
		Topic:   topic,
		Payload: payload,
		Time:    time.Now(),
	}

	b.mu.Lock()
	matched := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.topic == topic || sub.topic == WildcardAll {
			matched = append(matched, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range matched {
		sub.handler(ev)
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Clear cancels every subscription on the bus.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = nil
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
