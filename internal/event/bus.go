// Package event provides a synchronous in-process publish/subscribe bus.
//
// The bus is the notification channel between the scene manager, the
// lifecycle driver, the transition animator and anything else that wants
// to observe scene lifecycle changes. Dispatch is synchronous and happens
// in subscriber registration order; there is no buffering and no delivery
// after the Publish call returns.
package event

import (
	"log"
	"sync"
	"time"
)

// Envelope wraps a published payload with its topic and publish time.
type Envelope struct {
	Topic     string
	Data      any
	Timestamp time.Time
}

// Handler receives published envelopes.
type Handler func(e Envelope)

type subscription struct {
	id int
	fn Handler
}

// Bus is a topic-keyed pub/sub channel. The zero value is not usable;
// create one with NewBus. Safe for concurrent use: the transition
// animator publishes from its own timer goroutine.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Subscribe registers fn for topic and returns a handle that removes
// exactly this registration. Calling the handle more than once is a no-op.
func (b *Bus) Subscribe(topic string, fn Handler) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i, s := range list {
			if s.id == id {
				b.subs[topic] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish dispatches data to every handler currently subscribed to topic,
// in registration order. Dispatch runs over a snapshot of the subscriber
// list, so a handler unsubscribing (or subscribing) during dispatch does
// not affect the current delivery. A panicking handler is logged and does
// not prevent the remaining handlers from running.
func (b *Bus) Publish(topic string, data any) {
	b.mu.Lock()
	snapshot := make([]subscription, len(b.subs[topic]))
	copy(snapshot, b.subs[topic])
	b.mu.Unlock()

	e := Envelope{Topic: topic, Data: data, Timestamp: time.Now()}
	for _, s := range snapshot {
		dispatch(topic, s.fn, e)
	}
}

// SubscriberCount reports how many handlers are registered for topic.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}

func dispatch(topic string, fn Handler, e Envelope) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event: handler for %q panicked: %v", topic, r)
		}
	}()
	fn(e)
}
