package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishDispatchesInOrder(t *testing.T) {
	b := NewBus()
	var got []int

	b.Subscribe("tick", func(e Envelope) { got = append(got, 1) })
	b.Subscribe("tick", func(e Envelope) { got = append(got, 2) })
	b.Subscribe("tick", func(e Envelope) { got = append(got, 3) })

	b.Publish("tick", nil)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestBus_EnvelopeCarriesTopicAndData(t *testing.T) {
	b := NewBus()
	var got Envelope

	b.Subscribe("spawn", func(e Envelope) { got = e })
	b.Publish("spawn", 42)

	assert.Equal(t, "spawn", got.Topic)
	assert.Equal(t, 42, got.Data)
	assert.False(t, got.Timestamp.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	b := NewBus()
	calls := 0

	unsub := b.Subscribe("tick", func(e Envelope) { calls++ })
	b.Publish("tick", nil)
	unsub()
	b.Publish("tick", nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.SubscriberCount("tick"))
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	b := NewBus()
	b.Subscribe("tick", func(e Envelope) {})
	unsub := b.Subscribe("tick", func(e Envelope) {})

	unsub()
	unsub()

	assert.Equal(t, 1, b.SubscriberCount("tick"))
}

func TestBus_UnsubscribeDuringDispatchDoesNotAffectCurrentDelivery(t *testing.T) {
	b := NewBus()
	var got []string
	var unsubSecond func()

	b.Subscribe("tick", func(e Envelope) {
		got = append(got, "first")
		unsubSecond()
	})
	unsubSecond = b.Subscribe("tick", func(e Envelope) {
		got = append(got, "second")
	})

	// The snapshot taken at publish time still includes the second
	// handler even though the first one removed it mid-dispatch.
	b.Publish("tick", nil)
	assert.Equal(t, []string{"first", "second"}, got)

	b.Publish("tick", nil)
	assert.Equal(t, []string{"first", "second", "first"}, got)
}

func TestBus_SubscribeDuringDispatchNotCalledThisDispatch(t *testing.T) {
	b := NewBus()
	lateCalls := 0

	b.Subscribe("tick", func(e Envelope) {
		b.Subscribe("tick", func(e Envelope) { lateCalls++ })
	})

	b.Publish("tick", nil)
	assert.Equal(t, 0, lateCalls)

	b.Publish("tick", nil)
	assert.Equal(t, 1, lateCalls)
}

func TestBus_PanickingHandlerIsIsolated(t *testing.T) {
	b := NewBus()
	calls := 0

	b.Subscribe("tick", func(e Envelope) { panic("boom") })
	b.Subscribe("tick", func(e Envelope) { calls++ })

	assert.NotPanics(t, func() { b.Publish("tick", nil) })
	assert.Equal(t, 1, calls)
}

func TestBus_TopicsAreIndependent(t *testing.T) {
	b := NewBus()
	aCalls, bCalls := 0, 0

	b.Subscribe("a", func(e Envelope) { aCalls++ })
	b.Subscribe("b", func(e Envelope) { bCalls++ })

	b.Publish("a", nil)
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 0, bCalls)
}
