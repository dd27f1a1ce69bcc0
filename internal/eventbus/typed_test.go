package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedBus_PublishSubscribe(t *testing.T) {
	bus := NewTyped[string]()
	a, b := bus.Subscribe(), bus.Subscribe()
	require.Equal(t, 2, bus.Subscribers())

	bus.Publish("route-1")

	assert.Equal(t, "route-1", <-a)
	assert.Equal(t, "route-1", <-b)
	bus.Unsubscribe(a)
	assert.Equal(t, 1, bus.Subscribers())
	_, open := <-a
	assert.False(t, open)
}

func TestTypedBus_DropsWhenFull(t *testing.T) {
	bus := NewTypedWithBuffer[int](1)
	ch := bus.Subscribe()

	bus.Publish(1)
	bus.Publish(2)

	assert.Equal(t, 1, <-ch)
	assert.Equal(t, uint64(1), bus.Dropped())
}

func TestTypedBus_Close(t *testing.T) {
	bus := NewTyped[int]()
	ch := bus.Subscribe()
	bus.Close()
	bus.Close()

	_, open := <-ch
	assert.False(t, open)
	bus.Publish(3)

	late := bus.Subscribe()
	_, open = <-late
	assert.False(t, open, "subscribing after close yields a closed channel")

	assert.NotPanics(t, func() { bus.Unsubscribe(ch) })
}
