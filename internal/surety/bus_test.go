package surety_test

import (
	"testing"

	"github.com/half-nothing/simple-surety/internal/base"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/stretchr/testify/assert"
)

func TestEventBusFiltersKinds(t *testing.T) {
	bus := surety.NewEventBus(base.NewLogger())
	defer bus.Close()

	all := bus.Subscribe()
	requests := bus.Subscribe(OracleRequested)

	bus.Publish(&Observation{ID: 1, Kind: AirlineFunded})
	bus.Publish(&Observation{ID: 2, Kind: OracleRequested})

	assert.Equal(t, uint(1), (<-all.C()).ID)
	assert.Equal(t, uint(2), (<-all.C()).ID)
	assert.Equal(t, uint(2), (<-requests.C()).ID)
	assert.Len(t, requests.C(), 0)
}

func TestEventBusDropsWhenFull(t *testing.T) {
	bus := surety.NewEventBus(base.NewLogger())
	sub := bus.Subscribe()

	for i := 0; i < global.EventBusBufferSize+10; i++ {
		bus.Publish(&Observation{ID: uint(i), Kind: VoteRecorded})
	}
	assert.Len(t, sub.C(), global.EventBusBufferSize)

	bus.Close()
	received := 0
	for range sub.C() {
		received++
	}
	assert.Equal(t, global.EventBusBufferSize, received)

	// closing twice and subscribing after close are harmless
	sub.Close()
	bus.Close()
	_, open := <-bus.Subscribe().C()
	assert.False(t, open)
}
