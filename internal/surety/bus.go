package surety

import (
	"context"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"sync"
)

// EventBus fans committed observations out to in-process subscribers.
// Publish never blocks: a subscriber whose buffer is full misses the observation
// and has to catch up from the event journal.
type EventBus struct {
	logger      log.LoggerInterface
	mu          sync.RWMutex
	subscribers map[uint64]*Subscription
	nextId      uint64
	closed      bool
}

type Subscription struct {
	id    uint64
	bus   *EventBus
	kinds map[ObservationKind]bool
	ch    chan *Observation
}

func NewEventBus(logger log.LoggerInterface) *EventBus {
	return &EventBus{
		logger:      logger,
		subscribers: make(map[uint64]*Subscription),
	}
}

// Subscribe registers a subscriber for the given kinds, no kinds means every kind
func (bus *EventBus) Subscribe(kinds ...ObservationKind) *Subscription {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	subscription := &Subscription{
		id:    bus.nextId,
		bus:   bus,
		kinds: make(map[ObservationKind]bool, len(kinds)),
		ch:    make(chan *Observation, global.EventBusBufferSize),
	}
	for _, kind := range kinds {
		subscription.kinds[kind] = true
	}
	bus.nextId++
	if bus.closed {
		close(subscription.ch)
		return subscription
	}
	bus.subscribers[subscription.id] = subscription
	return subscription
}

func (bus *EventBus) Publish(observation *Observation) {
	bus.mu.RLock()
	defer bus.mu.RUnlock()
	if bus.closed {
		return
	}
	for _, subscription := range bus.subscribers {
		if len(subscription.kinds) > 0 && !subscription.kinds[observation.Kind] {
			continue
		}
		select {
		case subscription.ch <- observation:
		default:
			bus.logger.WarnF("EventBus subscriber #%d is full, dropping %s observation #%d",
				subscription.id, observation.Kind, observation.ID)
		}
	}
}

func (bus *EventBus) Close() {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if bus.closed {
		return
	}
	bus.closed = true
	for id, subscription := range bus.subscribers {
		close(subscription.ch)
		delete(bus.subscribers, id)
	}
}

// Invoke closes the bus as a shutdown callback
func (bus *EventBus) Invoke(_ context.Context) error {
	bus.logger.Info("Closing event bus")
	bus.Close()
	return nil
}

// C is closed when the subscription or the bus is closed
func (subscription *Subscription) C() <-chan *Observation { return subscription.ch }

func (subscription *Subscription) Close() {
	bus := subscription.bus
	bus.mu.Lock()
	defer bus.mu.Unlock()
	if _, ok := bus.subscribers[subscription.id]; !ok {
		return
	}
	delete(bus.subscribers, subscription.id)
	close(subscription.ch)
}
