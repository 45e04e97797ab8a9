// Package surety implements the serialized insurance core.
//
// Every mutating operation takes the writer lock and runs inside one database
// transaction, so mutations are atomic and totally ordered. Observations raised
// by an operation are journaled in the same transaction and published to the
// EventBus only after commit. Reads go straight to the store without the lock.
package surety

import (
	"errors"
	"fmt"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/jonboulle/clockwork"
	"sync"
	"time"
)

type Core struct {
	logger        log.LoggerInterface
	config        *c.SuretyConfig
	operations    *operation.DatabaseOperations
	bus           *EventBus
	clock         clockwork.Clock
	indexSource   IndexSource
	administrator Identity
	mu            sync.Mutex
	// pruneMu keeps concurrent prunes from archiving the same batch twice
	pruneMu sync.Mutex
}

type Option func(core *Core)

func WithClock(clock clockwork.Clock) Option {
	return func(core *Core) { core.clock = clock }
}

func WithIndexSource(source IndexSource) Option {
	return func(core *Core) { core.indexSource = source }
}

// NewCore builds the core and bootstraps persisted state: both operational flags
// exist and the configured first airline is registered.
func NewCore(
	logger log.LoggerInterface,
	config *c.SuretyConfig,
	operations *operation.DatabaseOperations,
	bus *EventBus,
	options ...Option,
) (*Core, error) {
	core := &Core{
		logger:        logger,
		config:        config,
		operations:    operations,
		bus:           bus,
		clock:         clockwork.NewRealClock(),
		indexSource:   NewRandomIndexSource(),
		administrator: NewIdentity(config.Administrator),
	}
	for _, option := range options {
		option(core)
	}
	if err := core.bootstrap(); err != nil {
		return nil, fmt.Errorf("error occurred while bootstrapping surety core: %w", err)
	}
	return core, nil
}

func (core *Core) bootstrap() error {
	firstAirline := NewIdentity(core.config.FirstAirline)
	return core.mutate("", func(tx *txContext) error {
		flags, err := tx.ops.GovernanceOperation().GetOperationalFlags()
		if err != nil {
			return err
		}
		for _, ledger := range Ledgers {
			found := false
			for _, flag := range flags {
				if flag.Ledger == string(ledger) {
					found = true
					break
				}
			}
			if !found {
				if err := tx.ops.GovernanceOperation().SetOperational(string(ledger), true); err != nil {
					return err
				}
			}
		}

		airline, err := tx.ops.AirlineOperation().GetAirline(firstAirline.String())
		if errors.Is(err, operation.ErrAirlineNotFound) {
			airline = &operation.Airline{Identity: firstAirline.String()}
		} else if err != nil {
			return err
		}
		if airline.IsRegistered {
			return nil
		}
		airline.IsRegistered = true
		airline.RegisteredBy = core.administrator.String()
		if err := tx.ops.AirlineOperation().SaveAirline(airline); err != nil {
			return err
		}
		core.logger.InfoF("First airline %s registered", firstAirline)
		tx.emit(NewAirlineRegistered(core.administrator, firstAirline, 0))
		return nil
	})
}

func (core *Core) Administrator() Identity { return core.administrator }

func (core *Core) Bus() *EventBus { return core.bus }

func (core *Core) Now() time.Time { return core.clock.Now() }

type txContext struct {
	ops          *operation.DatabaseOperations
	now          time.Time
	observations []*Observation
}

func (tx *txContext) emit(observation *Observation) {
	observation.At = tx.now
	tx.observations = append(tx.observations, observation)
}

// mutate runs fc under the writer lock inside one transaction.
// When ledger is not empty the operation is rejected while that ledger is paused.
func (core *Core) mutate(ledger Ledger, fc func(tx *txContext) error) error {
	core.mu.Lock()
	defer core.mu.Unlock()

	var committed []*operation.Event
	err := core.operations.Transaction(func(ops *operation.DatabaseOperations) error {
		tx := &txContext{ops: ops, now: core.clock.Now().UTC()}
		if ledger != "" {
			if err := requireOperational(tx, ledger); err != nil {
				return err
			}
		}
		if err := fc(tx); err != nil {
			return err
		}
		events := make([]*operation.Event, 0, len(tx.observations))
		for _, observation := range tx.observations {
			events = append(events, operation.NewEvent(observation))
		}
		if err := ops.EventOperation().SaveEvents(events); err != nil {
			return err
		}
		committed = events
		return nil
	})
	if err != nil {
		return err
	}

	for _, event := range committed {
		core.bus.Publish(event.Observation())
	}
	return nil
}
