// Package oracle_relay runs a pool of simulated oracles inside the server process.
// Each relay oracle answers every announced request for an index it holds with the
// configured status code, or a random one.
package oracle_relay

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
)

var ErrRelayNotRunning = errors.New("oracle relay is not running")

type Relay struct {
	logger       log.LoggerInterface
	config       *c.OracleRelayConfig
	suretyConfig *c.SuretyConfig
	core         *surety.Core

	mu         sync.RWMutex
	holders    map[int][]Identity
	oracles    int
	statusCode StatusCode
	random     bool

	subscription *surety.Subscription
	done         chan struct{}
}

func NewRelay(
	logger log.LoggerInterface,
	config *c.OracleRelayConfig,
	suretyConfig *c.SuretyConfig,
	core *surety.Core,
) *Relay {
	return &Relay{
		logger:       logger,
		config:       config,
		suretyConfig: suretyConfig,
		core:         core,
		holders:      make(map[int][]Identity),
		statusCode:   StatusCode(config.StatusCode),
		random:       config.RandomStatus,
		done:         make(chan struct{}),
	}
}

func (relay *Relay) identity(i int) Identity {
	return NewIdentity(fmt.Sprintf("%s%d", relay.config.IdentityHead, i))
}

// ensureOracle reuses the indexes of an oracle registered by an earlier run
func (relay *Relay) ensureOracle(identity Identity) ([3]int, error) {
	indexes, err := relay.core.OracleIndexes(identity)
	if err == nil {
		return indexes, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return indexes, err
	}
	return relay.core.RegisterOracle(identity, Amount(relay.suretyConfig.OracleFeeValue))
}

// Start registers the relay oracles and begins answering requests
func (relay *Relay) Start() error {
	relay.mu.Lock()
	for i := 0; i < relay.config.OracleCount; i++ {
		identity := relay.identity(i)
		indexes, err := relay.ensureOracle(identity)
		if err != nil {
			relay.mu.Unlock()
			return fmt.Errorf("register relay oracle %s: %w", identity, err)
		}
		seen := make(map[int]bool, 3)
		for _, index := range indexes {
			if seen[index] {
				continue
			}
			seen[index] = true
			relay.holders[index] = append(relay.holders[index], identity)
		}
		relay.oracles++
	}
	relay.subscription = relay.core.Bus().Subscribe(OracleRequested)
	relay.mu.Unlock()

	go relay.serve()
	relay.logger.InfoF("Oracle relay started with %d oracles", relay.config.OracleCount)
	return nil
}

func (relay *Relay) serve() {
	defer close(relay.done)
	relay.mu.RLock()
	ch := relay.subscription.C()
	relay.mu.RUnlock()
	for observation := range ch {
		relay.answer(observation)
	}
}

func (relay *Relay) pickStatus() StatusCode {
	relay.mu.RLock()
	defer relay.mu.RUnlock()
	if relay.random {
		return StatusCodes[rand.IntN(len(StatusCodes))]
	}
	return relay.statusCode
}

func (relay *Relay) answer(observation *Observation) {
	relay.mu.RLock()
	holders := relay.holders[observation.Index]
	relay.mu.RUnlock()
	if len(holders) == 0 {
		relay.logger.DebugF("No relay oracle holds index %d, request for %s left to external oracles",
			observation.Index, observation.FlightKey())
		return
	}
	key := observation.FlightKey()
	for _, oracle := range holders {
		result, err := relay.core.SubmitResponse(oracle, observation.Index, key, relay.pickStatus())
		if err != nil {
			relay.logger.WarnF("Relay oracle %s failed to answer %s on index %d: %v", oracle, key, observation.Index, err)
			continue
		}
		if result.Finalized {
			relay.logger.DebugF("Request for %s on index %d finalized as %s", key, observation.Index, result.FinalStatus)
			return
		}
	}
}

type Status struct {
	Running    bool
	Oracles    int
	StatusCode StatusCode
	Random     bool
}

func (relay *Relay) Status() Status {
	relay.mu.RLock()
	defer relay.mu.RUnlock()
	return Status{
		Running:    relay.subscription != nil,
		Oracles:    relay.oracles,
		StatusCode: relay.statusCode,
		Random:     relay.random,
	}
}

// SetStatus changes what the relay oracles report from the next request on
func (relay *Relay) SetStatus(status StatusCode, random bool) error {
	if !status.IsValid() {
		return Errorf(ErrInvalidArgument, "unknown status code %d", int(status))
	}
	relay.mu.Lock()
	defer relay.mu.Unlock()
	relay.statusCode = status
	relay.random = random
	relay.logger.InfoF("Oracle relay now reports %s (random: %v)", status, random)
	return nil
}

func (relay *Relay) Invoke(ctx context.Context) error {
	relay.mu.RLock()
	subscription := relay.subscription
	relay.mu.RUnlock()
	if subscription == nil {
		return ErrRelayNotRunning
	}
	subscription.Close()
	select {
	case <-relay.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
