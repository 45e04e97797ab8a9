// Package archive
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/log"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/jonboulle/clockwork"
	"sync"
	"sync/atomic"
	"time"
)

const pruneBatchSize = 100

// Document is the archived form of one pruning batch
type Document struct {
	PrunedAt time.Time                  `json:"pruned_at"`
	Cutoff   time.Time                  `json:"cutoff"`
	Requests []*operation.OracleRequest `json:"requests"`
}

// Pruner periodically removes finalized oracle requests older than the retention window.
// Every batch is written to the store before the rows are deleted.
type Pruner struct {
	logger  log.LoggerInterface
	config  *c.SuretyConfig
	core    *surety.Core
	store   StoreInterface
	clock   clockwork.Clock
	stop    chan struct{}
	done    chan struct{}
	stopped sync.Once
	running atomic.Bool
}

func NewPruner(
	logger log.LoggerInterface,
	config *c.SuretyConfig,
	core *surety.Core,
	store StoreInterface,
	clock clockwork.Clock,
) *Pruner {
	return &Pruner{
		logger: logger,
		config: config,
		core:   core,
		store:  store,
		clock:  clock,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (pruner *Pruner) archive(ctx context.Context, cutoff time.Time) surety.ArchiveFunc {
	if pruner.store == nil {
		return nil
	}
	return func(requests []*operation.OracleRequest) error {
		now := pruner.clock.Now().UTC()
		data, err := json.Marshal(&Document{PrunedAt: now, Cutoff: cutoff, Requests: requests})
		if err != nil {
			return err
		}
		name := fmt.Sprintf("requests-%d-%d.json", now.UnixNano(), requests[0].ID)
		location, err := pruner.store.Save(ctx, name, data)
		if err != nil {
			return err
		}
		pruner.logger.DebugF("Archived %d requests to %s", len(requests), location)
		return nil
	}
}

// PruneOnce prunes batches until nothing older than the retention window is left
func (pruner *Pruner) PruneOnce(ctx context.Context) (int, error) {
	cutoff := pruner.clock.Now().UTC().Add(-pruner.config.RetentionDuration)
	archive := pruner.archive(ctx, cutoff)
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		pruned, err := pruner.core.PruneFinalizedRequests(cutoff, pruneBatchSize, archive)
		if err != nil {
			return total, err
		}
		total += pruned
		if pruned < pruneBatchSize {
			return total, nil
		}
	}
}

// Start runs PruneOnce every prune interval until Invoke is called
func (pruner *Pruner) Start() {
	if pruner.config.PruneDuration <= 0 {
		pruner.logger.Info("Prune interval is zero, pruning disabled")
		return
	}
	pruner.running.Store(true)
	ticker := pruner.clock.NewTicker(pruner.config.PruneDuration)
	go func() {
		defer close(pruner.done)
		defer ticker.Stop()
		for {
			select {
			case <-pruner.stop:
				return
			case <-ticker.Chan():
				ctx, cancel := context.WithTimeout(context.Background(), pruner.config.PruneDuration)
				if _, err := pruner.PruneOnce(ctx); err != nil {
					pruner.logger.ErrorF("Prune finalized requests error: %v", err)
				}
				cancel()
			}
		}
	}()
	pruner.logger.InfoF("Pruning finalized requests older than %v every %v", pruner.config.RetentionDuration, pruner.config.PruneDuration)
}

func (pruner *Pruner) Invoke(ctx context.Context) error {
	pruner.stopped.Do(func() { close(pruner.stop) })
	if !pruner.running.Load() {
		return nil
	}
	select {
	case <-pruner.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
