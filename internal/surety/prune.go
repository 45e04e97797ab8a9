package surety

import (
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"time"
)

// ArchiveFunc receives finalized requests right before they are deleted, an error keeps them.
// It runs outside the writer lock.
type ArchiveFunc func(requests []*operation.OracleRequest) error

// PruneFinalizedRequests deletes at most limit requests finalized before the cutoff
func (core *Core) PruneFinalizedRequests(before time.Time, limit int, archive ArchiveFunc) (int, error) {
	core.pruneMu.Lock()
	defer core.pruneMu.Unlock()

	requests, err := core.operations.OracleOperation().GetFinalizedRequestsBefore(before.UTC(), limit)
	if err != nil {
		return 0, err
	}
	if len(requests) == 0 {
		return 0, nil
	}
	if archive != nil {
		if err := archive(requests); err != nil {
			return 0, err
		}
	}
	// finalized requests never change again, deleting by id is enough
	if err := core.mutate("", func(tx *txContext) error {
		return tx.ops.OracleOperation().DeleteOracleRequests(requests)
	}); err != nil {
		return 0, err
	}
	core.logger.InfoF("Pruned %d finalized oracle requests", len(requests))
	return len(requests), nil
}

// Events returns at most limit journaled observations with an id larger than after
func (core *Core) Events(after uint, limit int) ([]*Observation, error) {
	events, err := core.operations.EventOperation().GetEventsAfter(after, limit)
	if err != nil {
		return nil, err
	}
	observations := make([]*Observation, 0, len(events))
	for _, event := range events {
		observations = append(observations, event.Observation())
	}
	return observations, nil
}
