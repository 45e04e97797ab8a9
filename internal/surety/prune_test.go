package surety_test

import (
	"errors"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneFinalizedRequests(t *testing.T) {
	f, oracles := newPoolFixture(t, nil)
	finalized := f.flight(t, "SA101")
	open := f.flight(t, "SA102")
	f.finalize(t, finalized, StatusLateAirline, oracles)
	openIndex, err := f.core.RequestStatus(admin, open)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Hour)
	cutoff := f.core.Now().Add(-time.Hour)

	failure := errors.New("archive unavailable")
	_, err = f.core.PruneFinalizedRequests(cutoff, 10, func([]*operation.OracleRequest) error { return failure })
	assert.ErrorIs(t, err, failure)
	_, err = f.core.Request(0, finalized)
	require.NoError(t, err)

	var archived []*operation.OracleRequest
	pruned, err := f.core.PruneFinalizedRequests(cutoff, 10, func(requests []*operation.OracleRequest) error {
		archived = requests
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)
	require.Len(t, archived, 1)
	assert.Len(t, archived[0].Responses, 3)

	_, err = f.core.Request(0, finalized)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.core.Request(openIndex, open)
	require.NoError(t, err)

	// the flight keeps its final status after its requests are gone
	flight, err := f.core.Lookup(finalized)
	require.NoError(t, err)
	assert.Equal(t, StatusLateAirline, flight.Status())

	pruned, err = f.core.PruneFinalizedRequests(cutoff, 10, nil)
	require.NoError(t, err)
	assert.Zero(t, pruned)
}
