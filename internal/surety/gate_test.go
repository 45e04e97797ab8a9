package surety_test

import (
	"testing"

	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatingStatusRequiresAdministrator(t *testing.T) {
	f := newFixture(t, nil)

	assert.ErrorIs(t, f.core.SetOperatingStatus(airline, false), ErrUnauthorized)
	assert.ErrorIs(t, f.core.SetLedgerStatus(airline, CoreLedger, false), ErrUnauthorized)
	assert.ErrorIs(t, f.core.SetLedgerStatus(admin, Ledger("unknown"), false), ErrInvalidArgument)

	enabled, err := f.core.IsOperational(CoreLedger)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestPausedLedgerRejectsMutations(t *testing.T) {
	f := newFixture(t, nil, surety.WithIndexSource(surety.NewSequenceIndexSource(0)))
	require.NoError(t, f.core.FundAirline(airline, Units(10)))
	key := f.flight(t, "SA101")

	require.NoError(t, f.core.SetLedgerStatus(admin, AirlineLedger, false))

	_, err := f.core.RegisterAirline(airline, "a2")
	assert.ErrorIs(t, err, ErrNotOperational)
	_, err = f.core.RegisterFlight(airline, "SA102", key.DepartureTime)
	assert.ErrorIs(t, err, ErrNotOperational)

	// the core ledger keeps serving
	_, err = f.core.BuyInsurance(passenger, key, Units(1))
	require.NoError(t, err)

	require.NoError(t, f.core.SetOperatingStatus(admin, false))
	_, err = f.core.BuyInsurance(passenger, key, Units(1))
	assert.ErrorIs(t, err, ErrNotOperational)
	_, err = f.core.RegisterOracle("oracle-00", Units(1))
	assert.ErrorIs(t, err, ErrNotOperational)
	_, err = f.core.RequestStatus(admin, key)
	assert.ErrorIs(t, err, ErrNotOperational)
	_, err = f.core.ClaimInsurance(passenger)
	assert.ErrorIs(t, err, ErrNotOperational)

	// reads are unaffected
	_, err = f.core.Lookup(key)
	require.NoError(t, err)
	policies, err := f.core.Policies(passenger)
	require.NoError(t, err)
	assert.Len(t, policies, 1)

	status, err := f.core.OperatingStatus()
	require.NoError(t, err)
	assert.Equal(t, map[Ledger]bool{AirlineLedger: false, CoreLedger: false}, status)

	require.NoError(t, f.core.SetOperatingStatus(admin, true))
	_, err = f.core.RegisterFlight(airline, "SA102", key.DepartureTime)
	require.NoError(t, err)

	changes := 0
	for _, kind := range f.kinds(t) {
		if kind == OperatingStatusChanged {
			changes++
		}
	}
	// airline off, core off, both back on
	assert.Equal(t, 4, changes)
}
