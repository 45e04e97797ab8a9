package surety_test

import (
	"testing"
	"time"

	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlight(t *testing.T) {
	f := newFixture(t, nil)
	departure := epoch.Add(6 * time.Hour).Unix()

	_, err := f.core.RegisterFlight(airline, "SA101", departure)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.core.FundAirline(airline, Units(10)))

	flight, err := f.core.RegisterFlight(airline, " sa101 ", departure)
	require.NoError(t, err)
	assert.Equal(t, "SA101", flight.Designator)
	assert.Equal(t, StatusUnknown, flight.Status())
	assert.True(t, flight.IsRegistered)

	_, err = f.core.RegisterFlight(airline, "SA101", departure)
	assert.ErrorIs(t, err, ErrDuplicate)

	// same designator on another day is another flight
	_, err = f.core.RegisterFlight(airline, "SA101", departure+86400)
	require.NoError(t, err)

	_, err = f.core.RegisterFlight(airline, "  ", departure)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	found, err := f.core.Lookup(NewFlightKey(airline, "sa101", departure))
	require.NoError(t, err)
	assert.Equal(t, flight.ID, found.ID)

	_, err = f.core.Lookup(NewFlightKey(airline, "SA999", departure))
	assert.ErrorIs(t, err, ErrNotFound)

	flights, total, err := f.core.Flights(airline, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, flights, 2)
}
