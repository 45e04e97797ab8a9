package oracle_relay_test

import (
	"context"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/base"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/oracle_relay"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/half-nothing/simple-surety/internal/surety/suretytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relayConfig(count int, status StatusCode) *c.OracleRelayConfig {
	return &c.OracleRelayConfig{
		Enabled:      true,
		OracleCount:  count,
		StatusCode:   int(status),
		IdentityHead: "relay-",
	}
}

func stop(t *testing.T, relay *oracle_relay.Relay) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, relay.Invoke(ctx))
}

func TestRelayFinalizesRequests(t *testing.T) {
	// every index drawn is 0, so every relay oracle holds the requested index
	f := suretytest.New(t, nil, surety.WithIndexSource(surety.NewSequenceIndexSource(0)))
	relay := oracle_relay.NewRelay(base.NewLogger(), relayConfig(3, StatusLateWeather), f.Config, f.Core)
	require.NoError(t, relay.Start())
	defer stop(t, relay)

	finalized := f.Bus.Subscribe(FlightStatusFinalized)
	defer finalized.Close()

	key := f.Flight(t, "SA101")
	index, err := f.Core.RequestStatus(suretytest.Administrator, key)
	require.NoError(t, err)

	select {
	case observation := <-finalized.C():
		assert.Equal(t, index, observation.Index)
		assert.Equal(t, StatusLateWeather, observation.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("relay did not finalize the request")
	}

	flight, err := f.Core.Lookup(key)
	require.NoError(t, err)
	assert.Equal(t, StatusLateWeather, flight.Status())
}

func TestRelayReusesRegisteredOracles(t *testing.T) {
	f := suretytest.New(t, nil)
	first := oracle_relay.NewRelay(base.NewLogger(), relayConfig(2, StatusOnTime), f.Config, f.Core)
	require.NoError(t, first.Start())
	stop(t, first)

	reserve, err := f.Core.Reserve()
	require.NoError(t, err)

	second := oracle_relay.NewRelay(base.NewLogger(), relayConfig(2, StatusOnTime), f.Config, f.Core)
	require.NoError(t, second.Start())
	defer stop(t, second)

	after, err := f.Core.Reserve()
	require.NoError(t, err)
	assert.Equal(t, reserve, after, "no fee is charged twice")
	assert.Equal(t, 2, second.Status().Oracles)
}

func TestRelayStatus(t *testing.T) {
	f := suretytest.New(t, nil)
	relay := oracle_relay.NewRelay(base.NewLogger(), relayConfig(1, StatusOnTime), f.Config, f.Core)

	assert.ErrorIs(t, relay.Invoke(context.Background()), oracle_relay.ErrRelayNotRunning)
	assert.False(t, relay.Status().Running)

	assert.ErrorIs(t, relay.SetStatus(StatusCode(7), false), ErrInvalidArgument)
	require.NoError(t, relay.SetStatus(StatusLateOther, true))
	status := relay.Status()
	assert.Equal(t, StatusLateOther, status.StatusCode)
	assert.True(t, status.Random)
}

func TestRelayStartFailsWhenPaused(t *testing.T) {
	f := suretytest.New(t, nil)
	require.NoError(t, f.Core.SetLedgerStatus(suretytest.Administrator, CoreLedger, false))

	relay := oracle_relay.NewRelay(base.NewLogger(), relayConfig(1, StatusOnTime), f.Config, f.Core)
	assert.ErrorIs(t, relay.Start(), ErrNotOperational)
}
