package surety_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/base"
	"github.com/half-nothing/simple-surety/internal/database"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"
	"golang.org/x/crypto/bcrypt"
)

const (
	admin   = Identity("owner")
	airline = Identity("a1")
)

var epoch = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	config *c.SuretyConfig
	core   *surety.Core
	bus    *surety.EventBus
	clock  *clockwork.FakeClock
}

func testConfig() *c.SuretyConfig {
	return &c.SuretyConfig{
		Administrator:       admin.String(),
		FirstAirline:        airline.String(),
		BootstrapAirlines:   4,
		AirlineFundingValue: int64(Units(10)),
		PremiumCapValue:     int64(Units(1)),
		PayoutPercent:       150,
		OracleFeeValue:      int64(Units(1)),
		OracleIndexRange:    10,
		OracleQuorum:        3,
	}
}

func newFixture(t *testing.T, configure func(config *c.SuretyConfig), options ...surety.Option) *fixture {
	t.Helper()
	logger := base.NewLogger()
	dbConfig := &c.DatabaseConfig{
		DBType:               c.SQLite,
		Database:             fmt.Sprintf("file:%s?mode=memory&cache=shared", randstr.Hex(12)),
		QueryDuration:        5 * time.Second,
		ConnectIdleDuration:  time.Hour,
		ServerMaxConnections: 1,
	}
	shutdown, operations, err := database.Connect(logger, dbConfig, bcrypt.MinCost, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown.Invoke(context.Background()) })

	config := testConfig()
	if configure != nil {
		configure(config)
	}
	clock := clockwork.NewFakeClockAt(epoch)
	bus := surety.NewEventBus(logger)
	t.Cleanup(bus.Close)

	options = append([]surety.Option{surety.WithClock(clock)}, options...)
	core, err := surety.NewCore(logger, config, operations, bus, options...)
	require.NoError(t, err)
	return &fixture{config: config, core: core, bus: bus, clock: clock}
}

// fundAirlines registers and funds each airline, registering it by the previous one
func (f *fixture) fundAirlines(t *testing.T, airlines ...Identity) {
	t.Helper()
	funding := Amount(f.config.AirlineFundingValue)
	require.NoError(t, f.core.FundAirline(airline, funding))
	sponsor := airline
	for _, identity := range airlines {
		result, err := f.core.RegisterAirline(sponsor, identity)
		require.NoError(t, err)
		require.True(t, result.Registered)
		require.NoError(t, f.core.FundAirline(identity, funding))
		sponsor = identity
	}
}

func (f *fixture) flight(t *testing.T, designator string) FlightKey {
	t.Helper()
	flight, err := f.core.RegisterFlight(airline, designator, epoch.Add(24*time.Hour).Unix())
	require.NoError(t, err)
	return flight.Key()
}

func (f *fixture) kinds(t *testing.T) []ObservationKind {
	t.Helper()
	events, err := f.core.Events(0, 1000)
	require.NoError(t, err)
	kinds := make([]ObservationKind, 0, len(events))
	for _, event := range events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

func TestBootstrapRegistersFirstAirline(t *testing.T) {
	f := newFixture(t, nil)

	registered, err := f.core.IsAirline(airline)
	require.NoError(t, err)
	assert.True(t, registered)

	funded, err := f.core.IsFunded(airline)
	require.NoError(t, err)
	assert.False(t, funded)

	status, err := f.core.OperatingStatus()
	require.NoError(t, err)
	assert.Equal(t, map[Ledger]bool{AirlineLedger: true, CoreLedger: true}, status)

	assert.Equal(t, []ObservationKind{AirlineRegistered}, f.kinds(t))
}

func TestFailedOperationLeavesNoTrace(t *testing.T) {
	f := newFixture(t, nil)
	sub := f.bus.Subscribe()
	defer sub.Close()

	_, err := f.core.RegisterAirline(airline, "a2")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = f.core.FundAirline(airline, Units(9))
	assert.ErrorIs(t, err, ErrInsufficientValue)

	reserve, err := f.core.Reserve()
	require.NoError(t, err)
	assert.Equal(t, Amount(0), reserve)
	assert.Equal(t, []ObservationKind{AirlineRegistered}, f.kinds(t))

	select {
	case observation := <-sub.C():
		t.Fatalf("unexpected observation %s", observation.Kind)
	default:
	}
}

func TestObservationsPublishedAfterCommit(t *testing.T) {
	f := newFixture(t, nil)
	sub := f.bus.Subscribe(AirlineFunded, FlightRegistered)
	defer sub.Close()

	require.NoError(t, f.core.FundAirline(airline, Units(10)))
	key := f.flight(t, "sa101")

	funded := <-sub.C()
	assert.Equal(t, AirlineFunded, funded.Kind)
	assert.Equal(t, Units(10), funded.Amount)
	assert.WithinDuration(t, epoch, funded.At, 0)
	assert.NotZero(t, funded.ID)

	registered := <-sub.C()
	assert.Equal(t, FlightRegistered, registered.Kind)
	assert.Equal(t, key, registered.FlightKey())
	assert.Greater(t, registered.ID, funded.ID)

	events, err := f.core.Events(funded.ID-1, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, funded.ID, events[0].ID)
}
