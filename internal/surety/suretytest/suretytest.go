// Package suretytest builds cores over throwaway in-memory databases for tests of
// packages layered on top of the surety core.
package suretytest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/base"
	"github.com/half-nothing/simple-surety/internal/database"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	"github.com/half-nothing/simple-surety/internal/interfaces/operation"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/jonboulle/clockwork"
	"github.com/thanhpk/randstr"
	"golang.org/x/crypto/bcrypt"
)

const (
	Administrator = Identity("owner")
	FirstAirline  = Identity("a1")
)

var Epoch = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

type Fixture struct {
	Config     *c.SuretyConfig
	Operations *operation.DatabaseOperations
	Core       *surety.Core
	Bus        *surety.EventBus
	Clock      *clockwork.FakeClock
}

func Config() *c.SuretyConfig {
	return &c.SuretyConfig{
		Administrator:       Administrator.String(),
		FirstAirline:        FirstAirline.String(),
		BootstrapAirlines:   4,
		AirlineFundingValue: int64(Units(10)),
		PremiumCapValue:     int64(Units(1)),
		PayoutPercent:       150,
		OracleFeeValue:      int64(Units(1)),
		OracleIndexRange:    10,
		OracleQuorum:        3,
		RetentionDuration:   time.Hour,
		PruneDuration:       10 * time.Minute,
	}
}

// New opens a fresh database and a core over it, failing t on any error
func New(t testing.TB, configure func(config *c.SuretyConfig), options ...surety.Option) *Fixture {
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
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	t.Cleanup(func() { _ = shutdown.Invoke(context.Background()) })

	config := Config()
	if configure != nil {
		configure(config)
	}
	clock := clockwork.NewFakeClockAt(Epoch)
	bus := surety.NewEventBus(logger)
	t.Cleanup(bus.Close)

	options = append([]surety.Option{surety.WithClock(clock)}, options...)
	core, err := surety.NewCore(logger, config, operations, bus, options...)
	if err != nil {
		t.Fatalf("create core: %v", err)
	}
	return &Fixture{Config: config, Operations: operations, Core: core, Bus: bus, Clock: clock}
}

// Flight funds the first airline when needed and registers a flight departing a day after Epoch
func (f *Fixture) Flight(t testing.TB, designator string) FlightKey {
	t.Helper()
	funded, err := f.Core.IsFunded(FirstAirline)
	if err != nil {
		t.Fatalf("check funding: %v", err)
	}
	if !funded {
		if err := f.Core.FundAirline(FirstAirline, Amount(f.Config.AirlineFundingValue)); err != nil {
			t.Fatalf("fund airline: %v", err)
		}
	}
	flight, err := f.Core.RegisterFlight(FirstAirline, designator, Epoch.Add(24*time.Hour).Unix())
	if err != nil {
		t.Fatalf("register flight: %v", err)
	}
	return flight.Key()
}

// Oracles registers n oracles named oracle-0..oracle-(n-1) paying the configured fee
func (f *Fixture) Oracles(t testing.TB, n int) []Identity {
	t.Helper()
	oracles := make([]Identity, 0, n)
	for i := 0; i < n; i++ {
		identity := Identity(fmt.Sprintf("oracle-%d", i))
		if _, err := f.Core.RegisterOracle(identity, Amount(f.Config.OracleFeeValue)); err != nil {
			t.Fatalf("register oracle %s: %v", identity, err)
		}
		oracles = append(oracles, identity)
	}
	return oracles
}
