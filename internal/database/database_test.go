package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/base"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	. "github.com/half-nothing/simple-surety/internal/interfaces/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"
	"golang.org/x/crypto/bcrypt"
)

func openTestDatabase(t *testing.T) *DatabaseOperations {
	t.Helper()
	config := &c.DatabaseConfig{
		DBType:               c.SQLite,
		Database:             fmt.Sprintf("file:%s?mode=memory&cache=shared", randstr.Hex(12)),
		QueryDuration:        5 * time.Second,
		ConnectIdleDuration:  time.Hour,
		ServerMaxConnections: 1,
	}
	shutdown, operations, err := Connect(base.NewLogger(), config, bcrypt.MinCost, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown.Invoke(context.Background()) })
	return operations
}

func TestAccountOperation(t *testing.T) {
	ops := openTestDatabase(t).AccountOperation()

	_, err := ops.GetAccount("owner")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	account, err := ops.EnsureAccount("owner", "secret-password", AdminEntry)
	require.NoError(t, err)
	assert.True(t, ops.VerifyAccountPassword(account, "secret-password"))
	assert.False(t, ops.VerifyAccountPassword(account, "wrong-password"))

	account, err = ops.EnsureAccount("owner", "ignored", TriggerEntry)
	require.NoError(t, err)
	permission := Permission(account.Permission)
	assert.True(t, permission.HasPermission(AdminEntry))
	assert.True(t, permission.HasPermission(TriggerEntry))
	assert.True(t, ops.VerifyAccountPassword(account, "secret-password"))

	duplicate, err := ops.NewAccount("owner", "another", 0)
	require.NoError(t, err)
	assert.ErrorIs(t, ops.AddAccount(duplicate), ErrAccountExists)
}

func TestAirlineVotesAreDistinct(t *testing.T) {
	ops := openTestDatabase(t).AirlineOperation()

	added, err := ops.AddAirlineVote("a5", "a1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = ops.AddAirlineVote("a5", "a1")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = ops.AddAirlineVote("a5", "a2")
	require.NoError(t, err)
	assert.True(t, added)

	total, err := ops.CountAirlineVotes("a5")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestTreasuryOperation(t *testing.T) {
	ops := openTestDatabase(t).TreasuryOperation()

	reserve, err := ops.GetReserve()
	require.NoError(t, err)
	assert.Zero(t, reserve)

	require.NoError(t, ops.Deposit("a1", 100, "airline funding"))
	assert.ErrorIs(t, ops.Payout("p1", 101, "policy #1"), ErrReserveInsufficient)
	require.NoError(t, ops.Payout("p1", 60, "policy #1"))

	reserve, err = ops.GetReserve()
	require.NoError(t, err)
	assert.EqualValues(t, 40, reserve)

	paid, err := ops.SumTransfers("p1", TransferPayout)
	require.NoError(t, err)
	assert.EqualValues(t, 60, paid)

	paid, err = ops.SumTransfers("nobody", TransferPayout)
	require.NoError(t, err)
	assert.Zero(t, paid)
}

func TestGovernanceDefaults(t *testing.T) {
	ops := openTestDatabase(t).GovernanceOperation()

	enabled, err := ops.IsOperational("core")
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, ops.SetOperational("core", false))
	require.NoError(t, ops.SetOperational("core", false))
	enabled, err = ops.IsOperational("core")
	require.NoError(t, err)
	assert.False(t, enabled)

	flags, err := ops.GetOperationalFlags()
	require.NoError(t, err)
	assert.Len(t, flags, 1)

	require.NoError(t, ops.AddAuthorizedCaller("trigger"))
	require.NoError(t, ops.AddAuthorizedCaller("trigger"))
	authorized, err := ops.IsAuthorizedCaller("trigger")
	require.NoError(t, err)
	assert.True(t, authorized)
	require.NoError(t, ops.RemoveAuthorizedCaller("trigger"))
	authorized, err = ops.IsAuthorizedCaller("trigger")
	require.NoError(t, err)
	assert.False(t, authorized)
}

func TestTransactionRollsBack(t *testing.T) {
	operations := openTestDatabase(t)
	failure := errors.New("abort")

	err := operations.Transaction(func(ops *DatabaseOperations) error {
		if err := ops.TreasuryOperation().Deposit("a1", 10, "airline funding"); err != nil {
			return err
		}
		if err := ops.EventOperation().SaveEvents([]*Event{{Kind: "airline_funded", CreatedAt: time.Now()}}); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	reserve, err := operations.TreasuryOperation().GetReserve()
	require.NoError(t, err)
	assert.Zero(t, reserve)

	events, err := operations.EventOperation().GetEventsAfter(0, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
