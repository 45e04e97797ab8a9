package archive_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/half-nothing/simple-surety/internal/archive"
	"github.com/half-nothing/simple-surety/internal/base"
	c "github.com/half-nothing/simple-surety/internal/interfaces/config"
	. "github.com/half-nothing/simple-surety/internal/interfaces/surety"
	"github.com/half-nothing/simple-surety/internal/surety"
	"github.com/half-nothing/simple-surety/internal/surety/suretytest"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStore holds every Save until release is closed
type slowStore struct {
	entered chan struct{}
	release chan struct{}
}

func (store *slowStore) Save(context.Context, string, []byte) (string, error) {
	close(store.entered)
	<-store.release
	return "remote/batch.json", nil
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, []byte) (string, error) {
	return "", errors.New("bucket unavailable")
}

func TestLocalStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store := archive.NewLocalStore(base.NewLogger(), &c.ArchiveConfig{LocalStorePath: dir})

	location, err := store.Save(context.Background(), "batch.json", []byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "batch.json"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))

	for _, name := range []string{"", "../escape.json", "a/b.json", `a\b.json`} {
		_, err := store.Save(context.Background(), name, nil)
		assert.ErrorIs(t, err, archive.ErrArchiveNameIllegal, name)
	}
}

func TestNewStoreRejectsUnknownType(t *testing.T) {
	_, err := archive.NewStore(base.NewLogger(), &c.ArchiveConfig{StoreType: 9})
	assert.Error(t, err)

	store, err := archive.NewStore(base.NewLogger(), &c.ArchiveConfig{StoreType: c.LocalStore, LocalStorePath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &archive.LocalStore{}, store)
}

func finalizedFixture(t *testing.T) (*suretytest.Fixture, FlightKey) {
	t.Helper()
	f := suretytest.New(t, func(config *c.SuretyConfig) {
		config.OracleQuorum = 1
	}, surety.WithIndexSource(surety.NewSequenceIndexSource(0)))
	oracles := f.Oracles(t, 1)
	key := f.Flight(t, "SA101")
	index, err := f.Core.RequestStatus(suretytest.Administrator, key)
	require.NoError(t, err)
	result, err := f.Core.SubmitResponse(oracles[0], index, key, StatusLateAirline)
	require.NoError(t, err)
	require.True(t, result.Finalized)
	return f, key
}

func TestPrunerArchivesBeforeDeleting(t *testing.T) {
	f, key := finalizedFixture(t)
	dir := t.TempDir()
	store := archive.NewLocalStore(base.NewLogger(), &c.ArchiveConfig{LocalStorePath: dir})
	pruner := archive.NewPruner(base.NewLogger(), f.Config, f.Core, store, f.Clock)

	pruned, err := pruner.PruneOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, pruned, "requests inside the retention window stay")

	f.Clock.Advance(2 * time.Hour)
	pruned, err = pruner.PruneOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = f.Core.Request(0, key)
	assert.ErrorIs(t, err, ErrNotFound)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	var document archive.Document
	require.NoError(t, json.Unmarshal(data, &document))
	require.Len(t, document.Requests, 1)
	assert.Equal(t, key.Designator, document.Requests[0].Designator)
	assert.Len(t, document.Requests[0].Responses, 1)
}

func TestPrunerKeepsRequestsWhenStoreFails(t *testing.T) {
	f, key := finalizedFixture(t)
	pruner := archive.NewPruner(base.NewLogger(), f.Config, f.Core, failingStore{}, f.Clock)

	f.Clock.Advance(2 * time.Hour)
	_, err := pruner.PruneOnce(context.Background())
	assert.Error(t, err)

	_, err = f.Core.Request(0, key)
	assert.NoError(t, err)
}

func TestPrunerStartAndStop(t *testing.T) {
	f, key := finalizedFixture(t)
	pruner := archive.NewPruner(base.NewLogger(), f.Config, f.Core, nil, f.Clock)
	pruner.Start()

	require.NoError(t, f.Clock.BlockUntilContext(context.Background(), 1))
	f.Clock.Advance(2 * time.Hour)
	assert.Eventually(t, func() bool {
		_, err := f.Core.Request(0, key)
		return errors.Is(err, ErrNotFound)
	}, 5*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, pruner.Invoke(ctx))
}

func TestSlowStoreDoesNotBlockCore(t *testing.T) {
	f, key := finalizedFixture(t)
	store := &slowStore{entered: make(chan struct{}), release: make(chan struct{})}
	pruner := archive.NewPruner(base.NewLogger(), f.Config, f.Core, store, f.Clock)
	f.Clock.Advance(2 * time.Hour)

	type outcome struct {
		pruned int
		err    error
	}
	pruneDone := make(chan outcome, 1)
	go func() {
		pruned, err := pruner.PruneOnce(context.Background())
		pruneDone <- outcome{pruned, err}
	}()
	<-store.entered

	registered := make(chan error, 1)
	go func() {
		_, err := f.Core.RegisterOracle("late-oracle", Units(1))
		registered <- err
	}()
	select {
	case err := <-registered:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		close(store.release)
		t.Fatal("core operation waited for the archive store")
	}

	close(store.release)
	result := <-pruneDone
	require.NoError(t, result.err)
	assert.Equal(t, 1, result.pruned)
	_, err := f.Core.Request(0, key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrunerCutoffIgnoresHostZone(t *testing.T) {
	f, key := finalizedFixture(t)
	zone := time.FixedZone("UTC+8", 8*60*60)
	clock := clockwork.NewFakeClockAt(f.Clock.Now().In(zone))
	pruner := archive.NewPruner(base.NewLogger(), f.Config, f.Core, nil, clock)

	clock.Advance(30 * time.Minute)
	pruned, err := pruner.PruneOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, pruned)
	_, err = f.Core.Request(0, key)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	pruned, err = pruner.PruneOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)
}
