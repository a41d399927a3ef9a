package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func storeTestSuite(t *testing.T, newStore func(t *testing.T) Store) {
	t.Run("SaveAndList", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		older := NewRun(1, 10, "a.csv")
		older.StartedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		newer := NewRun(2, 20, "b.csv")
		newer.StartedAt = older.StartedAt.Add(time.Hour)
		newer.SizeBytes = 4096
		newer.Duration = 1500 * time.Millisecond

		require.NoError(t, store.Save(older))
		require.NoError(t, store.Save(newer))

		runs, err := store.List()
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, newer, runs[0])
		assert.Equal(t, older, runs[1])
	})

	t.Run("SaveReplaces", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		run := NewRun(3, 30, "c.csv")
		require.NoError(t, store.Save(run))
		run.SizeBytes = 99
		require.NoError(t, store.Save(run))

		runs, err := store.List()
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, int64(99), runs[0].SizeBytes)
	})

	t.Run("EmptyList", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		runs, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, runs)
	})

	t.Run("MissingID", func(t *testing.T) {
		store := newStore(t)
		defer store.Close()

		assert.ErrorIs(t, store.Save(Run{Count: 1}), ErrMissingID)
	})
}

func TestBoltStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		store, err := NewBoltStore(filepath.Join(t.TempDir(), "history.db"))
		require.NoError(t, err)
		return store
	})
}

func TestMemoryStore(t *testing.T) {
	storeTestSuite(t, func(t *testing.T) Store {
		return NewMemoryStore()
	})

	store := NewMemoryStore()
	require.NoError(t, store.Close())
	assert.ErrorIs(t, store.Save(NewRun(1, 1, "x.csv")), ErrStoreClosed)
	_, err := store.List()
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	run := NewRun(42, 100000, "public/data/products.csv")
	require.NoError(t, store.Save(run))
	require.NoError(t, store.Close())

	store, err = NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, uint64(42), runs[0].Seed)
}

func TestBoltStore_SkipsCorruptEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(NewRun(1, 1, "ok.csv")))
	require.NoError(t, store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte("broken"), []byte("{not json"))
	}))

	runs, err := store.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
