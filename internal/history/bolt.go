package history

import (
	"fmt"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore keeps runs in a bbolt database file.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Save stores run under its ID, replacing any previous entry.
func (s *BoltStore) Save(run Run) error {
	data, err := encodeRun(run)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

// List returns every stored run, newest first. Entries that fail to decode
// are skipped.
func (s *BoltStore) List() ([]Run, error) {
	runs := []Run{}

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			run, err := decodeRun(v)
			if err != nil {
				log.Warn().Str("component", "history").Bytes("key", k).Err(err).Msg("skipping undecodable run")
				return nil
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortNewestFirst(runs)

	return runs, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
