// Package history records generation runs so a fixture file can be traced
// back to the seed that produced it.
package history

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrStoreClosed = errors.New("history store closed")
	ErrMissingID   = errors.New("run has no id")
)

// Run describes one completed generate invocation.
type Run struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Seed      uint64        `json:"seed"`
	Count     int           `json:"count"`
	Output    string        `json:"output"`
	SizeBytes int64         `json:"size_bytes"`
}

// NewRun starts a run record with a fresh ID.
func NewRun(seed uint64, count int, output string) Run {
	return Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Seed:      seed,
		Count:     count,
		Output:    output,
	}
}

// Store persists runs.
type Store interface {
	Save(run Run) error
	// List returns all runs, newest first.
	List() ([]Run, error)
	Close() error
}

func encodeRun(run Run) ([]byte, error) {
	if run.ID == "" {
		return nil, ErrMissingID
	}

	data, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run: %w", err)
	}

	return data, nil
}

func decodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, fmt.Errorf("failed to decode run: %w", err)
	}

	return run, nil
}

func sortNewestFirst(runs []Run) {
	slices.SortFunc(runs, func(a, b Run) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
