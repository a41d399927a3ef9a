package history

import "sync"

// MemoryStore keeps runs in memory. Used when no database path is set.
type MemoryStore struct {
	mu     sync.RWMutex
	runs   map[string]Run
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]Run)}
}

func (m *MemoryStore) Save(run Run) error {
	if run.ID == "" {
		return ErrMissingID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.runs[run.ID] = run

	return nil
}

func (m *MemoryStore) List() ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	runs := make([]Run, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, run)
	}
	sortNewestFirst(runs)

	return runs, nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	return nil
}
