package state

import (
	"fmt"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store used by tests and dry runs. It honors
// the same atomicity and duplicate-rejection guarantees as FileStore.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]map[string]Record

	// Malformed injects pool names that ReadAll should flag, simulating
	// unparsable persisted entries.
	Malformed map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]map[string]Record),
	}
}

func (s *MemoryStore) HasRecordSet(cluster string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[cluster]) > 0 || len(s.Malformed[cluster]) > 0
}

func (s *MemoryStore) Append(cluster, pool string, originalSizePerZone int) error {
	if originalSizePerZone < 1 {
		return fmt.Errorf("cluster %q pool %q: original size %d must be at least 1", cluster, pool, originalSizePerZone)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.records[cluster]
	if !ok {
		set = make(map[string]Record)
		s.records[cluster] = set
	}
	if _, exists := set[pool]; exists {
		return fmt.Errorf("cluster %q pool %q: %w", cluster, pool, ErrDuplicateRecord)
	}
	set[pool] = Record{
		Cluster:             cluster,
		Pool:                pool,
		OriginalSizePerZone: originalSizePerZone,
		CapturedAt:          time.Now(),
	}
	return nil
}

func (s *MemoryStore) ReadAll(cluster string) (map[string]int, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.records[cluster]
	malformed := s.Malformed[cluster]
	if len(set) == 0 && len(malformed) == 0 {
		return nil, nil, fmt.Errorf("cluster %q: %w", cluster, ErrRecordSetNotFound)
	}
	out := make(map[string]int, len(set))
	for pool, rec := range set {
		out[pool] = rec.OriginalSizePerZone
	}
	return out, malformed, nil
}

func (s *MemoryStore) Clear(cluster string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, cluster)
	if s.Malformed != nil {
		delete(s.Malformed, cluster)
	}
	return nil
}
