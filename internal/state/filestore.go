package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// recordFileExt is the suffix of per-cluster record files.
const recordFileExt = ".pools"

// FileStore is a Store backed by one keyed record file per cluster.
//
// Each line holds `poolName:originalSizePerZone`. Blank lines are
// tolerated; lines that fail to parse are flagged on read rather than
// failing the whole read. Appends for a given cluster are serialized by a
// per-cluster lock so the duplicate check cannot race a concurrent write.
type FileStore struct {
	dir string
	log logr.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string, log logr.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{
		dir:   dir,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// clusterLock returns the mutex guarding the cluster's record file.
func (s *FileStore) clusterLock(cluster string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[cluster]
	if !ok {
		l = &sync.Mutex{}
		s.locks[cluster] = l
	}
	return l
}

func (s *FileStore) path(cluster string) string {
	// Cluster names are opaque identifiers; keep them out of path syntax.
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(cluster)
	return filepath.Join(s.dir, safe+recordFileExt)
}

// HasRecordSet reports whether a record file exists for the cluster.
func (s *FileStore) HasRecordSet(cluster string) bool {
	_, err := os.Stat(s.path(cluster))
	return err == nil
}

// Append adds a record for the pool, rejecting duplicates.
func (s *FileStore) Append(cluster, pool string, originalSizePerZone int) error {
	if cluster == "" || pool == "" {
		return fmt.Errorf("cluster and pool names must be non-empty")
	}
	if originalSizePerZone < 1 {
		return fmt.Errorf("cluster %q pool %q: original size %d must be at least 1", cluster, pool, originalSizePerZone)
	}

	lock := s.clusterLock(cluster)
	lock.Lock()
	defer lock.Unlock()

	existing, _, err := s.readLocked(cluster)
	if err != nil && !errors.Is(err, ErrRecordSetNotFound) {
		return err
	}
	if _, ok := existing[pool]; ok {
		return fmt.Errorf("cluster %q pool %q: %w", cluster, pool, ErrDuplicateRecord)
	}

	f, err := os.OpenFile(s.path(cluster), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open record file for cluster %q: %w", cluster, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "%s:%d\n", pool, originalSizePerZone); err != nil {
		return fmt.Errorf("failed to append record for cluster %q: %w", cluster, err)
	}

	s.log.V(1).Info("captured hibernation record",
		"cluster", cluster, "pool", pool, "sizePerZone", originalSizePerZone,
		"capturedAt", time.Now().UTC().Format(time.RFC3339))
	return nil
}

// ReadAll returns the pool -> original size mapping for the cluster.
func (s *FileStore) ReadAll(cluster string) (map[string]int, []string, error) {
	lock := s.clusterLock(cluster)
	lock.Lock()
	defer lock.Unlock()
	return s.readLocked(cluster)
}

func (s *FileStore) readLocked(cluster string) (map[string]int, []string, error) {
	data, err := os.ReadFile(s.path(cluster))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("cluster %q: %w", cluster, ErrRecordSetNotFound)
		}
		return nil, nil, fmt.Errorf("failed to read records for cluster %q: %w", cluster, err)
	}

	records := make(map[string]int)
	var malformed []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pool, size, ok := parseRecordLine(line)
		if !ok {
			s.log.Info("dropping malformed hibernation record", "cluster", cluster, "line", line)
			malformed = append(malformed, pool)
			continue
		}
		if _, dup := records[pool]; dup {
			// The first record is the true original; later lines for the
			// same pool must not shadow it.
			s.log.Info("ignoring duplicate hibernation record", "cluster", cluster, "pool", pool)
			continue
		}
		records[pool] = size
	}
	return records, malformed, nil
}

// Clear removes the cluster's record file. Absent files are not an error.
func (s *FileStore) Clear(cluster string) error {
	lock := s.clusterLock(cluster)
	lock.Lock()
	defer lock.Unlock()

	if err := os.Remove(s.path(cluster)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear records for cluster %q: %w", cluster, err)
	}
	return nil
}

// parseRecordLine splits `poolName:sizePerZone`. On parse failure it still
// returns whatever pool name it could extract so the caller can reconstruct
// a target size for that pool.
func parseRecordLine(line string) (pool string, size int, ok bool) {
	name, value, found := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return name, 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return name, 0, false
	}
	return name, n, true
}
