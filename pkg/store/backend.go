package store

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// Buckets group rows of one kind. Bucket names never contain the key
// separator.
const (
	BucketDays            = "days"
	BucketExercises       = "exercises"
	BucketPresets         = "presets"
	BucketPresetExercises = "presetexercises"
	BucketGoals           = "goals"
	BucketRecords         = "records"
	bucketMeta            = "meta"
)

const sequenceKey = bucketMeta + "-sequence"

// backend is the key/value surface of *diskv.Diskv the store relies on.
type backend interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Has(key string) bool
	Keys(cancel <-chan struct{}) <-chan string
}

func newDiskv(basePath string) *diskv.Diskv {
	return diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `bucket-id`.
func toKey(bucket string, id int64) string {
	return fmt.Sprintf("%s-%d", bucket, id)
}

// fromKey splits a key into its bucket and numeric id.
func fromKey(key string) (string, int64, bool) {
	pk := keyToPathTransform(key)
	if len(pk.Path) != 1 {
		return "", 0, false
	}
	id, err := strconv.ParseInt(pk.FileName, 10, 64)
	if err != nil {
		return pk.Path[0], 0, false
	}
	return pk.Path[0], id, true
}

// memory is an in-process backend.
type memory struct {
	mu   sync.RWMutex
	rows map[string][]byte
}

func newMemory() *memory {
	return &memory{rows: make(map[string][]byte)}
}

func (m *memory) Read(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.rows[key]
	if !ok {
		return nil, fmt.Errorf("store: read %s: %w", key, os.ErrNotExist)
	}
	return append([]byte(nil), val...), nil
}

func (m *memory) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[key] = append([]byte(nil), val...)
	return nil
}

func (m *memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[key]; !ok {
		return fmt.Errorf("store: erase %s: %w", key, os.ErrNotExist)
	}
	delete(m.rows, key)
	return nil
}

func (m *memory) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rows[key]
	return ok
}

func (m *memory) Keys(cancel <-chan struct{}) <-chan string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.rows))
	for k := range m.rows {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)

	c := make(chan string)
	go func() {
		defer close(c)
		for _, k := range keys {
			select {
			case c <- k:
			case <-cancel:
				return
			}
		}
	}()
	return c
}
