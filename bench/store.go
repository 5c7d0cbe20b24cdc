package bench

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Store persists Result values to an embedded badger.DB, keyed by
// "<configuration>:<unix-nano>" so repeated runs of the same configuration
// accumulate rather than overwrite each other.
type Store struct {
	db *badger.DB

	mu     sync.Mutex
	closed bool
}

// OpenStore opens (creating if necessary) a badger database rooted at
// path. An empty path opens an in-memory store, useful for tests and
// one-shot CLI invocations that don't want a file on disk.
func OpenStore(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("bench: open store: %w", err)
	}
	return &Store{db: db}, nil
}

// Put persists one Result.
func (s *Store) Put(result Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("bench: marshal result: %w", err)
	}

	key := fmt.Sprintf("%s:%d", result.ConfigName, time.Now().UnixNano())
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), payload)
	})
}

// All returns every persisted Result in badger's key order: keys
// "<configuration>:<unix-nano>" compared bytewise.
func (s *Store) All() ([]Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	var out []Result
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var result Result
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &result)
			})
			if err != nil {
				return fmt.Errorf("bench: decode result %s: %w", item.Key(), err)
			}
			out = append(out, result)
		}
		return nil
	})
	return out, err
}

// Close releases the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
