package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// CachedResult is the persisted form of one position's analysis: enough to
// reconstruct the recommendation without rerunning the search.
type CachedResult struct {
	Depth int8   `json:"depth"`
	Score int16  `json:"score"`
	Move  string `json:"move"` // UCI, e.g. "e2e4"; "0000" for no move
}

// Store wraps a BadgerDB database keyed by a position's Zobrist hash,
// caching analysis results across process runs.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the analysis cache at its
// platform-specific data directory.
func Open() (*Store, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func hashKey(hash uint64) []byte {
	return []byte(fmt.Sprintf("analysis:%016x", hash))
}

// Get returns the cached result for a position's Zobrist hash, if any.
func (s *Store) Get(hash uint64) (CachedResult, bool, error) {
	var result CachedResult
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(hashKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &result)
		})
	})

	return result, found, err
}

// Put stores a result for a position's Zobrist hash, overwriting whatever
// was cached before. Callers are expected to only store results from
// searches at least as deep as what Get would otherwise return.
func (s *Store) Put(hash uint64, result CachedResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(hashKey(hash), data)
	})
}
