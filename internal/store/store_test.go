package store

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir())
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("badger.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Store{db: db}
}

func TestStoreGetMiss(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Get(0x1234)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("Get on an empty store should miss")
	}
}

func TestStorePutAndGet(t *testing.T) {
	s := openTestStore(t)

	want := CachedResult{Depth: 6, Score: 123, Move: "e2e4"}
	if err := s.Put(0xABCD, want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := s.Get(0xABCD)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("expected a hit after Put")
	}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestStorePutOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(0x1, CachedResult{Depth: 4, Score: 10, Move: "e2e4"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(0x1, CachedResult{Depth: 8, Score: -5, Move: "d2d4"}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, found, err := s.Get(0x1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || got.Depth != 8 || got.Move != "d2d4" {
		t.Errorf("Get() = %+v, want the overwritten entry", got)
	}
}

func TestHashKeyDistinctForDistinctHashes(t *testing.T) {
	a := hashKey(0x1)
	b := hashKey(0x2)
	if string(a) == string(b) {
		t.Error("hashKey should differ for distinct hashes")
	}
}
