package docstore

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

type documentKey struct {
	collection string
	id         string
}

func (k documentKey) String() string {
	return k.collection + "/" + k.id
}

type memoryEntry struct {
	data    Document
	version uint64
}

// MemoryStore is an in-process Store with optimistic concurrency control:
// every document carries a version and a transaction commits only if none
// of the documents it read changed since it read them.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[documentKey]memoryEntry

	commits atomic.Uint64
	writes  atomic.Uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[documentKey]memoryEntry),
	}
}

func (s *MemoryStore) Begin(ctx context.Context) (Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return &memoryTx{
		store: s,
		reads: make(map[documentKey]uint64),
	}, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.docs[documentKey{collection: collection, id: id}]
	if !ok {
		return nil, ErrNotFound
	}

	return entry.data.Clone(), nil
}

// Put writes a document outside of any transaction. It is meant for seeding.
func (s *MemoryStore) Put(collection, id string, doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := documentKey{collection: collection, id: id}
	entry := s.docs[key]
	s.docs[key] = memoryEntry{data: doc.Clone(), version: entry.version + 1}
}

// Commits returns how many transactions committed at least one write.
func (s *MemoryStore) Commits() uint64 {
	return s.commits.Load()
}

// Writes returns how many document writes were committed.
func (s *MemoryStore) Writes() uint64 {
	return s.writes.Load()
}

type pendingWrite struct {
	key   documentKey
	patch Document
	mode  WriteMode
}

type memoryTx struct {
	store  *MemoryStore
	reads  map[documentKey]uint64
	writes []pendingWrite
	closed bool
}

func (tx *memoryTx) Get(ctx context.Context, collection, id string) (Document, error) {
	if tx.closed {
		return nil, ErrTxClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	key := documentKey{collection: collection, id: id}

	tx.store.mu.Lock()
	entry, exists := tx.store.docs[key]
	tx.store.mu.Unlock()

	if _, seen := tx.reads[key]; !seen {
		tx.reads[key] = entry.version
	}

	var doc Document
	if exists {
		doc = entry.data.Clone()
	}

	for _, w := range tx.writes {
		if w.key == key {
			doc = doc.Apply(w.patch, w.mode)
		}
	}

	if doc == nil {
		return nil, ErrNotFound
	}

	return doc, nil
}

func (tx *memoryTx) Set(_ context.Context, collection, id string, patch Document, mode WriteMode) error {
	if tx.closed {
		return ErrTxClosed
	}
	if mode != Merge && mode != Replace {
		return fmt.Errorf("unsupported write mode %s", mode)
	}

	tx.writes = append(tx.writes, pendingWrite{
		key:   documentKey{collection: collection, id: id},
		patch: patch.Clone(),
		mode:  mode,
	})

	return nil
}

func (tx *memoryTx) Commit(ctx context.Context) error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, readVersion := range tx.reads {
		if s.docs[key].version != readVersion {
			return fmt.Errorf("%w: %s changed since it was read", ErrConflict, key)
		}
	}

	if len(tx.writes) == 0 {
		return nil
	}

	for _, w := range tx.writes {
		entry := s.docs[w.key]
		s.docs[w.key] = memoryEntry{
			data:    entry.data.Apply(w.patch, w.mode),
			version: entry.version + 1,
		}
	}

	s.commits.Add(1)
	s.writes.Add(uint64(len(tx.writes)))

	return nil
}

func (tx *memoryTx) Rollback(_ context.Context) error {
	if tx.closed {
		return ErrTxClosed
	}
	tx.closed = true
	tx.writes = nil

	return nil
}
