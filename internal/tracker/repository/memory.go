package repository

import (
	"context"
	"sync"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
	"github.com/google/uuid"
)

// MemoryRepo is a simple in-memory repository used for unit tests and
// local development without a Mongo instance.
type MemoryRepo[T tracker.Record] struct {
	mu    sync.RWMutex
	store map[string]T
	order []string
}

func NewMemoryRepo[T tracker.Record]() *MemoryRepo[T] {
	return &MemoryRepo[T]{store: make(map[string]T)}
}

func (m *MemoryRepo[T]) Create(ctx context.Context, rec T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.RecordID() == "" {
		rec.SetRecordID(uuid.NewString())
	}
	m.store[rec.RecordID()] = rec
	m.order = append(m.order, rec.RecordID())
	return nil
}

func (m *MemoryRepo[T]) ListOwned(ctx context.Context, owner string) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0)
	for _, id := range m.order {
		if rec, ok := m.store[id]; ok && rec.RecordOwner() == owner {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *MemoryRepo[T]) GetOwned(ctx context.Context, owner, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var zero T
	rec, ok := m.store[id]
	if !ok || rec.RecordOwner() != owner {
		return zero, ErrNotFound
	}
	return rec, nil
}

func (m *MemoryRepo[T]) UpdateOwned(ctx context.Context, owner, id string, rec T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.store[id]
	if !ok || existing.RecordOwner() != owner {
		return ErrNotFound
	}
	rec.SetRecordID(id)
	m.store[id] = rec
	return nil
}
