package engine

import (
	"sort"
	"sync"

	"github.com/probatch/probatch/internal/store"
)

// ExecutionStore holds execution records by id. Entries are created on
// Create and never evicted automatically; cleanup policy is left to the
// deployment.
type ExecutionStore interface {
	Get(id string) (*Execution, error)
	Put(e *Execution)
	List() []*Execution
}

// MemoryExecutionStore is the in-process ExecutionStore.
type MemoryExecutionStore struct {
	mu         sync.RWMutex
	executions map[string]*Execution
}

// NewMemoryExecutionStore creates an empty execution store.
func NewMemoryExecutionStore() *MemoryExecutionStore {
	return &MemoryExecutionStore{executions: make(map[string]*Execution)}
}

// Get returns the execution with the given id, or store.ErrNotFound.
func (s *MemoryExecutionStore) Get(id string) (*Execution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.executions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return e, nil
}

// Put registers an execution under its id.
func (s *MemoryExecutionStore) Put(e *Execution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executions[e.ID] = e
}

// List returns all executions ordered by creation time.
func (s *MemoryExecutionStore) List() []*Execution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Execution, 0, len(s.executions))
	for _, e := range s.executions {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

var _ ExecutionStore = (*MemoryExecutionStore)(nil)
