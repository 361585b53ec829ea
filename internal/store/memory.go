package store

import (
	"sync"

	"github.com/probatch/probatch/internal/model"
)

// Memory is an in-memory ProjectStore and TestCaseStore backed by maps.
// Safe for concurrent use.
type Memory struct {
	mu        sync.RWMutex
	projects  map[string]*model.Project
	testCases map[string]*model.TestCase
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		projects:  make(map[string]*model.Project),
		testCases: make(map[string]*model.TestCase),
	}
}

// PutProject adds or replaces a project.
func (m *Memory) PutProject(p *model.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = p
}

// GetProject returns the project with the given id, or ErrNotFound.
func (m *Memory) GetProject(id string) (*model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// PutTestCase adds or replaces a test case.
func (m *Memory) PutTestCase(tc *model.TestCase) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.testCases[tc.ID] = tc
}

// GetTestCase returns the test case with the given id, or ErrNotFound.
func (m *Memory) GetTestCase(id string) (*model.TestCase, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tc, ok := m.testCases[id]
	if !ok {
		return nil, ErrNotFound
	}
	return tc, nil
}

var (
	_ ProjectStore  = (*Memory)(nil)
	_ TestCaseStore = (*Memory)(nil)
)
