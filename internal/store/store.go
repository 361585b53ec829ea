// Package store defines the lookup contracts the execution engine
// depends on, plus in-memory implementations of them. The engine only
// ever reads projects and test cases; swapping in a persistent backend
// means implementing these two interfaces.
package store

import (
	"errors"

	"github.com/probatch/probatch/internal/model"
)

// ErrNotFound is returned when a requested id is unknown to a store.
var ErrNotFound = errors.New("not found")

// ProjectStore resolves project ids to project records.
type ProjectStore interface {
	GetProject(id string) (*model.Project, error)
}

// TestCaseStore resolves test case ids to test case records.
type TestCaseStore interface {
	GetTestCase(id string) (*model.TestCase, error)
}
