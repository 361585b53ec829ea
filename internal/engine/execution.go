package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/probatch/probatch/internal/model"
)

// ErrTerminalState is returned when a stop is requested on an
// execution that already reached a terminal state.
var ErrTerminalState = errors.New("cannot stop an execution already in terminal state")

// Execution is the record of one batch run: its parameters, lifecycle
// state and accumulated results. There is exactly one Execution per
// execution id for the process lifetime; the scheduler appends results
// to it while status and result queries read from it, so all access
// goes through the record's mutex.
type Execution struct {
	ID          string
	ProjectID   string
	TestCaseIDs []string
	Strategy    Strategy
	CreatedAt   time.Time

	mu      sync.Mutex
	state   model.ExecutionState
	stopped bool
	results []model.TestExecutionResult
}

func newExecution(id, projectID string, testCaseIDs []string, strategy Strategy) *Execution {
	ids := make([]string, len(testCaseIDs))
	copy(ids, testCaseIDs)

	return &Execution{
		ID:          id,
		ProjectID:   projectID,
		TestCaseIDs: ids,
		Strategy:    strategy,
		CreatedAt:   time.Now(),
		state:       model.StatePending,
	}
}

// State returns the current lifecycle state.
func (e *Execution) State() model.ExecutionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Results returns a snapshot of the accumulated results.
func (e *Execution) Results() []model.TestExecutionResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]model.TestExecutionResult, len(e.results))
	copy(out, e.results)
	return out
}

// ResultCount returns the number of results recorded so far.
func (e *Execution) ResultCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.results)
}

// markRunning moves pending -> running. A no-op if a stop already won
// the race or the execution is past pending.
func (e *Execution) markRunning() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == model.StatePending {
		e.state = model.StateRunning
	}
}

// appendResult records one test case outcome. Results are frozen once
// the execution is stopped: a case that finished after the stop was
// observed is dropped rather than appended.
func (e *Execution) appendResult(r model.TestExecutionResult) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == model.StateStopped {
		return
	}
	e.results = append(e.results, r)
}

// requestStop transitions a pending or running execution to stopped.
// Partial results are retained. Returns ErrTerminalState when the
// execution already reached a terminal state.
func (e *Execution) requestStop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Terminal() {
		return ErrTerminalState
	}
	e.state = model.StateStopped
	e.stopped = true
	return nil
}

// stopRequested reports whether a stop has been observed. The scheduler
// checks this before dispatching each not-yet-started case.
func (e *Execution) stopRequested() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

// finalize settles the terminal state once all scheduled cases have a
// result. Stopped executions stay stopped; otherwise any failed or
// error result makes the run failed, and a clean sheet completes it.
func (e *Execution) finalize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Terminal() {
		return
	}

	for _, r := range e.results {
		if r.Status == model.StatusFailed || r.Status == model.StatusError {
			e.state = model.StateFailed
			return
		}
	}
	e.state = model.StateCompleted
}
