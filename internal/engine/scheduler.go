package engine

import (
	"context"
	"sync"
	"time"

	"github.com/probatch/probatch/internal/store"
)

// scheduler drives one execution to its terminal state. It owns the
// concurrency gate for the run and checks the execution's stop flag
// before dispatching every not-yet-started case; cases already in
// flight always run to their own completion or timeout.
type scheduler struct {
	exec      *Execution
	runner    *Runner
	invoker   Invoker
	testCases store.TestCaseStore
	gate      *Gate

	timeout    time.Duration
	retryCount int
}

func (s *scheduler) run(ctx context.Context) {
	s.exec.markRunning()

	switch s.exec.Strategy {
	case StrategySerial:
		s.runSerial(ctx, s.exec.TestCaseIDs)
	case StrategyParallel:
		s.runParallel(ctx, s.exec.TestCaseIDs)
	case StrategyMixed:
		high, normal := s.partition(s.exec.TestCaseIDs)
		s.runSerial(ctx, high)
		s.runParallel(ctx, normal)
	}

	s.exec.finalize()
}

// runSerial executes cases one at a time in request order.
func (s *scheduler) runSerial(ctx context.Context, ids []string) {
	for _, id := range ids {
		if s.exec.stopRequested() {
			return
		}
		result := s.runner.RunCase(ctx, s.invoker, id, s.timeout, s.retryCount)
		s.exec.appendResult(result)
	}
}

// runParallel dispatches all cases through the gate concurrently and
// waits for them to finish. Result order is completion order.
func (s *scheduler) runParallel(ctx context.Context, ids []string) {
	var wg sync.WaitGroup

	for _, id := range ids {
		if s.exec.stopRequested() {
			break
		}

		wg.Add(1)
		go func(id string) {
			defer wg.Done()

			if err := s.gate.Acquire(ctx); err != nil {
				return
			}
			defer s.gate.Release()

			// The stop may have landed while this case was queued on
			// the gate; it has not started yet, so it is not run.
			if s.exec.stopRequested() {
				return
			}

			result := s.runner.RunCase(ctx, s.invoker, id, s.timeout, s.retryCount)
			s.exec.appendResult(result)
		}(id)
	}

	wg.Wait()
}

// partition splits the requested ids into the high-priority partition
// (high, critical) and everything else, both in request order. Ids that
// cannot be resolved fall into the normal partition and surface their
// lookup error from the runner.
func (s *scheduler) partition(ids []string) (high, normal []string) {
	for _, id := range ids {
		tc, err := s.testCases.GetTestCase(id)
		if err == nil && tc.Priority.IsHigh() {
			high = append(high, id)
		} else {
			normal = append(normal, id)
		}
	}
	return high, normal
}
