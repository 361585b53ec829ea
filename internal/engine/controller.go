// Package engine is the batch test execution engine: it schedules and
// runs sets of HTTP test cases under a concurrency limit and a retry
// policy, tracks each execution's lifecycle state, and aggregates
// pass/fail statistics.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/probatch/probatch/internal/httpclient"
	"github.com/probatch/probatch/internal/model"
	"github.com/probatch/probatch/internal/store"
)

// ExecutionRequest carries the parameters for one batch run.
type ExecutionRequest struct {
	ProjectID   string
	TestCaseIDs []string
	// ConcurrencyLimit bounds simultaneous in-flight cases. Must be >= 1.
	ConcurrencyLimit int
	// Timeout bounds each individual attempt, not the whole run.
	Timeout time.Duration
	// RetryCount is the number of extra attempts after the first.
	RetryCount int
	Strategy   string
}

// ValidationError reports an invalid execution parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid execution request: " + e.Field + ": " + e.Message
}

// validate rejects bad parameters synchronously, before any state is
// created.
func (r *ExecutionRequest) validate() error {
	if r.ProjectID == "" {
		return &ValidationError{Field: "project_id", Message: "must not be empty"}
	}
	if r.ConcurrencyLimit < 1 {
		return &ValidationError{Field: "concurrency_limit", Message: "must be at least 1"}
	}
	if r.Timeout <= 0 {
		return &ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if r.RetryCount < 0 {
		return &ValidationError{Field: "retry_count", Message: "must not be negative"}
	}
	if _, err := ParseStrategy(r.Strategy); err != nil {
		return &ValidationError{Field: "strategy", Message: err.Error()}
	}
	return nil
}

// Status is the cheap progress view of an execution.
type Status struct {
	State          model.ExecutionState `json:"status"`
	ResultCount    int                  `json:"result_count"`
	RequestedCount int                  `json:"requested_count"`
}

// Results is the full view: state, derived summary and per-case results.
type Results struct {
	State   model.ExecutionState        `json:"status"`
	Summary model.Summary               `json:"summary"`
	Results []model.TestExecutionResult `json:"results"`
}

// InvokerFactory builds the invoker used for one execution's project.
type InvokerFactory func(project *model.Project, timeout time.Duration) Invoker

// Controller is the public entry point of the engine. It creates
// execution records, launches their schedulers as detached goroutines,
// and answers status, results and stop requests. The controller is the
// only creator of execution records, which guarantees at most one
// scheduler run per execution id.
type Controller struct {
	projects   store.ProjectStore
	testCases  store.TestCaseStore
	executions ExecutionStore
	runner     *Runner
	newInvoker InvokerFactory
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithBackoff overrides the fixed wait between retry attempts.
func WithBackoff(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.runner.Backoff = d
	}
}

// WithInvokerFactory overrides how per-project invokers are built.
func WithInvokerFactory(f InvokerFactory) ControllerOption {
	return func(c *Controller) {
		c.newInvoker = f
	}
}

// WithExecutionStore overrides the execution record store.
func WithExecutionStore(s ExecutionStore) ControllerOption {
	return func(c *Controller) {
		c.executions = s
	}
}

// NewController creates a controller reading projects and test cases
// from the given stores.
func NewController(projects store.ProjectStore, testCases store.TestCaseStore, options ...ControllerOption) *Controller {
	c := &Controller{
		projects:   projects,
		testCases:  testCases,
		executions: NewMemoryExecutionStore(),
		runner:     NewRunner(testCases),
		newInvoker: defaultInvokerFactory,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func defaultInvokerFactory(project *model.Project, timeout time.Duration) Invoker {
	options := []httpclient.Option{
		httpclient.WithBaseURL(project.BaseURL),
		httpclient.WithTimeout(timeout),
	}
	for key, value := range project.Headers {
		options = append(options, httpclient.WithHeader(key, value))
	}
	return httpclient.NewClient(options...)
}

// Create validates the request, registers a pending execution and
// launches its scheduler in the background. Returns the execution id.
func (c *Controller) Create(ctx context.Context, req ExecutionRequest) (string, error) {
	if err := req.validate(); err != nil {
		return "", err
	}
	strategy, _ := ParseStrategy(req.Strategy)

	exec := newExecution(uuid.NewString(), req.ProjectID, req.TestCaseIDs, strategy)
	c.executions.Put(exec)

	go c.runExecution(ctx, exec, req)

	return exec.ID, nil
}

// runExecution resolves the project, builds the per-run scheduler and
// drives the execution to a terminal state.
func (c *Controller) runExecution(ctx context.Context, exec *Execution, req ExecutionRequest) {
	project, err := c.projects.GetProject(exec.ProjectID)
	if err != nil {
		// A missing project fails every case, not the create call:
		// per-case errors never abort the batch, and the batch is all
		// there is.
		exec.markRunning()
		for _, id := range exec.TestCaseIDs {
			now := time.Now()
			exec.appendResult(model.TestExecutionResult{
				TestCaseID:   id,
				Status:       model.StatusError,
				ErrorMessage: "project not found",
				StartedAt:    now,
				CompletedAt:  &now,
			})
		}
		exec.finalize()
		return
	}

	s := &scheduler{
		exec:       exec,
		runner:     c.runner,
		invoker:    c.newInvoker(project, req.Timeout),
		testCases:  c.testCases,
		gate:       NewGate(req.ConcurrencyLimit),
		timeout:    req.Timeout,
		retryCount: req.RetryCount,
	}
	s.run(ctx)
}

// Status returns progress counters for an execution.
func (c *Controller) Status(id string) (Status, error) {
	exec, err := c.executions.Get(id)
	if err != nil {
		return Status{}, err
	}
	return Status{
		State:          exec.State(),
		ResultCount:    exec.ResultCount(),
		RequestedCount: len(exec.TestCaseIDs),
	}, nil
}

// Results returns the execution's state, summary and accumulated
// results. Stopped executions expose a partial summary over whatever
// results they retained.
func (c *Controller) Results(id string) (*Results, error) {
	exec, err := c.executions.Get(id)
	if err != nil {
		return nil, err
	}

	results := exec.Results()
	return &Results{
		State:   exec.State(),
		Summary: Summarize(len(exec.TestCaseIDs), results),
		Results: results,
	}, nil
}

// Stop requests cooperative cancellation of a pending or running
// execution. In-flight cases finish; nothing further is dispatched.
// Stopping an execution already in a terminal state is an error.
func (c *Controller) Stop(id string) error {
	exec, err := c.executions.Get(id)
	if err != nil {
		return err
	}
	return exec.requestStop()
}

// List returns all known executions in creation order.
func (c *Controller) List() []*Execution {
	return c.executions.List()
}
