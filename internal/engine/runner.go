package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/probatch/probatch/internal/httpclient"
	"github.com/probatch/probatch/internal/model"
	"github.com/probatch/probatch/internal/store"
)

// Invoker performs one HTTP call for one built request.
// *httpclient.Client is the production implementation.
type Invoker interface {
	Do(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error)
}

// Runner executes a single test case with bounded retries and produces
// exactly one result: the outcome of the deciding attempt.
//
// Retry policy: transport errors and status-code mismatches are retried
// after a fixed backoff until attempts run out. A response-validation
// failure (status matched but an expected key is missing) is terminal
// immediately; a wrong body is not a transient condition.
type Runner struct {
	testCases store.TestCaseStore

	// Backoff is the fixed wait between attempts.
	Backoff time.Duration
}

// NewRunner creates a runner resolving test cases from the given store.
func NewRunner(testCases store.TestCaseStore) *Runner {
	return &Runner{
		testCases: testCases,
		Backoff:   time.Second,
	}
}

// RunCase resolves and executes one test case through the invoker,
// making up to retryCount+1 attempts, each bounded by timeout.
func (r *Runner) RunCase(ctx context.Context, invoker Invoker, testCaseID string, timeout time.Duration, retryCount int) model.TestExecutionResult {
	result := model.TestExecutionResult{
		TestCaseID: testCaseID,
		StartedAt:  time.Now(),
	}

	tc, err := r.testCases.GetTestCase(testCaseID)
	if err != nil {
		result.Status = model.StatusError
		if errors.Is(err, store.ErrNotFound) {
			result.ErrorMessage = "test case not found"
		} else {
			result.ErrorMessage = err.Error()
		}
		now := time.Now()
		result.CompletedAt = &now
		return result
	}

	for attempt := 0; attempt <= retryCount; attempt++ {
		outcome, retryable := r.attempt(ctx, invoker, tc, timeout)

		outcome.TestCaseID = testCaseID
		outcome.StartedAt = result.StartedAt
		result = outcome

		if !retryable || attempt == retryCount {
			break
		}

		select {
		case <-time.After(r.Backoff):
		case <-ctx.Done():
			return result
		}
	}

	return result
}

// attempt performs one invocation and applies the comparison policy.
// It returns the attempt's outcome and whether a retry may follow.
func (r *Runner) attempt(ctx context.Context, invoker Invoker, tc *model.TestCase, timeout time.Duration) (model.TestExecutionResult, bool) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := invoker.Do(attemptCtx, buildRequest(tc))

	now := time.Now()
	result := model.TestExecutionResult{CompletedAt: &now}

	if err != nil {
		result.Status = model.StatusError
		result.ErrorMessage = err.Error()
		return result, true
	}

	latency := resp.LatencyMillis()
	result.ResponseTime = &latency
	result.ActualStatus = &resp.StatusCode
	result.ActualResponse = string(resp.Body)

	if resp.StatusCode != tc.ExpectedStatus {
		result.Status = model.StatusFailed
		result.ErrorMessage = fmt.Sprintf("status mismatch: expected %d, actual %d", tc.ExpectedStatus, resp.StatusCode)
		return result, true
	}

	for _, key := range tc.ExpectedResponse {
		if !gjson.GetBytes(resp.Body, key).Exists() {
			result.Status = model.StatusFailed
			result.ErrorMessage = "response validation failed"
			return result, false
		}
	}

	result.Status = model.StatusPassed
	return result, false
}

// buildRequest translates a test case into an HTTP request.
func buildRequest(tc *model.TestCase) *httpclient.Request {
	req := httpclient.NewRequest(tc.Method, tc.Endpoint)
	for key, value := range tc.Headers {
		req.WithHeader(key, value)
	}
	for key, value := range tc.QueryParams {
		req.WithQueryParam(key, value)
	}
	if tc.Body != nil {
		req.WithBody(tc.Body)
	}
	return req
}
