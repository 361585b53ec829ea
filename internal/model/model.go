// Package model contains the shared domain types for batch API testing:
// projects, test cases, execution results and summaries.
package model

import (
	"fmt"
	"time"
)

// Status is the outcome of a single test case execution.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// Priority controls scheduling order in the mixed strategy.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsHigh reports whether the priority belongs to the high partition
// (high or critical) of the mixed strategy.
func (p Priority) IsHigh() bool {
	return p == PriorityHigh || p == PriorityCritical
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// TestType tags a test case by what it probes.
type TestType string

const (
	TestTypeFunctional  TestType = "functional"
	TestTypeSecurity    TestType = "security"
	TestTypePerformance TestType = "performance"
	TestTypeIntegration TestType = "integration"
)

// ValidateMethod checks that an HTTP method is one the engine accepts.
func ValidateMethod(method string) error {
	switch method {
	case "GET", "POST", "PUT", "DELETE", "PATCH":
		return nil
	}
	return fmt.Errorf("unsupported HTTP method: %q", method)
}

// Project holds the connection details shared by a project's test cases.
type Project struct {
	ID      string            `json:"id" yaml:"id"`
	Name    string            `json:"name" yaml:"name"`
	BaseURL string            `json:"base_url" yaml:"base_url"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// TestCase is one declarative HTTP request plus its expected outcome.
// Test cases are read-only to the execution engine.
type TestCase struct {
	ID             string            `json:"id" yaml:"id"`
	ProjectID      string            `json:"project_id" yaml:"project_id"`
	Name           string            `json:"name" yaml:"name"`
	Method         string            `json:"method" yaml:"method"`
	Endpoint       string            `json:"endpoint" yaml:"endpoint"`
	Headers        map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	QueryParams    map[string]string `json:"query_params,omitempty" yaml:"query_params,omitempty"`
	Body           any               `json:"body,omitempty" yaml:"body,omitempty"`
	ExpectedStatus int               `json:"expected_status" yaml:"expected_status"`
	// ExpectedResponse lists top-level keys that must be present in the
	// actual response body for the case to pass. Flat key presence only.
	ExpectedResponse []string `json:"expected_response,omitempty" yaml:"expected_response,omitempty"`
	TestType         TestType `json:"test_type,omitempty" yaml:"test_type,omitempty"`
	Priority         Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
	Tags             []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// TestExecutionResult records the final outcome of one test case within
// an execution. Only the deciding attempt is recorded, never the
// intermediate retries.
type TestExecutionResult struct {
	TestCaseID string `json:"test_case_id"`
	Status     Status `json:"status"`
	// ResponseTime is the measured latency in milliseconds of the
	// deciding attempt. Nil when no response was ever received.
	ResponseTime   *float64   `json:"response_time,omitempty"`
	ActualStatus   *int       `json:"actual_status,omitempty"`
	ActualResponse string     `json:"actual_response,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Summary aggregates an execution's results. It is derived data:
// recomputing it from the same result list always yields the same value.
type Summary struct {
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Error           int     `json:"error"`
	Skipped         int     `json:"skipped"`
	PassRate        float64 `json:"pass_rate"`
	AvgResponseTime float64 `json:"avg_response_time"`
	// Latency percentiles in milliseconds over recorded response times.
	P50ResponseTime float64 `json:"p50_response_time"`
	P95ResponseTime float64 `json:"p95_response_time"`
	P99ResponseTime float64 `json:"p99_response_time"`
}
