package output

import (
	"strings"
	"testing"
	"time"

	"github.com/probatch/probatch/internal/model"
)

func msPtr(v float64) *float64 { return &v }

func TestFormatResult(t *testing.T) {
	f := NewFormatter(false, true)
	now := time.Now()

	t.Run("passed", func(t *testing.T) {
		out := f.FormatResult(model.TestExecutionResult{
			TestCaseID:   "get-user",
			Status:       model.StatusPassed,
			ResponseTime: msPtr(12.34),
			StartedAt:    now,
			CompletedAt:  &now,
		})
		for _, want := range []string{"get-user", "passed", "12.34ms"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("failed includes error message", func(t *testing.T) {
		out := f.FormatResult(model.TestExecutionResult{
			TestCaseID:   "get-user",
			Status:       model.StatusFailed,
			ErrorMessage: "status mismatch: expected 200, actual 404",
			StartedAt:    now,
		})
		if !strings.Contains(out, "failed") {
			t.Errorf("output missing status:\n%s", out)
		}
		if !strings.Contains(out, "status mismatch: expected 200, actual 404") {
			t.Errorf("output missing error message:\n%s", out)
		}
	})

	t.Run("verbose shows status code", func(t *testing.T) {
		verbose := NewFormatter(true, true)
		code := 201
		out := verbose.FormatResult(model.TestExecutionResult{
			TestCaseID:   "create-user",
			Status:       model.StatusPassed,
			ActualStatus: &code,
			StartedAt:    now,
		})
		if !strings.Contains(out, "status code: 201") {
			t.Errorf("verbose output missing status code:\n%s", out)
		}
	})
}

func TestFormatSummary(t *testing.T) {
	f := NewFormatter(false, true)

	out := f.FormatSummary(model.StateCompleted, model.Summary{
		Total:           4,
		Completed:       4,
		Passed:          3,
		Failed:          1,
		PassRate:        75,
		AvgResponseTime: 42.5,
	})

	for _, want := range []string{"COMPLETED", "Total:     4", "Passed:    3", "Failed:    1", "75.00%", "42.50ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "p50/p95/p99") {
		t.Error("percentiles should only render in verbose mode")
	}

	verbose := NewFormatter(true, true)
	out = verbose.FormatSummary(model.StateCompleted, model.Summary{Completed: 1, P50ResponseTime: 1, P95ResponseTime: 2, P99ResponseTime: 3})
	if !strings.Contains(out, "p50/p95/p99: 1.00/2.00/3.00ms") {
		t.Errorf("verbose summary missing percentiles:\n%s", out)
	}
}
