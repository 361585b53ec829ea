// Package output renders execution results and summaries for the
// terminal.
package output

import (
	"fmt"
	"strings"

	"github.com/probatch/probatch/internal/model"
)

// Formatter renders results with optional color and verbosity.
type Formatter struct {
	verbose bool
	noColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a formatter.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor || !IsTerminal() {
		noColor = true
		scheme = NoColorScheme()
	}

	return &Formatter{
		verbose: verbose,
		noColor: noColor,
		scheme:  scheme,
	}
}

// FormatResult renders one test case result line (plus detail lines in
// verbose mode or on failure).
func (f *Formatter) FormatResult(r model.TestExecutionResult) string {
	var sb strings.Builder

	icon := SuccessIcon(f.noColor)
	statusText := f.scheme.Passed.Sprint(string(r.Status))
	switch r.Status {
	case model.StatusFailed:
		icon = ErrorIcon(f.noColor)
		statusText = f.scheme.Failed.Sprint(string(r.Status))
	case model.StatusError:
		icon = ErrorIcon(f.noColor)
		statusText = f.scheme.Error.Sprint(string(r.Status))
	case model.StatusSkipped:
		icon = WarningIcon(f.noColor)
		statusText = f.scheme.Skipped.Sprint(string(r.Status))
	}

	sb.WriteString(fmt.Sprintf("%s %s: %s", icon, r.TestCaseID, statusText))
	if r.ResponseTime != nil {
		sb.WriteString(f.scheme.Latency.Sprintf(" (%.2fms)", *r.ResponseTime))
	}
	sb.WriteString("\n")

	if r.Status != model.StatusPassed && r.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", r.ErrorMessage))
	}
	if f.verbose && r.ActualStatus != nil {
		sb.WriteString(fmt.Sprintf("  status code: %d\n", *r.ActualStatus))
	}

	return sb.String()
}

// FormatSummary renders the aggregate summary block.
func (f *Formatter) FormatSummary(state model.ExecutionState, s model.Summary) string {
	var sb strings.Builder

	sb.WriteString(f.scheme.Highlight.Sprintf("▶ EXECUTION %s\n", strings.ToUpper(string(state))))
	sb.WriteString(fmt.Sprintf("  Total:     %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("  Completed: %d\n", s.Completed))
	sb.WriteString(fmt.Sprintf("  Passed:    %s\n", f.scheme.Passed.Sprint(s.Passed)))
	sb.WriteString(fmt.Sprintf("  Failed:    %s\n", f.scheme.Failed.Sprint(s.Failed)))
	sb.WriteString(fmt.Sprintf("  Errors:    %s\n", f.scheme.Error.Sprint(s.Error)))
	sb.WriteString(fmt.Sprintf("  Skipped:   %d\n", s.Skipped))
	sb.WriteString(fmt.Sprintf("  Pass rate: %.2f%%\n", s.PassRate))
	sb.WriteString(fmt.Sprintf("  Avg time:  %.2fms\n", s.AvgResponseTime))
	if f.verbose && s.Completed > 0 {
		sb.WriteString(fmt.Sprintf("  p50/p95/p99: %.2f/%.2f/%.2fms\n",
			s.P50ResponseTime, s.P95ResponseTime, s.P99ResponseTime))
	}

	return sb.String()
}
