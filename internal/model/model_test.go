package model

import "testing"

func TestPriority_IsHigh(t *testing.T) {
	tests := []struct {
		priority Priority
		want     bool
	}{
		{PriorityLow, false},
		{PriorityMedium, false},
		{PriorityHigh, true},
		{PriorityCritical, true},
	}

	for _, tt := range tests {
		if got := tt.priority.IsHigh(); got != tt.want {
			t.Errorf("%s.IsHigh() = %v, want %v", tt.priority, got, tt.want)
		}
	}
}

func TestPriority_Valid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		if !p.Valid() {
			t.Errorf("%s.Valid() = false", p)
		}
	}
	if Priority("urgent").Valid() {
		t.Error(`Priority("urgent").Valid() = true`)
	}
	if Priority("").Valid() {
		t.Error(`Priority("").Valid() = true`)
	}
}

func TestValidateMethod(t *testing.T) {
	for _, method := range []string{"GET", "POST", "PUT", "DELETE", "PATCH"} {
		if err := ValidateMethod(method); err != nil {
			t.Errorf("ValidateMethod(%q) = %v", method, err)
		}
	}
	for _, method := range []string{"get", "FETCH", ""} {
		if err := ValidateMethod(method); err == nil {
			t.Errorf("ValidateMethod(%q) = nil, want error", method)
		}
	}
}

func TestExecutionState_Terminal(t *testing.T) {
	tests := []struct {
		state ExecutionState
		want  bool
	}{
		{StatePending, false},
		{StateRunning, false},
		{StateCompleted, true},
		{StateFailed, true},
		{StateStopped, true},
	}

	for _, tt := range tests {
		if got := tt.state.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.state, got, tt.want)
		}
	}
}
