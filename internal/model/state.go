package model

// ExecutionState is the lifecycle state of a batch execution.
//
// Transitions: pending -> running -> completed | failed | stopped.
// A stop request can also take a pending execution straight to stopped.
// Terminal states never transition again.
type ExecutionState string

const (
	StatePending   ExecutionState = "pending"
	StateRunning   ExecutionState = "running"
	StateCompleted ExecutionState = "completed"
	StateFailed    ExecutionState = "failed"
	StateStopped   ExecutionState = "stopped"
)

// Terminal reports whether the state admits no further transitions.
func (s ExecutionState) Terminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateStopped:
		return true
	}
	return false
}
