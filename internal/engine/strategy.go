package engine

import "fmt"

// Strategy is the ordering/concurrency policy governing how an
// execution's cases are dispatched. The set is closed; unknown values
// are rejected at create time.
type Strategy string

const (
	// StrategySerial runs cases one at a time in request order.
	StrategySerial Strategy = "serial"

	// StrategyParallel dispatches all cases through the concurrency
	// gate at once; results arrive in completion order.
	StrategyParallel Strategy = "parallel"

	// StrategyMixed runs high and critical priority cases serially in
	// request order first, then the rest in parallel. High-priority
	// probes never compete for slots with lower-priority ones.
	StrategyMixed Strategy = "mixed"
)

// ParseStrategy validates and converts a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySerial, StrategyParallel, StrategyMixed:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown execution strategy: %q", s)
}
