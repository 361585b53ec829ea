package engine

import "context"

// Gate is a counting admission pool bounding how many test case runs
// may be in flight at once. Acquire blocks until a slot is free or the
// context is cancelled; Release must be called exactly once per
// successful Acquire.
type Gate struct {
	slots chan struct{}
}

// NewGate creates a gate admitting at most size concurrent holders.
// size must be >= 1.
func NewGate(size int) *Gate {
	if size < 1 {
		size = 1
	}
	return &Gate{slots: make(chan struct{}, size)}
}

// Acquire blocks until a slot is free. Returns the context's error if
// it is cancelled while waiting.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot.
func (g *Gate) Release() {
	<-g.slots
}

// InFlight returns the number of slots currently held.
func (g *Gate) InFlight() int {
	return len(g.slots)
}

// Size returns the gate's capacity.
func (g *Gate) Size() int {
	return cap(g.slots)
}
