package core

import (
	"fmt"
	"sync"
)

// CallLimiter enforces a maximum number of tool resolution rounds per turn.
// It replaces unbounded recursion with a well-defined "too many tool calls"
// failure.
type CallLimiter struct {
	max   int
	count int
	mu    sync.Mutex
}

// NewCallLimiter creates a new limiter with a max number of rounds.
// If max == 0, unlimited rounds are allowed.
func NewCallLimiter(max int) *CallLimiter {
	return &CallLimiter{max: max}
}

// Increment increases the round counter and returns an error once the limit
// is exceeded.
func (cl *CallLimiter) Increment() error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.count++
	if cl.max > 0 && cl.count > cl.max {
		return fmt.Errorf("exceeded max tool resolution rounds: %d", cl.max)
	}

	return nil
}

// Count returns the current number of rounds taken.
func (cl *CallLimiter) Count() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return cl.count
}

// Remaining returns how many rounds are left before hitting the limit.
func (cl *CallLimiter) Remaining() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if cl.max == 0 {
		return -1 // unlimited
	}

	return cl.max - cl.count
}

// Reset clears the counter so the limiter can be reused for the next turn.
func (cl *CallLimiter) Reset() {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.count = 0
}
