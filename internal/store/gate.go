// Package store caches the aggregated data layer output behind readiness
// gates so consumers observe either a fully loaded snapshot or a definitive
// failure, never a partial load.
package store

import "sync"

// Gate is a once-settled broadcast barrier. Any number of waiters may
// attach before or after settlement; each observes the single settlement
// outcome exactly once. There is no cancellation or timeout: a waiter
// blocks until the gate settles.
type Gate struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewGate returns an unsettled gate.
func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Settle records the outcome and releases all waiters. Only the first call
// has any effect.
func (g *Gate) Settle(err error) {
	g.once.Do(func() {
		g.err = err
		close(g.done)
	})
}

// Settled reports whether the gate has an outcome.
func (g *Gate) Settled() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Ready reports whether the gate settled successfully.
func (g *Gate) Ready() bool {
	return g.Settled() && g.err == nil
}

// Err returns the settlement error, or nil while unsettled.
func (g *Gate) Err() error {
	if !g.Settled() {
		return nil
	}
	return g.err
}

// Wait blocks until the gate settles and returns the outcome.
func (g *Gate) Wait() error {
	<-g.done
	return g.err
}
