// SPDX-License-Identifier: MIT

package iterate

import (
	"context"
	"sync/atomic"
)

// signal is one cancellable context derived from the criterion's parent.
type signal struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// Cancellation reports Cancelled once its signal has fired, either through
// Cancel or because the parent context was cancelled or timed out.
//
// Cancel and Status are safe to call from any goroutine. Evaluate, Reset and
// Clone follow the single-driver rule of every other criterion.
type Cancellation[T Scalar] struct {
	parent context.Context
	sig    atomic.Pointer[signal]
}

// NewCancellation creates a cancellation criterion linked to parent.
// A nil parent means context.Background().
func NewCancellation[T Scalar](parent context.Context) *Cancellation[T] {
	if parent == nil {
		parent = context.Background()
	}
	c := &Cancellation[T]{parent: parent}
	c.sig.Store(newSignal(parent))

	return c
}

func newSignal(parent context.Context) *signal {
	ctx, cancel := context.WithCancel(parent)

	return &signal{ctx: ctx, cancel: cancel}
}

// Evaluate reports the state of the signal. Arguments are not inspected.
func (c *Cancellation[T]) Evaluate(_ int, _, _, _ Vector[T]) (Status, error) {
	return c.Status(), nil
}

// Status returns Cancelled if the signal is done, Continue otherwise.
func (c *Cancellation[T]) Status() Status {
	if c.sig.Load().ctx.Err() != nil {
		return Cancelled
	}

	return Continue
}

// Cancel fires the signal. Idempotent.
func (c *Cancellation[T]) Cancel() {
	c.sig.Load().cancel()
}

// Context returns the current signal so solvers can hand it to blocking work.
// The returned context changes after Reset.
func (c *Cancellation[T]) Context() context.Context {
	return c.sig.Load().ctx
}

// Reset releases the current signal and derives a fresh one from the same
// parent. If the parent itself is already done the new signal is too.
func (c *Cancellation[T]) Reset() {
	old := c.sig.Swap(newSignal(c.parent))
	old.cancel()
}

// Clone returns a criterion with its own signal linked to the same parent.
func (c *Cancellation[T]) Clone() Criterion[T] {
	return NewCancellation[T](c.parent)
}
