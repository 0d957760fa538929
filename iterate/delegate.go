// SPDX-License-Identifier: MIT

package iterate

// EvaluateFunc has exactly the signature of Criterion.Evaluate.
type EvaluateFunc[T Scalar] func(iteration int, solution, source, residual Vector[T]) (Status, error)

// Delegate wraps a caller-supplied decision function and remembers its last
// successful verdict.
type Delegate[T Scalar] struct {
	fn     EvaluateFunc[T]
	status Status
}

// NewDelegate wraps fn. Returns ErrNilCallback if fn is nil.
func NewDelegate[T Scalar](fn EvaluateFunc[T]) (*Delegate[T], error) {
	if fn == nil {
		return nil, iterateErrorf("NewDelegate", ErrNilCallback)
	}

	return &Delegate[T]{fn: fn, status: Continue}, nil
}

// Evaluate calls the wrapped function verbatim. When it returns an error the
// remembered status is left unchanged.
func (c *Delegate[T]) Evaluate(iteration int, solution, source, residual Vector[T]) (Status, error) {
	status, err := c.fn(iteration, solution, source, residual)
	if err != nil {
		return c.status, err
	}
	c.status = status

	return status, nil
}

// Status returns the last verdict.
func (c *Delegate[T]) Status() Status { return c.status }

// Reset sets the remembered status back to Continue.
func (c *Delegate[T]) Reset() { c.status = Continue }

// Clone shares the wrapped function with a fresh status.
func (c *Delegate[T]) Clone() Criterion[T] {
	return &Delegate[T]{fn: c.fn, status: Continue}
}
