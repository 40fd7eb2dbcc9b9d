package conv

import "errors"

// Sequence is an ordered list of signed 64-bit polynomial coefficients,
// zero-indexed from the lowest degree. Inputs are read-only; every function
// in this package returns a freshly allocated Sequence.
type Sequence = []int64

// Errors returned by the convolution functions.
var (
	// ErrEmptyInput is returned when either input sequence is empty.
	// Linear convolution of an empty sequence would require an output of
	// length n+m-1 <= 0, so empty inputs are rejected rather than defined.
	ErrEmptyInput = errors.New("conv: empty input")

	// ErrLengthMismatch is returned by Circular when the two inputs do not
	// share the same length. Equal lengths are the ring dimension invariant
	// of Z[x]/(x^n - 1); a violation is a precondition failure, never a
	// silently wrong numeric result.
	ErrLengthMismatch = errors.New("conv: sequence length mismatch")
)

// Linear computes the full linear convolution of a and b: the coefficient
// list of the product polynomial A(x)*B(x). The result has length
// len(a)+len(b)-1 where C[k] = sum of a[i]*b[j] over all i+j = k.
//
// Accumulation is exact int64 arithmetic; overflow wraps and is not
// detected. Returns ErrEmptyInput if either sequence is empty.
func Linear(a, b Sequence) (Sequence, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	result := make(Sequence, len(a)+len(b)-1)
	LinearTo(result, a, b)
	return result, nil
}

// LinearTo computes the linear convolution of a and b into a pre-allocated
// destination. dst must have length len(a)+len(b)-1. Any iteration order
// over the (i, j) pairs is equivalent; this one walks a in the outer loop.
func LinearTo(dst, a, b Sequence) {
	for i := range dst {
		dst[i] = 0
	}
	for i, ca := range a {
		for j, cb := range b {
			dst[i+j] += ca * cb
		}
	}
}

// Circular computes the positive wrapped convolution of a and b in the ring
// Z[x]/(x^n - 1): R[x] = sum over i of a[i]*b[(x-i) mod n]. Both inputs must
// have the same length n >= 1, and the result has length n.
//
// Returns ErrEmptyInput if the inputs are empty and ErrLengthMismatch if
// their lengths differ.
func Circular(a, b Sequence) (Sequence, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	result := make(Sequence, len(a))
	CircularTo(result, a, b)
	return result, nil
}

// CircularTo computes the positive wrapped convolution into a pre-allocated
// destination of length len(a). The wrapped index is computed as (x+n-i)%n:
// with 0 <= i < n the pre-modulo value x+n-i is always nonnegative, so the
// result lies in [0, n-1] without relying on the sign behavior of Go's %
// operator for negative operands.
func CircularTo(dst, a, b Sequence) {
	n := len(a)
	for x := 0; x < n; x++ {
		var acc int64
		for i := 0; i < n; i++ {
			j := (x + n - i) % n
			acc += a[i] * b[j]
		}
		dst[x] = acc
	}
}

// WrapLinear folds a full linear-convolution result back into the ring
// Z[x]/(x^n - 1) by summing coefficients at indices congruent modulo n.
// Applied to Linear(a, b) with n = len(a) = len(b), it reproduces
// Circular(a, b) exactly; the orchestrator uses this identity as a
// cross-algorithm consistency check.
func WrapLinear(full Sequence, n int) Sequence {
	if n <= 0 {
		return nil
	}
	wrapped := make(Sequence, n)
	for k, c := range full {
		wrapped[k%n] += c
	}
	return wrapped
}

// CircularIdentity returns the multiplicative unit of Z[x]/(x^n - 1):
// the sequence [1, 0, ..., 0] of length n.
func CircularIdentity(n int) Sequence {
	id := make(Sequence, n)
	id[0] = 1
	return id
}
