package conv

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Convolver is the algorithm abstraction used by the orchestration layer.
// Implementations perform one convolution run to completion, checking ctx
// between outer-loop rows so oversized inputs can be canceled, and calling
// report with a completion fraction in [0, 1].
//
// The pure functions Linear and Circular remain the library surface for
// callers that need neither cancellation nor progress.
type Convolver interface {
	// Name returns the human-readable algorithm identifier.
	Name() string

	// Description returns a one-line summary shown in listings.
	Description() string

	// Convolve computes the convolution of a and b. The report callback may
	// be nil. The returned sequence is freshly allocated.
	Convolve(ctx context.Context, report func(float64), a, b Sequence) (Sequence, error)
}

// progressStride returns how many outer-loop rows to process between
// progress reports. Reporting every row would dominate small runs.
func progressStride(n int) int {
	stride := n / 100
	if stride < 1 {
		stride = 1
	}
	return stride
}

// LinearConvolver computes the full polynomial product.
type LinearConvolver struct{}

// Name returns the algorithm identifier.
func (LinearConvolver) Name() string { return "Linear" }

// Description returns a one-line summary.
func (LinearConvolver) Description() string {
	return "full polynomial multiplication, output length n+m-1"
}

// Convolve computes the linear convolution row by row, where row i
// accumulates a[i]*b into dst[i:i+m].
func (LinearConvolver) Convolve(ctx context.Context, report func(float64), a, b Sequence) (Sequence, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	result := make(Sequence, n+len(b)-1)
	stride := progressStride(n)

	for i, ca := range a {
		if i%stride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if report != nil {
				report(float64(i) / float64(n))
			}
		}
		for j, cb := range b {
			result[i+j] += ca * cb
		}
	}
	if report != nil {
		report(1.0)
	}
	return result, nil
}

// CircularConvolver computes the positive wrapped convolution in
// Z[x]/(x^n - 1).
type CircularConvolver struct{}

// Name returns the algorithm identifier.
func (CircularConvolver) Name() string { return "Circular" }

// Description returns a one-line summary.
func (CircularConvolver) Description() string {
	return "positive wrapped convolution in Z[x]/(x^n - 1), output length n"
}

// Convolve computes the wrapped convolution one output coefficient per row.
func (CircularConvolver) Convolve(ctx context.Context, report func(float64), a, b Sequence) (Sequence, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	n := len(a)
	result := make(Sequence, n)
	stride := progressStride(n)

	for x := 0; x < n; x++ {
		if x%stride == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if report != nil {
				report(float64(x) / float64(n))
			}
		}
		var acc int64
		for i := 0; i < n; i++ {
			acc += a[i] * b[(x+n-i)%n]
		}
		result[x] = acc
	}
	if report != nil {
		report(1.0)
	}
	return result, nil
}

// ConvolverFactory resolves algorithm names to implementations. Lookup is
// case-insensitive; List returns the registered keys sorted for reproducible
// selection order.
type ConvolverFactory struct {
	registry map[string]Convolver
}

// NewDefaultFactory returns a factory with both built-in algorithms
// registered under the keys "linear" and "circular".
func NewDefaultFactory() *ConvolverFactory {
	return &ConvolverFactory{
		registry: map[string]Convolver{
			"linear":   LinearConvolver{},
			"circular": CircularConvolver{},
		},
	}
}

// Get returns the convolver registered under name.
func (f *ConvolverFactory) Get(name string) (Convolver, error) {
	c, ok := f.registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q (available: %s)", name, strings.Join(f.List(), ", "))
	}
	return c, nil
}

// List returns the sorted registry keys.
func (f *ConvolverFactory) List() []string {
	keys := make([]string, 0, len(f.registry))
	for k := range f.registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns every registered convolver in List order.
func (f *ConvolverFactory) GetAll() []Convolver {
	keys := f.List()
	all := make([]Convolver, 0, len(keys))
	for _, k := range keys {
		all = append(all, f.registry[k])
	}
	return all
}
