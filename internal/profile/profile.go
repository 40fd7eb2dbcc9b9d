// Package profile provides a single-shot wall-clock timer for arbitrary
// computations. It performs exactly one invocation per call: no retries, no
// warm-up, no multi-sample averaging.
package profile

import "time"

// Measure invokes f once and returns its result together with the elapsed
// wall-clock time around the call.
func Measure[R any](f func() R) (R, time.Duration) {
	start := time.Now()
	result := f()
	return result, time.Since(start)
}

// MeasureErr is the fallible variant of Measure. The duration covers the
// call whether or not it returned an error.
func MeasureErr[R any](f func() (R, error)) (R, time.Duration, error) {
	start := time.Now()
	result, err := f()
	return result, time.Since(start), err
}
