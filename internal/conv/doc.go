// Package conv provides discrete convolution routines over signed 64-bit
// integer sequences, treated as polynomial coefficient lists from lowest to
// highest degree.
//
// Two forms are implemented:
//
//   - Linear convolution: the coefficient sequence of the product of two
//     polynomials, with output length len(a)+len(b)-1.
//   - Circular (positive wrapped) convolution: convolution in the quotient
//     ring Z[x]/(x^n - 1), where index sums wrap modulo the common length n.
//
// Both are direct O(N*M) double loops with exact (wrapping) int64
// accumulation. For one-shot use, call the simple functions:
//
//	result, err := conv.Linear(a, b)
//	result, err := conv.Circular(a, b)
//
// The package also exposes a Convolver interface and a registry so callers
// can select algorithms by name, report progress, and honor context
// cancellation on oversized inputs.
package conv
