// Package umath provides overflow-safe, rounding-aware arithmetic for
// fixed-width unsigned integers.
//
// The package itself covers the native widths (8, 16, 32, and 64 bits) with
// width-generic kernels: a fused multiply-divide and multiply-shift-right
// with a configurable rounding mode, exact integer base 2 and base 256
// logarithms, leading zero counting, overflow-free averaging, and checked
// shifts. The 128 and 256 bit widths are covered by the u128 and u256
// subpackages, which share the same operation set and the same rounding
// policy (package round).
//
// Every operation is a pure function of its inputs. Results that may exceed
// the requested width carry a trailing overflow bool; when it is true the
// accompanying value is unspecified and must not be used. Categorically
// invalid input (a zero divisor, an over-width shift amount passed to
// MulShr) panics: those are caller bugs, not runtime conditions, and are
// never conflated with overflow.
package umath
