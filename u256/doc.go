// Package u256 provides the canonical 256-bit working width of the umath
// kernels, together with the 512-bit Wide integer used to hold exact
// products of two 256-bit values.
//
// Uint256 is an immutable value type: operations return new values and never
// mutate their operands. Nothing here allocates on the heap and no value
// outlives the call that produced it, so every function may be used from any
// number of goroutines without synchronization.
//
// Overflow is always reported explicitly with a trailing bool; when it is
// true the accompanying value is unspecified and must not be used. The only
// aborts are the categorical precondition violations (zero divisor, an
// over-width shift amount in MulShr), which panic with a traced error.
package u256
