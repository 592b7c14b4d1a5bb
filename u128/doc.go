// Package u128 provides the 128-bit width of the umath operation set. The
// Uint128 carrier type normalizes into the canonical 256-bit width, invokes
// the u256 kernels, and narrows the result back with an explicit fit check.
package u128
