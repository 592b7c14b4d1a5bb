// Package fixed provides fixed point base 10 decimal numbers stored in a
// single machine word.
//
// The equation for a fixed point number is:
//
//	number = word / Scale
//
// Where word is the raw integer payload and Scale is 10^Digits. For
// example, with 9 fractional digits:
//
//	1.5 = 1_500_000_000 / 10^9
//
// UFixed64 wraps one uint64 word and delegates all arithmetic to the umath
// core. Fixed64 wraps one int64: it decomposes into sign and magnitude,
// performs the magnitude arithmetic on the unsigned core, and re-encodes
// the sign.
//
// Add, Sub, and friends are checked and report overflow. UncheckedAdd and
// UncheckedSub wrap modulo the word size; that wraparound is part of their
// contract, not an error path, and they are the only operations in the
// module that wrap silently.
package fixed
