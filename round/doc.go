// Package round provides the rounding policy shared by every
// rounding-sensitive operation in umath.
//
// Every such operation reduces to an integer quotient plus a (remainder,
// denominator) pair with 0 <= remainder < denominator. The policy decides
// whether the quotient is adjusted upward:
//
//	Down     never
//	Up       whenever the remainder is non-zero
//	Nearest  when remainder >= denominator - remainder
//
// A remainder of exactly half the denominator is a tie, and ties round up.
// This is a documented convention of the library, not an approximation: the
// comparison is carried out on the integers themselves, never on a floating
// point image of them.
package round
