package round

import (
	"golang.org/x/exp/constraints"
)

// Mode selects how an inexact quotient is adjusted.
type Mode uint8

// Rounding Modes
const (
	Down Mode = iota
	Up
	Nearest
)

func (m Mode) String() string {
	switch m {
	case Down:
		return "down"
	case Up:
		return "up"
	case Nearest:
		return "nearest"
	}

	return "invalid"
}

// Modes lists every rounding mode. It is primarily useful for tests that
// must hold across all modes.
var Modes = []Mode{Down, Up, Nearest}

// Round adjusts quotient according to the mode and the division leftovers.
// It requires rem < den. The returned bool reports overflow: rounding up
// was required but quotient is already the maximum value of T.
//
// When overflow is reported the returned value is unspecified and must not
// be used.
func Round[T constraints.Unsigned](quotient, den, rem T, m Mode) (T, bool) {
	if rem == 0 {
		return quotient, false
	}

	up := false
	switch m {
	case Up:
		up = true
	case Nearest:
		// rem >= den/2, written without overflow since rem < den.
		up = rem >= den-rem
	}

	if !up {
		return quotient, false
	}

	if quotient == ^T(0) {
		return 0, true
	}

	return quotient + 1, false
}
