package u256

import "github.com/zeebo/errs"

// Error is the class of errors raised by this package.
var Error = errs.Class("umath: u256")

// Precondition violations. These are raised via panic rather than returned:
// they indicate a caller bug, not a runtime condition.
var (
	ErrDivideByZero  = Error.New("divide by zero")
	ErrShiftTooLarge = Error.New("shift amount exceeds width")
)
