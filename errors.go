package bignum

import (
	"github.com/pkg/errors"
)

var (
	// ErrOverflow is returned when a result would need more than Cap limbs.
	ErrOverflow = errors.New("bignum: overflow")

	// ErrDivisionByZero is returned by Quo, QuoRem and Rem when the divisor
	// is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrInvalidLimb is returned by FromLimbs when a limb is not in [0, Radix).
	ErrInvalidLimb = errors.New("bignum: limb out of range")

	// ErrInvalidSign is returned by FromLimbs when the sign is not +1 or -1.
	ErrInvalidSign = errors.New("bignum: invalid sign")
)

func overflowError(op string, limbs int) error {
	return errors.Wrapf(ErrOverflow, "%s needs %d limbs, capacity is %d", op, limbs, Cap)
}
