package bignum

import (
	"github.com/pkg/errors"
)

// Add returns n+m. It fails with ErrOverflow if the sum needs more than Cap
// limbs.
//
// Operands with different signs are handed to Sub, so the limb addition
// below only ever sees two magnitudes with the same sign.
func (n BigNum) Add(m BigNum) (BigNum, error) {
	if n.neg != m.neg {
		if n.neg {
			return m.Sub(n.Neg())
		}
		return n.Sub(m.Neg())
	}

	limbs, ok := addLimbs(n.mag(), m.mag())
	if !ok {
		return BigNum{}, overflowError("add", Cap+1)
	}
	return newBigNum(n.neg, limbs), nil
}

// Sub returns n-m. Operands with the same sign can never overflow; operands
// with different signs are handed to Add and may fail with ErrOverflow.
func (n BigNum) Sub(m BigNum) (BigNum, error) {
	if n.neg != m.neg {
		return n.Add(m.Neg())
	}

	cmp := n.CmpAbs(m)
	if cmp == 0 {
		return BigNum{}, nil
	}

	// |n| < |m| flips the sign: 3-5 is -(5-3).
	neg := n.neg != (cmp < 0)
	return BigNum{neg: neg, limbs: DifferenceAbs(n, m).limbs}, nil
}

// Mul returns n*m using schoolbook multiplication. It fails with ErrOverflow
// as soon as a partial product needs more than Cap limbs.
func (n BigNum) Mul(m BigNum) (BigNum, error) {
	if n.IsZero() || m.IsZero() {
		return BigNum{}, nil
	}
	limbs, ok := mulLimbs(n.mag(), m.mag())
	if !ok {
		return BigNum{}, overflowError("mul", n.Len()+m.Len())
	}
	return newBigNum(n.neg != m.neg, limbs), nil
}

// Quo returns the quotient n/m for m != 0. If m == 0, ErrDivisionByZero is
// returned.
//
// The magnitude of the quotient is truncated before the sign is applied, so
// Quo truncates toward zero like Go's '/' operator. This is not floor
// division: -7 / 2 is -3, not -4. See QuoRem for more details.
func (n BigNum) Quo(m BigNum) (q BigNum, err error) {
	q, _, err = n.QuoRem(m)
	return q, err
}

// QuoRem returns the quotient q and remainder r for m != 0. If m == 0,
// ErrDivisionByZero is returned.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = n/m      with the result truncated to zero
//	r = n - m*q
//
// r always takes the sign of n. Euclidean and floor division are not
// supported.
func (n BigNum) QuoRem(m BigNum) (q, r BigNum, err error) {
	if m.IsZero() {
		return q, r, errors.Wrapf(ErrDivisionByZero, "%s / 0", n)
	}

	qneg := n.neg != m.neg

	switch cmp := n.CmpAbs(m); {
	case cmp < 0:
		return q, n, nil // it's 100% remainder
	case cmp == 0:
		return BigNum{neg: qneg, limbs: oneBigNum.limbs}, r, nil
	}

	if m.CmpAbs(oneBigNum) == 0 {
		return BigNum{neg: qneg, limbs: n.limbs}, r, nil
	}

	ql, rl := quoRemLimbs(n.mag(), m.mag())
	return newBigNum(qneg, ql), newBigNum(n.neg, rl), nil
}

// Rem returns the remainder n%m for m != 0. If m == 0, ErrDivisionByZero is
// returned. Rem implements truncated modulus (like Go); see QuoRem for more
// details.
func (n BigNum) Rem(m BigNum) (r BigNum, err error) {
	_, r, err = n.QuoRem(m)
	return r, err
}

func (n BigNum) Add64(v int64) (BigNum, error) { return n.Add(From64(v)) }
func (n BigNum) Sub64(v int64) (BigNum, error) { return n.Sub(From64(v)) }
func (n BigNum) Mul64(v int64) (BigNum, error) { return n.Mul(From64(v)) }
func (n BigNum) Quo64(v int64) (BigNum, error) { return n.Quo(From64(v)) }

func (n BigNum) QuoRem64(v int64) (q, r BigNum, err error) {
	return n.QuoRem(From64(v))
}

// addLimbs returns a+b. ok is false if the sum needs more than Cap limbs;
// the limb count is checked each time a limb is produced.
func addLimbs(a, b []uint16) (out []uint16, ok bool) {
	if len(a) < len(b) {
		a, b = b, a
	}

	out = make([]uint16, 0, len(a)+1)
	var carry uint16
	for i := range a {
		if len(out) == Cap {
			return nil, false
		}
		sum := a[i] + carry
		if i < len(b) {
			sum += b[i]
		}
		carry = sum / Radix
		out = append(out, sum%Radix)
	}
	if carry > 0 {
		if len(out) == Cap {
			return nil, false
		}
		out = append(out, carry)
	}
	return out, true
}

// subLimbs returns a-b. a must be at least as large as b.
func subLimbs(a, b []uint16) []uint16 {
	out := make([]uint16, len(a))
	copy(out, a)
	subInPlace(out, b)
	return trimLimbs(out)
}

// subInPlace subtracts sub from dst, propagating a borrow from the least
// significant limb up. dst must be at least as large as sub.
func subInPlace(dst, sub []uint16) {
	var borrow int
	for i := range dst {
		d := int(dst[i]) - borrow
		if i < len(sub) {
			d -= int(sub[i])
		} else if borrow == 0 {
			break
		}
		if d < 0 {
			d += Radix
			borrow = 1
		} else {
			borrow = 0
		}
		dst[i] = uint16(d)
	}
}

// mulLimbs returns a*b. ok is false if the product needs more than Cap
// limbs; this is checked after every row so large products fail early.
func mulLimbs(a, b []uint16) (out []uint16, ok bool) {
	acc := make([]uint32, len(a)+len(b)+1)

	for i := range a {
		ai := uint32(a[i])
		var carry uint32
		for j := range b {
			p := ai*uint32(b[j]) + acc[i+j] + carry
			carry = p / Radix
			acc[i+j] = p % Radix
		}
		top := i + len(b)
		acc[top] += carry

		// Partial products only grow, so any nonzero limb at or beyond Cap
		// means the final product overflows too.
		for k := Cap; k <= top; k++ {
			if acc[k] != 0 {
				return nil, false
			}
		}
	}

	out = make([]uint16, len(acc))
	for i, v := range acc {
		out[i] = uint16(v)
	}
	return trimLimbs(out), true
}

// quoRemLimbs performs long division of a by b, most significant limb first.
// b must be nonzero and smaller than a.
//
// Each quotient limb is the largest d in [0, Radix) with b*d <= rem, found by
// counting up from zero. Counting by repeated subtraction of b from rem
// gives the same d as comparing b*1, b*2, ... against rem without ever
// forming a product larger than rem.
func quoRemLimbs(a, b []uint16) (q, rem []uint16) {
	q = make([]uint16, len(a))
	rem = make([]uint16, 0, len(b)+1)

	for i := len(a) - 1; i >= 0; i-- {
		rem = shiftInLimb(rem, a[i])

		if cmpLimbs(rem, b) < 0 {
			continue // this quotient limb is 0
		}

		var d uint16
		for d < Radix-1 && cmpLimbs(rem, b) >= 0 {
			subInPlace(rem, b)
			rem = trimLimbs(rem)
			d++
		}
		q[i] = d
	}
	return trimLimbs(q), trimLimbs(rem)
}

// shiftInLimb returns rem*Radix + l, reusing rem's storage.
func shiftInLimb(rem []uint16, l uint16) []uint16 {
	if isZeroLimbs(rem) {
		return append(rem[:0], l)
	}
	rem = append(rem, 0)
	copy(rem[1:], rem)
	rem[0] = l
	return rem
}

// trimLimbs drops most-significant zero limbs, keeping at least one limb
// unless limbs is empty.
func trimLimbs(limbs []uint16) []uint16 {
	for len(limbs) > 1 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	return limbs
}

func isZeroLimbs(limbs []uint16) bool {
	return len(limbs) == 0 || (len(limbs) == 1 && limbs[0] == 0)
}

// cmpLimbs compares two canonical magnitudes. A longer magnitude is larger;
// equal lengths are compared from the most significant limb down.
func cmpLimbs(a, b []uint16) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}
