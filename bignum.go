package bignum

import (
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"strconv"

	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// BigNum is a signed integer made of at most Cap limbs in base Radix. The
// zero value is 0.
//
// BigNum is a value type; all operations return new values and never modify
// their operands, so a BigNum may be shared freely between goroutines.
type BigNum struct {
	neg bool

	// limbs holds the magnitude, least significant limb first, with no
	// most-significant zero limbs. nil means zero.
	limbs []uint16
}

// From64 creates a BigNum from an int64. An int64 never needs more than Cap
// limbs, so this cannot overflow.
func From64(v int64) BigNum {
	if v == 0 {
		return BigNum{}
	}
	if v < 0 {
		// -(v+1) avoids overflowing on math.MinInt64.
		return BigNum{neg: true, limbs: limbsFromUint64(uint64(-(v + 1)) + 1)}
	}
	return BigNum{limbs: limbsFromUint64(uint64(v))}
}

func From32(v int32) BigNum { return From64(int64(v)) }
func From16(v int16) BigNum { return From64(int64(v)) }
func From8(v int8) BigNum   { return From64(int64(v)) }
func FromInt(v int) BigNum  { return From64(int64(v)) }

func FromU64(v uint64) BigNum {
	if v == 0 {
		return BigNum{}
	}
	return BigNum{limbs: limbsFromUint64(v)}
}

// FromBigInt creates a BigNum from a big.Int. It fails with ErrOverflow if
// |v| >= Radix^Cap; negative values are bounded the same way as positive ones.
func FromBigInt(v *big.Int) (out BigNum, err error) {
	mag := new(big.Int).Abs(v)
	if mag.Cmp(wrapBigMagnitude) >= 0 {
		return out, errors.Wrapf(ErrOverflow, "big.Int with %d bits does not fit in %d limbs", mag.BitLen(), Cap)
	}
	if mag.Sign() == 0 {
		return out, nil
	}

	limbs := make([]uint16, 0, Cap)
	var rem big.Int
	for mag.Sign() > 0 {
		mag.QuoRem(mag, bigRadix, &rem)
		limbs = append(limbs, uint16(rem.Uint64()))
	}
	return BigNum{neg: v.Sign() < 0, limbs: limbs}, nil
}

// FromLimbs is the complement to Limbs(); it creates a BigNum from a sign
// (+1 or -1) and a magnitude stored least significant limb first.
//
// Most-significant zero limbs are dropped and a zero magnitude is always
// positive, so FromLimbs(-1, []uint16{0, 0}) is 0.
func FromLimbs(sign int, limbs []uint16) (out BigNum, err error) {
	if sign != 1 && sign != -1 {
		return out, errors.Wrapf(ErrInvalidSign, "sign %d", sign)
	}
	for i, l := range limbs {
		if l >= Radix {
			return out, errors.Wrapf(ErrInvalidLimb, "limb %d is %d", i, l)
		}
	}

	mag := trimLimbs(append([]uint16(nil), limbs...))
	if len(mag) > Cap {
		return out, overflowError("limbs", len(mag))
	}
	return newBigNum(sign < 0, mag), nil
}

// newBigNum canonicalises a freshly allocated magnitude. The caller must own
// limbs; it is retained without copying.
func newBigNum(neg bool, limbs []uint16) BigNum {
	limbs = trimLimbs(limbs)
	if isZeroLimbs(limbs) {
		return BigNum{}
	}
	return BigNum{neg: neg, limbs: limbs}
}

func limbsFromUint64(v uint64) []uint16 {
	limbs := make([]uint16, 0, maxInt64Limbs)
	for v > 0 {
		limbs = append(limbs, uint16(v%Radix))
		v /= Radix
	}
	return limbs
}

// mag returns the magnitude without copying. Callers must not write to it.
func (n BigNum) mag() []uint16 {
	if len(n.limbs) == 0 {
		return zeroLimbs
	}
	return n.limbs
}

func (n BigNum) IsZero() bool { return isZeroLimbs(n.limbs) }

// Sign returns -1 if n is negative and +1 otherwise. Unlike big.Int.Sign, the
// sign of zero is +1.
func (n BigNum) Sign() int {
	if n.neg {
		return -1
	}
	return 1
}

// Len returns the number of limbs in n. Zero has one limb.
func (n BigNum) Len() int { return len(n.mag()) }

// Limbs returns a copy of the magnitude, least significant limb first. See
// FromLimbs() for the counterpart.
func (n BigNum) Limbs() []uint16 {
	return append([]uint16(nil), n.mag()...)
}

// String renders n limb by limb, most significant first. Each limb is zero
// padded to LimbWidth digits and limbs are separated by '.', so 1234567
// renders as "001.234.567" and -56088 as "-056.088". The separator marks limb
// boundaries; it is not a decimal point.
func (n BigNum) String() string {
	return string(n.appendLimbs(nil))
}

func (n BigNum) appendLimbs(buf []byte) []byte {
	limbs := n.mag()
	if n.neg {
		buf = append(buf, '-')
	}
	for i := len(limbs) - 1; i >= 0; i-- {
		l := limbs[i]
		switch {
		case l < 10:
			buf = append(buf, '0', '0')
		case l < 100:
			buf = append(buf, '0')
		}
		buf = strconv.AppendUint(buf, uint64(l), 10)
		if i > 0 {
			buf = append(buf, '.')
		}
	}
	return buf
}

// Format implements fmt.Formatter. The integer verbs ('d', 'x', 'X', 'o',
// 'O', 'b') print positional notation via big.Int; everything else prints
// the limb rendering from String().
func (n BigNum) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 'x', 'X', 'o', 'O', 'b':
		n.AsBigInt().Format(s, c)
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(n.String()))
	default:
		_, _ = s.Write(n.appendLimbs(nil))
	}
}

// IntoBigInt copies this BigNum into a big.Int, allowing you to retain and
// recycle memory.
func (n BigNum) IntoBigInt(b *big.Int) {
	limbs := n.mag()
	var l big.Int
	b.SetInt64(0)
	for i := len(limbs) - 1; i >= 0; i-- {
		b.Mul(b, bigRadix)
		b.Add(b, l.SetUint64(uint64(limbs[i])))
	}
	if n.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this BigNum into it.
func (n BigNum) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	n.IntoBigInt(b)
	return b
}

// Int64 converts n to an int64. ok is false if n does not fit.
func (n BigNum) Int64() (v int64, ok bool) {
	limbs := n.mag()
	if len(limbs) > maxInt64Limbs {
		return 0, false
	}

	var mag uint64
	for i := len(limbs) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(mag, Radix)
		if hi != 0 {
			return 0, false
		}
		var carry uint64
		mag, carry = bits.Add64(lo, uint64(limbs[i]), 0)
		if carry != 0 {
			return 0, false
		}
	}

	if n.neg && mag == 1<<63 {
		return -1 << 63, true
	}
	v, err := safecast.Conv[int64](mag)
	if err != nil {
		return 0, false
	}
	if n.neg {
		v = -v
	}
	return v, true
}

// IsInt64 reports whether n can be represented as an int64.
func (n BigNum) IsInt64() bool {
	_, ok := n.Int64()
	return ok
}

// Neg returns -n. The negation of zero is zero, which is always positive.
func (n BigNum) Neg() BigNum {
	if n.IsZero() {
		return BigNum{}
	}
	return BigNum{neg: !n.neg, limbs: n.limbs}
}

// Abs returns |n|.
func (n BigNum) Abs() BigNum {
	return BigNum{limbs: n.limbs}
}

// CmpAbs compares the magnitudes of n and m, ignoring sign, and returns:
//
//	-1 if |n| <  |m|
//	 0 if |n| == |m|
//	+1 if |n| >  |m|
//
func (n BigNum) CmpAbs(m BigNum) int {
	return cmpLimbs(n.mag(), m.mag())
}

// Cmp compares n to m and returns:
//
//	-1 if n <  m
//	 0 if n == m
//	+1 if n >  m
//
func (n BigNum) Cmp(m BigNum) int {
	if n.neg != m.neg {
		if n.neg {
			return -1
		}
		return 1
	}
	c := cmpLimbs(n.mag(), m.mag())
	if n.neg {
		return -c
	}
	return c
}

func (n BigNum) Equal(m BigNum) bool {
	return n.neg == m.neg && cmpLimbs(n.mag(), m.mag()) == 0
}

func (n BigNum) GreaterThan(m BigNum) bool      { return n.Cmp(m) > 0 }
func (n BigNum) GreaterOrEqualTo(m BigNum) bool { return n.Cmp(m) >= 0 }
func (n BigNum) LessThan(m BigNum) bool         { return n.Cmp(m) < 0 }
func (n BigNum) LessOrEqualTo(m BigNum) bool    { return n.Cmp(m) <= 0 }

// MarshalText renders n with String(). There is no UnmarshalText; use
// FromLimbs or the msgpack codec to reconstruct a BigNum.
func (n BigNum) MarshalText() ([]byte, error) {
	return n.appendLimbs(nil), nil
}
