package bignum

import (
	"math/big"
)

const (
	// Radix is the base of a single limb.
	Radix = 1000

	// Cap is the maximum number of limbs a BigNum may hold. The largest
	// representable magnitude is Radix^Cap - 1.
	Cap = 100

	// LimbWidth is the number of decimal digits in Radix-1, used to pad each
	// limb when rendering.
	LimbWidth = 3

	// maxInt64Limbs is the number of limbs needed by the magnitude of
	// math.MinInt64.
	maxInt64Limbs = 7
)

var (
	// MaxBigNum is Radix^Cap - 1, the largest representable value.
	MaxBigNum = BigNum{limbs: filledLimbs(Cap, Radix-1)}

	// MinBigNum is -(Radix^Cap - 1), the smallest representable value.
	MinBigNum = BigNum{neg: true, limbs: filledLimbs(Cap, Radix-1)}

	zeroBigNum BigNum
	oneBigNum  = BigNum{limbs: []uint16{1}}

	// zeroLimbs is the magnitude of a zero BigNum. It is shared and must
	// never be written to.
	zeroLimbs = []uint16{0}

	bigRadix = big.NewInt(Radix)

	// wrapBigMagnitude is Radix^Cap, the first magnitude that overflows.
	wrapBigMagnitude = new(big.Int).Exp(bigRadix, big.NewInt(Cap), nil)

	// maxBigMagnitude is Radix^Cap - 1.
	maxBigMagnitude = new(big.Int).Sub(wrapBigMagnitude, big.NewInt(1))
)

func filledLimbs(n int, v uint16) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = v
	}
	return out
}
