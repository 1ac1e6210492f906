package bignum

// DifferenceAbs subtracts the smaller of |a| and |b| from the larger. The
// result is never negative.
func DifferenceAbs(a, b BigNum) BigNum {
	switch cmpLimbs(a.mag(), b.mag()) {
	case 1:
		return newBigNum(false, subLimbs(a.mag(), b.mag()))
	case -1:
		return newBigNum(false, subLimbs(b.mag(), a.mag()))
	}
	return BigNum{}
}

// LargerAbs returns whichever of a and b has the larger magnitude, with its
// sign intact. If the magnitudes are equal, a is returned.
func LargerAbs(a, b BigNum) BigNum {
	if cmpLimbs(a.mag(), b.mag()) < 0 {
		return b
	}
	return a
}

// SmallerAbs returns whichever of a and b has the smaller magnitude, with its
// sign intact. If the magnitudes are equal, a is returned.
func SmallerAbs(a, b BigNum) BigNum {
	if cmpLimbs(a.mag(), b.mag()) > 0 {
		return b
	}
	return a
}
