/*
Package bignum provides BigNum, a signed integer stored as at most Cap (100)
limbs in base Radix (1000), implementing a small part of the big.Int API.

BigNum is a value type; all operations return new values. Results are always
canonical: no most-significant zero limbs, and zero is always positive.
Operations that would need more than Cap limbs fail with ErrOverflow instead
of growing.

Simple example:

	a := bignum.From64(123456)
	b := bignum.From64(789012)
	sum, err := a.Add(b)
	if err != nil {
		return err
	}
	fmt.Println(sum)
	// Output: 912.468

String renders limbs, not decimal digits: each limb is padded to three
digits and limbs are separated by '.'. Use the '%d' verb for positional
notation.

BigNum can be created from a variety of sources:

	From64(v int64) BigNum
	From32(v int32) BigNum
	From16(v int16) BigNum
	From8(v int8) BigNum
	FromInt(v int) BigNum
	FromU64(v uint64) BigNum
	FromBigInt(v *big.Int) (BigNum, error)
	FromLimbs(sign int, limbs []uint16) (BigNum, error)

Division truncates toward zero, like Go's '/' operator. With operands of
different signs and a nonzero remainder this is one more than floor
division would give: -7 / 2 is -3.

BigNum supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- encoding.TextMarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package bignum
