package bignum

import (
	"fortio.org/safecast"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = BigNum{}
	_ msgpack.CustomDecoder = (*BigNum)(nil)
)

// EncodeMsgpack writes n as a two element array: the sign (+1 or -1) and
// the limbs, least significant first.
func (n BigNum) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(n.Sign())); err != nil {
		return err
	}
	limbs := n.mag()
	if err := enc.EncodeArrayLen(len(limbs)); err != nil {
		return err
	}
	for _, l := range limbs {
		if err := enc.EncodeUint(uint64(l)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads a value written by EncodeMsgpack. The decoded limbs are
// validated by FromLimbs, so out of range limbs, bad signs and values with
// more than Cap limbs are rejected.
func (n *BigNum) DecodeMsgpack(dec *msgpack.Decoder) error {
	ln, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if ln != 2 {
		return errors.Errorf("bignum: msgpack array has %d elements, expected 2", ln)
	}

	sign, err := dec.DecodeInt()
	if err != nil {
		return err
	}

	var raw []int64
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	limbs := make([]uint16, len(raw))
	for i, v := range raw {
		l, err := safecast.Conv[uint16](v)
		if err != nil {
			return errors.Wrapf(ErrInvalidLimb, "limb %d is %d", i, v)
		}
		limbs[i] = l
	}

	v, err := FromLimbs(sign, limbs)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
