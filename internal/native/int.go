package native

/*
int.go contains the INTEGER routines. An INTEGER is stored as a
big-endian magnitude with the sign carried in the type tag.
*/

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

/*
ASN1IntegerNew allocates an INTEGER with no content, which reads as 0.
*/
func ASN1IntegerNew() Handle {
	return alloc(&asn1String{typ: VInteger})
}

func integerAt(es *ErrState, fn string, h Handle) *asn1String {
	s := stringAt(es, fn, h)
	if s != nil && s.typ != VInteger && s.typ != VNegInteger {
		es.put(LibASN1, fn, ReasonWrongType)
		return nil
	}
	return s
}

func magnitude[T constraints.Signed](v T) (neg bool, mag uint64) {
	if v < 0 {
		// two's complement negation also covers the minimum value
		return true, uint64(-(int64(v) + 1)) + 1
	}
	return false, uint64(v)
}

func minimalBytes(mag uint64) []byte {
	var buf [8]byte
	i := len(buf)
	for mag > 0 {
		i--
		buf[i] = byte(mag)
		mag >>= 8
	}
	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out
}

/*
ASN1IntegerSet assigns v to h and returns 1, or 0 on failure.
*/
func ASN1IntegerSet(es *ErrState, h Handle, v int64) int {
	s := integerAt(es, "ASN1_INTEGER_set", h)
	if s == nil {
		return 0
	}
	neg, mag := magnitude(v)
	s.typ = VInteger
	if neg {
		s.typ = VNegInteger
	}
	s.data = minimalBytes(mag)
	return 1
}

/*
ASN1IntegerGet narrows h to an int64. Values that do not fit, and
invalid handles, yield -1 with a reason queued on es.
*/
func ASN1IntegerGet(es *ErrState, h Handle) int64 {
	const fn = "ASN1_INTEGER_get"
	s := integerAt(es, fn, h)
	if s == nil {
		return -1
	}
	if len(s.data) > 8 {
		es.put(LibASN1, fn, ReasonTooLarge)
		return -1
	}

	var mag uint64
	for _, b := range s.data {
		mag = mag<<8 | uint64(b)
	}

	if s.typ == VNegInteger {
		if mag > uint64(math.MaxInt64)+1 {
			es.put(LibASN1, fn, ReasonTooLarge)
			return -1
		}
		return -int64(mag-1) - 1
	}
	if mag > math.MaxInt64 {
		es.put(LibASN1, fn, ReasonTooLarge)
		return -1
	}
	return int64(mag)
}

/*
ASN1IntegerToBig returns h as a new *[big.Int], or nil on failure.
*/
func ASN1IntegerToBig(es *ErrState, h Handle) *big.Int {
	s := integerAt(es, "ASN1_INTEGER_to_BN", h)
	if s == nil {
		return nil
	}
	v := new(big.Int).SetBytes(s.data)
	if s.typ == VNegInteger {
		v.Neg(v)
	}
	return v
}

/*
ASN1IntegerSetBig assigns v to h, allocating a new INTEGER when h is the
null handle. It returns the handle written, or the null handle on
failure.
*/
func ASN1IntegerSetBig(es *ErrState, h Handle, v *big.Int) Handle {
	const fn = "BN_to_ASN1_INTEGER"
	if v == nil {
		es.put(LibASN1, fn, ReasonExpectingAnInteger)
		return 0
	}
	if h == 0 {
		h = ASN1IntegerNew()
	}
	s := integerAt(es, fn, h)
	if s == nil {
		return 0
	}
	s.typ = VInteger
	if v.Sign() < 0 {
		s.typ = VNegInteger
	}
	s.data = new(big.Int).Abs(v).Bytes()
	return h
}
