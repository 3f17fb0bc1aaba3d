package native

/*
bs.go contains the BIT STRING routines. Bit 0 is the most significant
bit of the first content byte.
*/

import (
	"math"

	"golang.org/x/exp/constraints"
)

/*
ASN1BitStringNew allocates an empty BIT STRING.
*/
func ASN1BitStringNew() Handle {
	return alloc(&asn1String{typ: VBitString})
}

func bitStringAt(es *ErrState, fn string, h Handle) *asn1String {
	s := stringAt(es, fn, h)
	if s != nil && s.typ != VBitString {
		es.put(LibASN1, fn, ReasonWrongType)
		return nil
	}
	return s
}

func bitPos[T constraints.Integer](n T) (idx int, mask byte) {
	return int(n / 8), byte(0x80) >> uint(n%8)
}

/*
ASN1BitStringSetBit sets (value != 0) or clears bit n of h, growing the
content when a bit past the end is set. Trailing zero bytes are trimmed.
It returns 1 on success and 0 on failure, including negative n and
growth past the engine's length limit.
*/
func ASN1BitStringSetBit(es *ErrState, h Handle, n int, value int) int {
	const fn = "ASN1_BIT_STRING_set_bit"
	s := bitStringAt(es, fn, h)
	if s == nil {
		return 0
	} else if n < 0 {
		es.put(LibASN1, fn, ReasonIllegalNegativeBitIndex)
		return 0
	}

	idx, mask := bitPos(n)
	if idx >= len(s.data) {
		if value == 0 {
			return 1
		} else if idx >= math.MaxInt32 {
			// content length is bounded like every engine length
			es.put(LibASN1, fn, ReasonMallocFailure)
			return 0
		}
		grown := make([]byte, idx+1)
		copy(grown, s.data)
		s.data = grown
	}

	if value != 0 {
		s.data[idx] |= mask
	} else {
		s.data[idx] &^= mask
	}

	for len(s.data) > 0 && s.data[len(s.data)-1] == 0 {
		s.data = s.data[:len(s.data)-1]
	}
	return 1
}

/*
ASN1BitStringGetBit returns 1 when bit n of h is set. Bits beyond the
content, negative indices and invalid handles read as 0.
*/
func ASN1BitStringGetBit(h Handle, n int) int {
	s := lookup[asn1String](h)
	if s == nil || s.typ != VBitString || n < 0 {
		return 0
	}
	idx, mask := bitPos(n)
	if idx >= len(s.data) {
		return 0
	}
	if s.data[idx]&mask != 0 {
		return 1
	}
	return 0
}
