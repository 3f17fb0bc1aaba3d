package asn1safe

/*
bs.go contains the BitString owning/view pair.
*/

import "github.com/JesseCoretta/go-asn1safe/internal/native"

/*
BitStringRef is a borrowed view of a [BitString].
*/
type BitStringRef struct {
	cell *foreign
}

/*
BitString owns one engine BIT STRING handle. Bit 0 is the most
significant bit of the first content byte.
*/
type BitString struct {
	BitStringRef
}

func newBitString(h Handle) *BitString {
	return &BitString{BitStringRef{newForeign("BitString", h, native.ASN1StringFree)}}
}

/*
NewBitString returns a new, empty *[BitString].
*/
func NewBitString() (*BitString, error) {
	return call(func(es *native.ErrState) (*BitString, error) {
		h, err := cvtP("ASN1_BIT_STRING_new", es, native.ASN1BitStringNew())
		if err != nil {
			return nil, err
		}
		return newBitString(h), nil
	})
}

/*
BitStringFromHandle takes exclusive ownership of h.
*/
func BitStringFromHandle(h Handle) *BitString { return newBitString(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *BitString) Ref() BitStringRef {
	if r == nil {
		return BitStringRef{}
	}
	return r.BitStringRef
}

/*
Close frees the underlying handle. Only the first call has any effect.
*/
func (r *BitString) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it.
*/
func (r *BitString) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r BitStringRef) Handle() Handle { return r.cell.ptr() }

/*
GetBit returns the state of bit n. Bits past the end of the content and
negative indices read as false.
*/
func (r BitStringRef) GetBit(n int) bool {
	return native.ASN1BitStringGetBit(r.Handle(), n) == 1
}

/*
SetBit sets or clears bit n, growing the content as needed. A negative
n is rejected by the engine.
*/
func (r BitStringRef) SetBit(n int, v bool) error {
	var value int
	if v {
		value = 1
	}
	return call0(func(es *native.ErrState) error {
		return cvt("ASN1_BIT_STRING_set_bit", es, native.ASN1BitStringSetBit(es, r.Handle(), n, value))
	})
}

/*
Len returns the byte length of the content.
*/
func (r BitStringRef) Len() int { return native.ASN1StringLength(r.Handle()) }

/*
AsSlice returns the content without copying.
*/
func (r BitStringRef) AsSlice() []byte {
	h := r.Handle()
	return stringData(h)[:native.ASN1StringLength(h)]
}
