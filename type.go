package asn1safe

/*
type.go contains the Type owning/view pair, a container holding one
tagged ASN.1 value.
*/

import "github.com/JesseCoretta/go-asn1safe/internal/native"

/*
TypeRef is a borrowed view of a [Type].
*/
type TypeRef struct {
	cell *foreign
}

/*
Type owns one engine ASN1_TYPE handle, together with the value it
contains.
*/
type Type struct {
	TypeRef
}

func newType(h Handle) *Type {
	return &Type{TypeRef{newForeign("Type", h, native.ASN1TypeFree)}}
}

/*
NewType returns a new, empty *[Type].
*/
func NewType() (*Type, error) {
	return call(func(es *native.ErrState) (*Type, error) {
		h, err := cvtP("ASN1_TYPE_new", es, native.ASN1TypeNew())
		if err != nil {
			return nil, err
		}
		return newType(h), nil
	})
}

/*
TypeFromHandle takes exclusive ownership of h.
*/
func TypeFromHandle(h Handle) *Type { return newType(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *Type) Ref() TypeRef {
	if r == nil {
		return TypeRef{}
	}
	return r.TypeRef
}

/*
Close frees the underlying handle and the contained value. Only the
first call has any effect.
*/
func (r *Type) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it.
*/
func (r *Type) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r TypeRef) Handle() Handle { return r.cell.ptr() }

/*
Tag returns the universal tag of the contained value, or -1 when the
receiver is empty or closed.
*/
func (r TypeRef) Tag() int { return native.ASN1TypeGet(r.Handle()) }

/*
SetOctetString replaces the contained value with an OCTET STRING
holding a copy of data.
*/
func (r TypeRef) SetOctetString(data []byte) error {
	return call0(func(es *native.ErrState) error {
		return cvt("ASN1_TYPE_set_octetstring", es, native.ASN1TypeSetOctetString(es, r.Handle(), data))
	})
}

/*
OctetString returns a copy of the contained OCTET STRING.
*/
func (r TypeRef) OctetString() ([]byte, error) {
	return call(func(es *native.ErrState) ([]byte, error) {
		return sizedRead(es, "ASN1_TYPE_get_octetstring", r.Handle(), native.ASN1TypeGetOctetString)
	})
}

/*
sizedRead sizes a buffer with a first call to get and fills it with a
second. Both calls must report the same length.
*/
func sizedRead(es *native.ErrState, op string, h Handle, get func(*native.ErrState, Handle, []byte) int) ([]byte, error) {
	n, err := cvtN(op, es, get(es, h, nil))
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	m, err := cvtN(op, es, get(es, h, buf))
	if err != nil {
		return nil, err
	} else if m != n {
		return nil, conversionError(op, es)
	}
	return buf, nil
}

/*
SetNull replaces the contained value with NULL.
*/
func (r TypeRef) SetNull() error {
	return call0(func(es *native.ErrState) error {
		return cvt("ASN1_TYPE_set", es, native.ASN1TypeSetNull(es, r.Handle()))
	})
}
