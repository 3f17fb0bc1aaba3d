package asn1safe

/*
int.go contains the Integer owning/view pair.
*/

import (
	"math/big"

	"github.com/JesseCoretta/go-asn1safe/internal/native"
)

/*
IntegerRef is a borrowed view of an [Integer].
*/
type IntegerRef struct {
	cell *foreign
}

/*
Integer owns one engine INTEGER handle.
*/
type Integer struct {
	IntegerRef
}

func newInteger(h Handle) *Integer {
	return &Integer{IntegerRef{newForeign("Integer", h, native.ASN1StringFree)}}
}

/*
NewInteger returns a new *[Integer] whose value is zero.
*/
func NewInteger() (*Integer, error) {
	return call(func(es *native.ErrState) (*Integer, error) {
		h, err := cvtP("ASN1_INTEGER_new", es, native.ASN1IntegerNew())
		if err != nil {
			return nil, err
		}
		return newInteger(h), nil
	})
}

/*
IntegerFromBig returns a new *[Integer] holding v, which may exceed the
range of int64.
*/
func IntegerFromBig(v *big.Int) (*Integer, error) {
	return call(func(es *native.ErrState) (*Integer, error) {
		h, err := cvtP("BN_to_ASN1_INTEGER", es, native.ASN1IntegerSetBig(es, 0, v))
		if err != nil {
			return nil, err
		}
		return newInteger(h), nil
	})
}

/*
IntegerFromHandle takes exclusive ownership of h.
*/
func IntegerFromHandle(h Handle) *Integer { return newInteger(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *Integer) Ref() IntegerRef {
	if r == nil {
		return IntegerRef{}
	}
	return r.IntegerRef
}

/*
Close frees the underlying handle. Only the first call has any effect.
*/
func (r *Integer) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it.
*/
func (r *Integer) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r IntegerRef) Handle() Handle { return r.cell.ptr() }

/*
Get returns the value of the receiver narrowed to int64. A value that
does not fit, like a closed receiver, yields -1; use [IntegerRef.Big]
to tell these apart from a genuine -1.
*/
func (r IntegerRef) Get() int64 {
	es := native.AcquireErrState()
	defer es.Release()
	return native.ASN1IntegerGet(es, r.Handle())
}

/*
Set assigns v to the receiver.
*/
func (r IntegerRef) Set(v int32) error {
	return call0(func(es *native.ErrState) error {
		return cvt("ASN1_INTEGER_set", es, native.ASN1IntegerSet(es, r.Handle(), int64(v)))
	})
}

/*
Big returns the value of the receiver as a new *[big.Int].
*/
func (r IntegerRef) Big() (*big.Int, error) {
	return call(func(es *native.ErrState) (*big.Int, error) {
		v := native.ASN1IntegerToBig(es, r.Handle())
		if v == nil {
			return nil, conversionError("ASN1_INTEGER_to_BN", es)
		}
		return v, nil
	})
}

/*
String returns the base-10 form of the receiver, or the empty string
on failure.
*/
func (r IntegerRef) String() string {
	if v, err := r.Big(); err == nil {
		return v.String()
	}
	return ""
}
