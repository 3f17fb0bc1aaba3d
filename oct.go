package asn1safe

/*
oct.go contains the OctetString owning/view pair.
*/

import "github.com/JesseCoretta/go-asn1safe/internal/native"

/*
OctetStringRef is a borrowed view of an [OctetString].
*/
type OctetStringRef struct {
	cell *foreign
}

/*
OctetString owns one engine OCTET STRING handle.
*/
type OctetString struct {
	OctetStringRef
}

func newOctetString(h Handle) *OctetString {
	return &OctetString{OctetStringRef{newForeign("OctetString", h, native.ASN1StringFree)}}
}

/*
NewOctetString returns a new *[OctetString] holding a copy of data.
*/
func NewOctetString(data []byte) (*OctetString, error) {
	return call(func(es *native.ErrState) (*OctetString, error) {
		h := native.ASN1OctetStringNew()
		if err := cvt("ASN1_OCTET_STRING_set", es, native.ASN1StringSet(es, h, data)); err != nil {
			native.ASN1StringFree(h)
			return nil, err
		}
		return newOctetString(h), nil
	})
}

/*
OctetStringFromHandle takes exclusive ownership of h.
*/
func OctetStringFromHandle(h Handle) *OctetString { return newOctetString(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *OctetString) Ref() OctetStringRef {
	if r == nil {
		return OctetStringRef{}
	}
	return r.OctetStringRef
}

/*
Close frees the underlying handle. Only the first call has any effect.
*/
func (r *OctetString) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it.
*/
func (r *OctetString) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r OctetStringRef) Handle() Handle { return r.cell.ptr() }

/*
AsSlice returns the content without copying. The slice aliases engine
memory and must not be retained past [OctetString.Close].
*/
func (r OctetStringRef) AsSlice() []byte {
	h := r.Handle()
	return stringData(h)[:native.ASN1StringLength(h)]
}

/*
Len returns the byte length of the content.
*/
func (r OctetStringRef) Len() int { return native.ASN1StringLength(r.Handle()) }

/*
Clone returns an independent copy of the receiver.
*/
func (r OctetStringRef) Clone() (*OctetString, error) {
	return call(func(es *native.ErrState) (*OctetString, error) {
		h, err := cvtP("ASN1_OCTET_STRING_dup", es, native.ASN1OctetStringDup(es, r.Handle()))
		if err != nil {
			return nil, err
		}
		return newOctetString(h), nil
	})
}

/*
Text returns the printable form of the receiver: printable ASCII bytes
are kept and every other byte is rendered as '.'.
*/
func (r OctetStringRef) Text() (string, error) {
	return render("ASN1_STRING_print", r.Handle(), native.ASN1StringPrint)
}

/*
String returns the result of [OctetStringRef.Text], or the empty string
on failure.
*/
func (r OctetStringRef) String() string {
	s, _ := r.Text()
	return s
}
