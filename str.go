package asn1safe

/*
str.go contains the String owning/view pair and its UTF-8 conversion.
*/

import "github.com/JesseCoretta/go-asn1safe/internal/native"

/*
StringType identifies the universal type of a [String].
*/
type StringType int

const (
	UTF8String      StringType = native.VUTF8String
	PrintableString StringType = native.VPrintableString
	T61String       StringType = native.VT61String
	IA5String       StringType = native.VIA5String
	VisibleString   StringType = native.VVisibleString
	UniversalString StringType = native.VUniversalString
	BMPString       StringType = native.VBMPString
	OctetStringType StringType = native.VOctetString
	BitStringType   StringType = native.VBitString
)

var stringTypeNames = map[StringType]string{
	UTF8String:      "UTF8String",
	PrintableString: "PrintableString",
	T61String:       "T61String",
	IA5String:       "IA5String",
	VisibleString:   "VisibleString",
	UniversalString: "UniversalString",
	BMPString:       "BMPString",
	OctetStringType: "OCTET STRING",
	BitStringType:   "BIT STRING",
}

/*
String returns the ASN.1 name of the receiver, or "UNKNOWN".
*/
func (r StringType) String() string {
	if n, ok := stringTypeNames[r]; ok {
		return n
	}
	return "UNKNOWN"
}

/*
StringRef is a borrowed view of a [String].
*/
type StringRef struct {
	cell *foreign
}

/*
String owns one engine string handle.
*/
type String struct {
	StringRef
}

func newString(h Handle) *String {
	return &String{StringRef{newForeign("String", h, native.ASN1StringFree)}}
}

/*
NewString returns a new *[String] of type typ holding a copy of data.
The content is not validated against typ; encoding problems surface in
[StringRef.AsUTF8].
*/
func NewString(typ StringType, data []byte) (*String, error) {
	return call(func(es *native.ErrState) (*String, error) {
		h := native.ASN1StringTypeNew(int(typ))
		if err := cvt("ASN1_STRING_set", es, native.ASN1StringSet(es, h, data)); err != nil {
			native.ASN1StringFree(h)
			return nil, err
		}
		return newString(h), nil
	})
}

/*
StringFromHandle takes exclusive ownership of h.
*/
func StringFromHandle(h Handle) *String { return newString(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *String) Ref() StringRef {
	if r == nil {
		return StringRef{}
	}
	return r.StringRef
}

/*
Close frees the underlying handle. Only the first call has any effect.
*/
func (r *String) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it.
*/
func (r *String) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r StringRef) Handle() Handle { return r.cell.ptr() }

/*
AsUTF8 converts the receiver into a UTF-8 string according to its type:
BMPString is read as UTF-16BE, UniversalString as UTF-32BE, UTF8String
is validated and every other type is read as Latin-1.
*/
func (r StringRef) AsUTF8() (string, error) {
	debugEnter(r.Type().String())
	defer debugExit()

	return call(func(es *native.ErrState) (string, error) {
		var out Handle
		if _, err := cvtN("ASN1_STRING_to_UTF8", es, native.ASN1StringToUTF8(es, &out, r.Handle())); err != nil {
			return "", err
		}
		defer native.CryptoFree(out)
		return string(native.CryptoBuffer(out)), nil
	})
}

/*
AsSlice returns the content of the receiver without copying. The slice
aliases engine memory and must not be retained past [String.Close] or
modified.
*/
func (r StringRef) AsSlice() []byte {
	h := r.Handle()
	return stringData(h)[:native.ASN1StringLength(h)]
}

/*
Len returns the byte length of the receiver, or 0 once closed.
*/
func (r StringRef) Len() int { return native.ASN1StringLength(r.Handle()) }

/*
Type returns the [StringType] of the receiver, or -1 once closed.
*/
func (r StringRef) Type() StringType { return StringType(native.ASN1StringType(r.Handle())) }
