package native

/*
string.go contains the generic ASN.1 string storage shared by strings,
time values, integers, octet strings and bit strings, alongside the
length, data access, print and UTF-8 conversion routines.
*/

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Universal type tags understood by the engine.
const (
	VUndef           = -1
	VBoolean         = 1
	VInteger         = 2
	VBitString       = 3
	VOctetString     = 4
	VNull            = 5
	VObject          = 6
	VUTF8String      = 12
	VPrintableString = 19
	VT61String       = 20
	VIA5String       = 22
	VUTCTime         = 23
	VGeneralizedTime = 24
	VVisibleString   = 26
	VUniversalString = 28
	VBMPString       = 30

	// VNegInteger marks an INTEGER holding a negative magnitude.
	VNegInteger = VInteger | 0x100
)

type asn1String struct {
	typ  int
	data []byte
}

type cbuf struct {
	b []byte
}

func stringAt(es *ErrState, fn string, h Handle) *asn1String {
	s := lookup[asn1String](h)
	if s == nil {
		es.put(LibASN1, fn, ReasonInvalidHandle)
	}
	return s
}

/*
ASN1StringTypeNew allocates an empty string of type typ.
*/
func ASN1StringTypeNew(typ int) Handle {
	return alloc(&asn1String{typ: typ})
}

/*
ASN1StringSet replaces the contents of h with a copy of data and
returns 1, or 0 on failure.
*/
func ASN1StringSet(es *ErrState, h Handle, data []byte) int {
	s := stringAt(es, "ASN1_STRING_set", h)
	if s == nil {
		return 0
	}
	s.data = slices.Clone(data)
	return 1
}

/*
ASN1StringLength returns the byte length of h, or 0 for an invalid
handle.
*/
func ASN1StringLength(h Handle) int {
	if s := lookup[asn1String](h); s != nil {
		return len(s.data)
	}
	return 0
}

/*
ASN1StringType returns the type tag of h, or [VUndef].
*/
func ASN1StringType(h Handle) int {
	if s := lookup[asn1String](h); s != nil {
		return s.typ
	}
	return VUndef
}

/*
ASN1StringData returns the internal buffer of h. The slice aliases
engine memory and is only valid until the next mutation or free.

This is the accessor of older engine releases; newer callers use
[ASN1StringGet0Data].
*/
func ASN1StringData(h Handle) []byte {
	if s := lookup[asn1String](h); s != nil {
		return s.data
	}
	return nil
}

/*
ASN1StringGet0Data returns a read-only alias of the internal buffer of h.
*/
func ASN1StringGet0Data(h Handle) []byte {
	if s := lookup[asn1String](h); s != nil {
		return s.data[:len(s.data):len(s.data)]
	}
	return nil
}

/*
ASN1StringDup duplicates h, returning the null handle on failure.
*/
func ASN1StringDup(es *ErrState, h Handle) Handle {
	s := stringAt(es, "ASN1_STRING_dup", h)
	if s == nil {
		return 0
	}
	return alloc(&asn1String{typ: s.typ, data: slices.Clone(s.data)})
}

/*
ASN1StringFree releases h. Freeing an unknown handle is counted but has
no other effect.
*/
func ASN1StringFree(h Handle) {
	release[asn1String](h)
}

/*
ASN1StringPrint writes the printable form of h to bio: bytes outside the
printable ASCII range (other than CR and LF) are replaced by '.'. It
returns 1 on success and 0 on failure.
*/
func ASN1StringPrint(es *ErrState, bio Handle, h Handle) int {
	s := stringAt(es, "ASN1_STRING_print", h)
	if s == nil {
		return 0
	}

	var chunk [80]byte
	n := 0
	for _, c := range s.data {
		if c > '~' || (c < ' ' && c != '\n' && c != '\r') {
			c = '.'
		}
		chunk[n] = c
		n++
		if n == len(chunk) {
			if BIOWrite(bio, chunk[:n]) != n {
				es.put(LibASN1, "ASN1_STRING_print", ReasonWriteFailure)
				return 0
			}
			n = 0
		}
	}
	if n > 0 && BIOWrite(bio, chunk[:n]) != n {
		es.put(LibASN1, "ASN1_STRING_print", ReasonWriteFailure)
		return 0
	}
	return 1
}

/*
ASN1StringToUTF8 converts h from its native encoding into a newly
allocated UTF-8 buffer stored in *out. It returns the converted length,
or a negative value on failure, in which case *out is left untouched.
The buffer must be read with [CryptoBuffer] and released with
[CryptoFree].
*/
func ASN1StringToUTF8(es *ErrState, out *Handle, h Handle) int {
	const fn = "ASN1_STRING_to_UTF8"
	s := stringAt(es, fn, h)
	if s == nil {
		return -1
	} else if out == nil {
		es.put(LibASN1, fn, ReasonInvalidArgument)
		return -1
	}

	var (
		dec    *encoding.Decoder
		reason int
	)

	switch s.typ {
	case VUTF8String:
		if !utf8.Valid(s.data) {
			reason = ReasonInvalidUTF8String
		}
	case VBMPString:
		if len(s.data)%2 != 0 {
			reason = ReasonInvalidBMPStringLength
		} else if !scalarUnits(s.data, 2) {
			reason = ReasonIllegalCharacters
		} else {
			dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		}
	case VUniversalString:
		if len(s.data)%4 != 0 {
			reason = ReasonInvalidUniversalLength
		} else if !scalarUnits(s.data, 4) {
			reason = ReasonIllegalCharacters
		} else {
			dec = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder()
		}
	default:
		// every other string type is read one byte per code point
		dec = charmap.ISO8859_1.NewDecoder()
	}

	if reason != 0 {
		es.put(LibASN1, fn, reason)
		return -1
	}

	conv := slices.Clone(s.data)
	if dec != nil {
		var err error
		if conv, err = dec.Bytes(s.data); err != nil {
			es.put(LibASN1, fn, ReasonInvalidArgument)
			return -1
		}
	}

	*out = alloc(&cbuf{b: conv})
	return len(conv)
}

/*
scalarUnits reports whether every big-endian code unit of width bytes
in b is a Unicode scalar value. Surrogates are rejected individually,
so a BMPString is read as UCS-2.
*/
func scalarUnits(b []byte, width int) bool {
	for i := 0; i+width <= len(b); i += width {
		var v uint32
		for _, c := range b[i : i+width] {
			v = v<<8 | uint32(c)
		}
		if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return false
		}
	}
	return true
}

/*
CryptoBuffer returns the contents of an engine-allocated buffer.
*/
func CryptoBuffer(h Handle) []byte {
	if b := lookup[cbuf](h); b != nil {
		return b.b
	}
	return nil
}

/*
CryptoFree releases an engine-allocated buffer.
*/
func CryptoFree(h Handle) {
	release[cbuf](h)
}
