package native

/*
obj.go contains the OBJECT IDENTIFIER routines: allocation, lookup by
symbolic identifier, text conversion in both directions and
duplication.
*/

import (
	"encoding/asn1"
	"slices"
	"strconv"
	"strings"

	"github.com/JesseCoretta/go-asn1safe/nid"
)

type asn1Object struct {
	nid  nid.Nid
	arcs asn1.ObjectIdentifier
}

/*
ASN1ObjectNew allocates an empty OBJECT IDENTIFIER with no arcs and no
symbolic identifier.
*/
func ASN1ObjectNew() Handle {
	return alloc(&asn1Object{})
}

/*
ASN1ObjectFree releases h.
*/
func ASN1ObjectFree(h Handle) {
	release[asn1Object](h)
}

/*
OBJNid2Obj allocates the OBJECT IDENTIFIER registered for n. It returns
the null handle when n is not registered.
*/
func OBJNid2Obj(es *ErrState, n nid.Nid) Handle {
	e, ok := nid.Lookup(n)
	if !ok {
		es.put(LibOBJ, "OBJ_nid2obj", ReasonUnknownNid)
		return 0
	}
	return alloc(&asn1Object{nid: e.Nid, arcs: slices.Clone(e.OID)})
}

/*
OBJObj2Nid returns the symbolic identifier of h, or [nid.Undef] when h
holds unregistered arcs or is invalid.
*/
func OBJObj2Nid(h Handle) nid.Nid {
	o := lookup[asn1Object](h)
	if o == nil {
		return nid.Undef
	}
	if o.nid != nid.Undef {
		return o.nid
	}
	if n, ok := nid.ByOID(o.arcs); ok {
		return n
	}
	return nid.Undef
}

/*
OBJObj2Txt writes the text form of h into buf as a NUL-terminated
string, truncating to len(buf)-1 bytes. When noName is zero and h is
registered, the long name is written; otherwise the dotted form. It
returns the length of the untruncated text, or -1 for an invalid
handle.
*/
func OBJObj2Txt(buf []byte, h Handle, noName int) int {
	o := lookup[asn1Object](h)
	if o == nil {
		if len(buf) > 0 {
			buf[0] = 0
		}
		return -1
	}

	var txt string
	if noName == 0 {
		if n := OBJObj2Nid(h); n != nid.Undef {
			if txt = n.LongName(); txt == "" {
				txt = n.ShortName()
			}
		}
	}
	if txt == "" && len(o.arcs) > 0 {
		txt = o.arcs.String()
	}

	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], txt)
		buf[n] = 0
	}
	return len(txt)
}

/*
OBJTxt2Obj resolves s to a new OBJECT IDENTIFIER. Unless noName is
nonzero, s is first matched against registered short and long names;
otherwise, or failing that, s must be a dotted numeric form with at
least two arcs. It returns the null handle on failure.
*/
func OBJTxt2Obj(es *ErrState, s string, noName int) Handle {
	const fn = "OBJ_txt2obj"
	if noName == 0 {
		if n, ok := nid.ByShortName(s); ok {
			return OBJNid2Obj(es, n)
		} else if n, ok = nid.ByLongName(s); ok {
			return OBJNid2Obj(es, n)
		}
	}

	arcs, ok := parseDotted(s)
	if !ok {
		reason := ReasonInvalidObjectEncoding
		if noName == 0 {
			reason = ReasonUnknownObjectName
		}
		es.put(LibOBJ, fn, reason)
		return 0
	}

	n, _ := nid.ByOID(arcs)
	return alloc(&asn1Object{nid: n, arcs: arcs})
}

func parseDotted(s string) (asn1.ObjectIdentifier, bool) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, false
	}

	arcs := make(asn1.ObjectIdentifier, len(parts))
	for i, p := range parts {
		if p == "" || (len(p) > 1 && p[0] == '0') || strings.IndexFunc(p, notDigit) >= 0 {
			return nil, false
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		arcs[i] = v
	}

	// second arc is bounded under the first two roots
	if arcs[0] > 2 || (arcs[0] < 2 && arcs[1] > 39) {
		return nil, false
	}
	return arcs, true
}

/*
OBJDup duplicates h, returning the null handle on failure.
*/
func OBJDup(es *ErrState, h Handle) Handle {
	o := lookup[asn1Object](h)
	if o == nil {
		es.put(LibOBJ, "OBJ_dup", ReasonInvalidHandle)
		return 0
	}
	return alloc(&asn1Object{nid: o.nid, arcs: slices.Clone(o.arcs)})
}

/*
OBJCmp returns 0 when a and b hold the same arcs.
*/
func OBJCmp(a, b Handle) int {
	oa, ob := lookup[asn1Object](a), lookup[asn1Object](b)
	switch {
	case oa == nil && ob == nil:
		return 0
	case oa == nil:
		return -1
	case ob == nil:
		return 1
	}
	return slices.Compare(oa.arcs, ob.arcs)
}

func notDigit(r rune) bool { return r < '0' || r > '9' }
