package native

/*
type.go contains the tagged value container routines.
*/

type asn1Type struct {
	typ   int
	value Handle
}

/*
ASN1TypeNew allocates an empty container whose type is [VUndef].
*/
func ASN1TypeNew() Handle {
	return alloc(&asn1Type{typ: VUndef})
}

/*
ASN1TypeFree releases h together with the value it holds.
*/
func ASN1TypeFree(h Handle) {
	if t, ok := release[asn1Type](h); ok {
		freeTypeValue(t)
	}
}

func freeTypeValue(t *asn1Type) {
	switch t.typ {
	case VUndef, VNull, VBoolean:
	case VObject:
		ASN1ObjectFree(t.value)
	default:
		ASN1StringFree(t.value)
	}
	t.value = 0
}

/*
ASN1TypeGet returns the type tag held by h, or [VUndef].
*/
func ASN1TypeGet(h Handle) int {
	if t := lookup[asn1Type](h); t != nil {
		return t.typ
	}
	return VUndef
}

/*
ASN1TypeSetOctetString replaces the value of h with an OCTET STRING
holding a copy of data. It returns 1 on success and 0 on failure.
*/
func ASN1TypeSetOctetString(es *ErrState, h Handle, data []byte) int {
	t := lookup[asn1Type](h)
	if t == nil {
		es.put(LibASN1, "ASN1_TYPE_set_octetstring", ReasonInvalidHandle)
		return 0
	}
	oct := ASN1OctetStringNew()
	if ASN1StringSet(es, oct, data) == 0 {
		ASN1StringFree(oct)
		return 0
	}
	freeTypeValue(t)
	t.typ, t.value = VOctetString, oct
	return 1
}

/*
ASN1TypeGetOctetString copies at most len(buf) bytes of the OCTET STRING
held by h into buf and returns its full length, or -1 when h does not
hold an OCTET STRING.
*/
func ASN1TypeGetOctetString(es *ErrState, h Handle, buf []byte) int {
	const fn = "ASN1_TYPE_get_octetstring"
	t := lookup[asn1Type](h)
	if t == nil {
		es.put(LibASN1, fn, ReasonInvalidHandle)
		return -1
	} else if t.typ != VOctetString {
		es.put(LibASN1, fn, ReasonWrongType)
		return -1
	}
	data := ASN1StringGet0Data(t.value)
	copy(buf, data)
	return len(data)
}

/*
ASN1TypeSetNull replaces the value of h with NULL.
*/
func ASN1TypeSetNull(es *ErrState, h Handle) int {
	t := lookup[asn1Type](h)
	if t == nil {
		es.put(LibASN1, "ASN1_TYPE_set", ReasonInvalidHandle)
		return 0
	}
	freeTypeValue(t)
	t.typ = VNull
	return 1
}
