package native

/*
oct.go contains the OCTET STRING routines.
*/

/*
ASN1OctetStringNew allocates an empty OCTET STRING.
*/
func ASN1OctetStringNew() Handle {
	return alloc(&asn1String{typ: VOctetString})
}

/*
ASN1OctetStringDup duplicates h, returning the null handle on failure.
*/
func ASN1OctetStringDup(es *ErrState, h Handle) Handle {
	const fn = "ASN1_OCTET_STRING_dup"
	s := stringAt(es, fn, h)
	if s == nil {
		return 0
	} else if s.typ != VOctetString {
		es.put(LibASN1, fn, ReasonWrongType)
		return 0
	}
	return ASN1StringDup(es, h)
}
