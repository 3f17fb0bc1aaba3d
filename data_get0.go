//go:build !asn1_legacy

package asn1safe

import "github.com/JesseCoretta/go-asn1safe/internal/native"

// stringData returns the engine-owned content of h.
func stringData(h Handle) []byte { return native.ASN1StringGet0Data(h) }
