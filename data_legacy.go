//go:build asn1_legacy

package asn1safe

import "github.com/JesseCoretta/go-asn1safe/internal/native"

// stringData returns the engine-owned content of h through the
// accessor offered by older engine releases.
func stringData(h Handle) []byte { return native.ASN1StringData(h) }
