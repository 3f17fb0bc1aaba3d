/*
Package asn1safe provides owning and borrowed wrappers around the handles
of an ASN.1 primitive engine: time values, strings, integers, tagged
containers, object identifiers, octet strings and bit strings.

Each kind K comes as an owner *K, which frees its handle exactly once on
Close, and a view KRef, which borrows the owner's handle. Every view
operation is callable on the owner. Once the owner is closed its views
observe the null handle: fallible operations return a [ConversionError]
and the others return zero values.

An owner is single-writer; share views, not owners, between goroutines
that only read.
*/
package asn1safe

/*
common.go contains elements used by myriad components throughout this
package.
*/

import (
	"errors"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error            = errors.New
	fmtUint func(uint64, int) string      = strconv.FormatUint
	uc      func(string) string           = strings.ToUpper
	join    func([]string, string) string = strings.Join
	rep     func(string, int) string      = strings.Repeat
)
