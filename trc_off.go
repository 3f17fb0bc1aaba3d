//go:build !asn1_debug

package asn1safe

type DefaultTracer struct{}

func debugEnter(_ ...any)               {}
func debugExit(_ ...any)                {}
func debugInfo(_ ...any)                {}
func debugEvent(_ EventType, _ ...any)  {}
func debugHandle(_, _ string, _ Handle) {}
func debugFailure(_ string, _ error)    {}
