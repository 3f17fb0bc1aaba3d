package asn1safe

/*
foreign.go contains the handle cell shared by every owning value and
the views borrowed from it.
*/

import "github.com/JesseCoretta/go-asn1safe/internal/native"

/*
Handle is an opaque engine handle. A Handle passed to one of the
*FromHandle functions must be valid and must not be owned by anything
else; wrapping the same Handle twice is not detected.
*/
type Handle = native.Handle

/*
foreign holds exclusive ownership of one engine handle. The owner and
all of its views reference the same cell, so releasing the handle
through the owner invalidates every view at once.
*/
type foreign struct {
	h    Handle
	kind string
	drop func(Handle)
}

func newForeign(kind string, h Handle, drop func(Handle)) *foreign {
	debugHandle("wrap", kind, h)
	return &foreign{h: h, kind: kind, drop: drop}
}

// ptr returns the live handle, or the null handle once released.
func (r *foreign) ptr() Handle {
	if r == nil {
		return 0
	}
	return r.h
}

// release frees the handle exactly once.
func (r *foreign) release() error {
	if r == nil || r.h == 0 {
		return nil
	}
	h := r.h
	r.h = 0
	debugHandle("free", r.kind, h)
	r.drop(h)
	return nil
}

// take relinquishes the handle without freeing it.
func (r *foreign) take() Handle {
	if r == nil {
		return 0
	}
	h := r.h
	r.h = 0
	debugHandle("take", r.kind, h)
	return h
}
