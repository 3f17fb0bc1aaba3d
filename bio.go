package asn1safe

/*
bio.go contains the scoped scratch sink used for textual rendering.
*/

import "github.com/JesseCoretta/go-asn1safe/internal/native"

type memBio struct {
	h Handle
}

func newMemBio(es *native.ErrState) (*memBio, error) {
	h, err := cvtP("BIO_new", es, native.BIONewMem())
	if err != nil {
		return nil, err
	}
	return &memBio{h: h}, nil
}

// bytes aliases the sink contents until the next write or free.
func (r *memBio) bytes() []byte { return native.BIOGetMemData(r.h) }

func (r *memBio) free() {
	if r.h != 0 {
		native.BIOFree(r.h)
		r.h = 0
	}
}

/*
render invokes print against a fresh sink and returns the sink contents
as text. The engine print routines only emit ASCII, so the bytes are
copied without UTF-8 validation. The sink is released on every path.
*/
func render(op string, h Handle, print func(*native.ErrState, Handle, Handle) int) (string, error) {
	return call(func(es *native.ErrState) (string, error) {
		bio, err := newMemBio(es)
		if err != nil {
			return "", err
		}
		defer bio.free()

		if err = cvt(op, es, print(es, bio.h, h)); err != nil {
			return "", err
		}
		return string(bio.bytes()), nil
	})
}
