package native

/*
bio.go implements the memory-backed sink used by the print routines.
*/

import "golang.org/x/crypto/cryptobyte"

type memBIO struct {
	b *cryptobyte.Builder
}

/*
BIONewMem allocates an empty memory sink.
*/
func BIONewMem() Handle {
	return alloc(&memBIO{b: cryptobyte.NewBuilder(nil)})
}

/*
BIOWrite appends p to the sink and returns the number of bytes written,
or -1 when h is not a memory sink.
*/
func BIOWrite(h Handle, p []byte) int {
	m := lookup[memBIO](h)
	if m == nil {
		return -1
	}
	m.b.AddBytes(p)
	return len(p)
}

/*
BIOGetMemData returns the current contents of the sink. The returned
slice aliases the sink and is invalidated by further writes or by
[BIOFree].
*/
func BIOGetMemData(h Handle) []byte {
	m := lookup[memBIO](h)
	if m == nil {
		return nil
	}
	out, err := m.b.Bytes()
	if err != nil {
		return nil
	}
	return out
}

/*
BIOFree releases the sink and returns 1, or 0 when h is not a live sink.
*/
func BIOFree(h Handle) int {
	if _, ok := release[memBIO](h); !ok {
		return 0
	}
	return 1
}

func bioWriteString(h Handle, s string) bool {
	return BIOWrite(h, []byte(s)) == len(s)
}
