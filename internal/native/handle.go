/*
Package native implements the handle-based ASN.1 engine consumed by the
asn1safe package.

Every value lives in a process-wide handle table and is referenced by
an opaque [Handle]. Values are released with the free routine matching
their kind. Handles are never reused, so a stale handle is always
reported as invalid rather than resolving to an unrelated value.

Fallible routines take an *[ErrState] onto which failure reasons are
pushed; the caller drains it immediately after the failing call.
*/
package native

import "sync"

/*
Handle is an opaque reference to an engine-owned value. The zero Handle
is the null handle.
*/
type Handle uintptr

/*
Counters reports handle table activity.
*/
type Counters struct {
	Live       int    // handles currently allocated
	Frees      uint64 // successful free calls
	StaleFrees uint64 // free calls naming an unknown or mismatched handle
}

type handleTable struct {
	mu    sync.Mutex
	next  Handle
	objs  map[Handle]any
	frees uint64
	stale uint64
}

var tbl = &handleTable{objs: make(map[Handle]any)}

func alloc(v any) Handle {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	tbl.next++
	tbl.objs[tbl.next] = v
	return tbl.next
}

func lookup[T any](h Handle) *T {
	if h == 0 {
		return nil
	}
	tbl.mu.Lock()
	v, ok := tbl.objs[h]
	tbl.mu.Unlock()
	if !ok {
		return nil
	}
	t, _ := v.(*T)
	return t
}

// release removes h when it refers to a *T.
func release[T any](h Handle) (v *T, ok bool) {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	if raw, found := tbl.objs[h]; found {
		if v, ok = raw.(*T); ok {
			delete(tbl.objs, h)
			tbl.frees++
			return
		}
	}
	if h != 0 {
		tbl.stale++
	}
	return
}

/*
Stats returns a snapshot of the handle table [Counters].
*/
func Stats() Counters {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	return Counters{
		Live:       len(tbl.objs),
		Frees:      tbl.frees,
		StaleFrees: tbl.stale,
	}
}

/*
Valid returns a Boolean value indicative of h referring to a live value.
*/
func Valid(h Handle) bool {
	if h == 0 {
		return false
	}
	tbl.mu.Lock()
	_, ok := tbl.objs[h]
	tbl.mu.Unlock()
	return ok
}
