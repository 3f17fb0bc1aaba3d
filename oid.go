package asn1safe

/*
oid.go contains the Object owning/view pair, an OBJECT IDENTIFIER
resolvable to and from the identifiers of package nid.
*/

import (
	"bytes"

	"github.com/JesseCoretta/go-asn1safe/internal/native"
	"github.com/JesseCoretta/go-asn1safe/nid"
)

// objTextLen bounds the text rendering of an Object, terminator included.
const objTextLen = 80

/*
ObjectRef is a borrowed view of an [Object].
*/
type ObjectRef struct {
	cell *foreign
}

/*
Object owns one engine OBJECT IDENTIFIER handle.
*/
type Object struct {
	ObjectRef
}

func newObject(h Handle) *Object {
	return &Object{ObjectRef{newForeign("Object", h, native.ASN1ObjectFree)}}
}

/*
NewObject returns a new, empty *[Object] with no arcs.
*/
func NewObject() (*Object, error) {
	return call(func(es *native.ErrState) (*Object, error) {
		h, err := cvtP("ASN1_OBJECT_new", es, native.ASN1ObjectNew())
		if err != nil {
			return nil, err
		}
		return newObject(h), nil
	})
}

/*
ObjectFromNid returns a new *[Object] for the registered identifier n.
An unregistered n yields a [ConversionError].
*/
func ObjectFromNid(n nid.Nid) (*Object, error) {
	debugEnter(n.String())
	defer debugExit()

	return call(func(es *native.ErrState) (*Object, error) {
		h, err := cvtP("OBJ_nid2obj", es, native.OBJNid2Obj(es, n))
		if err != nil {
			return nil, err
		}
		return newObject(h), nil
	})
}

/*
ObjectFromText returns a new *[Object] resolved from s. Unless noName
is true, s may be a registered short name ("CN") or long name
("commonName"); it may always be a dotted form ("2.5.4.3").
*/
func ObjectFromText(s string, noName bool) (*Object, error) {
	debugEnter(s, noName)
	defer debugExit()

	var flag int
	if noName {
		flag = 1
	}
	return call(func(es *native.ErrState) (*Object, error) {
		h, err := cvtP("OBJ_txt2obj", es, native.OBJTxt2Obj(es, s, flag))
		if err != nil {
			return nil, err
		}
		return newObject(h), nil
	})
}

/*
ObjectFromHandle takes exclusive ownership of h.
*/
func ObjectFromHandle(h Handle) *Object { return newObject(h) }

/*
Ref returns a view sharing the receiver's handle.
*/
func (r *Object) Ref() ObjectRef {
	if r == nil {
		return ObjectRef{}
	}
	return r.ObjectRef
}

/*
Close frees the underlying handle. Only the first call has any effect.
*/
func (r *Object) Close() error {
	if r == nil {
		return nil
	}
	return r.cell.release()
}

/*
IntoHandle relinquishes ownership of the underlying handle without
freeing it.
*/
func (r *Object) IntoHandle() Handle {
	if r == nil {
		return 0
	}
	return r.cell.take()
}

/*
Handle returns the underlying handle, or the null handle once the owner
has been closed.
*/
func (r ObjectRef) Handle() Handle { return r.cell.ptr() }

/*
Nid returns the registered identifier of the receiver. The Boolean is
false when the receiver is unregistered, empty or closed.
*/
func (r ObjectRef) Nid() (nid.Nid, bool) {
	if n := native.OBJObj2Nid(r.Handle()); n != nid.Undef {
		return n, true
	}
	return nid.Undef, false
}

/*
Text returns the long name of a registered receiver, or its dotted
form otherwise. The result never exceeds 79 bytes; longer renderings are
truncated.
*/
func (r ObjectRef) Text() string { return r.text(0) }

/*
Dotted returns the dotted form of the receiver, bounded like
[ObjectRef.Text].
*/
func (r ObjectRef) Dotted() string { return r.text(1) }

func (r ObjectRef) text(noName int) string {
	var buf [objTextLen]byte
	native.OBJObj2Txt(buf[:], r.Handle(), noName)
	if i := bytes.IndexByte(buf[:], 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf[:])
}

/*
String returns the result of [ObjectRef.Text].
*/
func (r ObjectRef) String() string { return r.Text() }

/*
Clone returns an independent copy of the receiver.
*/
func (r ObjectRef) Clone() (*Object, error) {
	return call(func(es *native.ErrState) (*Object, error) {
		h, err := cvtP("OBJ_dup", es, native.OBJDup(es, r.Handle()))
		if err != nil {
			return nil, err
		}
		return newObject(h), nil
	})
}

/*
Equal returns a Boolean value indicative of the receiver and other
holding the same arcs.
*/
func (r ObjectRef) Equal(other ObjectRef) bool {
	return native.OBJCmp(r.Handle(), other.Handle()) == 0
}
