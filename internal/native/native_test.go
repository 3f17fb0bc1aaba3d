package native

import (
	"bytes"
	"math"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/JesseCoretta/go-asn1safe/nid"
)

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func printed(t *testing.T, print func(*ErrState, Handle, Handle) int, h Handle) (string, *ErrState) {
	t.Helper()
	es := AcquireErrState()
	t.Cleanup(es.Release)
	bio := BIONewMem()
	defer BIOFree(bio)
	if print(es, bio, h) != 1 {
		return "", es
	}
	return string(BIOGetMemData(bio)), es
}

func TestHandleTable_freeOnce(t *testing.T) {
	before := Stats()
	h := ASN1IntegerNew()
	if !Valid(h) {
		t.Fatalf("%s failed: fresh handle reported invalid", t.Name())
	}
	ASN1StringFree(h)
	ASN1StringFree(h)

	after := Stats()
	if after.Live != before.Live {
		t.Fatalf("%s failed [live]:\n\twant: %d\n\tgot:  %d", t.Name(), before.Live, after.Live)
	}
	if got := after.Frees - before.Frees; got != 1 {
		t.Fatalf("%s failed [frees]: want 1, got %d", t.Name(), got)
	}
	if got := after.StaleFrees - before.StaleFrees; got != 1 {
		t.Fatalf("%s failed [stale frees]: want 1, got %d", t.Name(), got)
	}
	if Valid(h) {
		t.Fatalf("%s failed: freed handle still valid", t.Name())
	}
}

func TestHandleTable_kindMismatch(t *testing.T) {
	h := ASN1ObjectNew()
	defer ASN1ObjectFree(h)

	ASN1StringFree(h) // wrong free routine is ignored
	if !Valid(h) {
		t.Fatalf("%s failed: object released by string free", t.Name())
	}
	if ASN1StringLength(h) != 0 {
		t.Fatalf("%s failed: object read as string", t.Name())
	}
}

func TestErrState_queue(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	es.put(LibASN1, "first", ReasonWrongType)
	es.put(LibOBJ, "second", ReasonUnknownNid)

	if es.Len() != 2 {
		t.Fatalf("%s failed [len]: want 2, got %d", t.Name(), es.Len())
	}
	if e, _ := es.Peek(); e.Func != "first" {
		t.Fatalf("%s failed [peek]: got %q", t.Name(), e.Func)
	}

	e, ok := es.Get()
	if !ok || e.Code != PackCode(LibASN1, ReasonWrongType) {
		t.Fatalf("%s failed [get]: %#v", t.Name(), e)
	}
	if e.LibString() != "asn1 encoding routines" || e.ReasonString() != "wrong type" {
		t.Fatalf("%s failed [strings]: %q %q", t.Name(), e.LibString(), e.ReasonString())
	}
	es.Get()
	if _, ok = es.Get(); ok {
		t.Fatalf("%s failed: drained queue returned an entry", t.Name())
	}

	var nilState *ErrState
	nilState.put(LibASN1, "dropped", ReasonWrongType)
	if nilState.Len() != 0 {
		t.Fatalf("%s failed: nil state retained an entry", t.Name())
	}

	unknown := Entry{Lib: 99, Reason: 999}
	if unknown.LibString() != "lib(99)" || unknown.ReasonString() != "reason(999)" {
		t.Fatalf("%s failed [unknown]: %q %q", t.Name(), unknown.LibString(), unknown.ReasonString())
	}
}

func TestBIO_memSink(t *testing.T) {
	bio := BIONewMem()
	if BIOWrite(bio, []byte("abc")) != 3 || BIOWrite(bio, []byte("def")) != 3 {
		t.Fatalf("%s failed: short write", t.Name())
	}
	if got := string(BIOGetMemData(bio)); got != "abcdef" {
		t.Fatalf("%s failed:\n\twant: abcdef\n\tgot:  %s", t.Name(), got)
	}
	if BIOFree(bio) != 1 || BIOFree(bio) != 0 {
		t.Fatalf("%s failed: free result", t.Name())
	}
	if BIOWrite(bio, []byte("x")) != -1 || BIOGetMemData(bio) != nil {
		t.Fatalf("%s failed: freed sink still writable", t.Name())
	}
}

func TestString_dataAccessors(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	h := ASN1StringTypeNew(VIA5String)
	defer ASN1StringFree(h)
	if ASN1StringSet(es, h, []byte("hello")) != 1 {
		t.Fatalf("%s failed: set", t.Name())
	}

	if ASN1StringLength(h) != 5 || ASN1StringType(h) != VIA5String {
		t.Fatalf("%s failed: length/type", t.Name())
	}
	if !bytes.Equal(ASN1StringData(h), ASN1StringGet0Data(h)) {
		t.Fatalf("%s failed: accessors disagree", t.Name())
	}
	if cap(ASN1StringGet0Data(h)) != 5 {
		t.Fatalf("%s failed: get0 slice may grow into engine memory", t.Name())
	}
	if ASN1StringType(0) != VUndef || ASN1StringData(0) != nil {
		t.Fatalf("%s failed: null handle", t.Name())
	}
}

func TestString_toUTF8(t *testing.T) {
	for idx, tc := range []struct {
		typ  int
		data []byte
		want string
		ok   bool
	}{
		{VUTF8String, []byte("héllo"), "héllo", true},
		{VUTF8String, []byte{0xff, 0xfe}, "", false},
		{VBMPString, []byte{0x00, 'h', 0x00, 0xe9}, "hé", true},
		{VBMPString, []byte{0x00, 'h', 0x00}, "", false},
		{VUniversalString, []byte{0, 0, 0, 'a', 0, 1, 0xf6, 0x00}, "a\U0001F600", true},
		{VUniversalString, []byte{0, 0, 'a'}, "", false},
		{VBMPString, []byte{0xd8, 0x00, 0x00, 'A'}, "", false},
		{VBMPString, []byte{0xd8, 0x3d, 0xde, 0x00}, "", false},
		{VUniversalString, []byte{0x00, 0x11, 0x00, 0x00}, "", false},
		{VUniversalString, []byte{0x00, 0x00, 0xdf, 0xff}, "", false},
		{VUniversalString, []byte{0x00, 0x10, 0xff, 0xff}, "\U0010FFFF", true},
		{VT61String, []byte{'c', 0xe9}, "cé", true},
		{VPrintableString, []byte("Printable"), "Printable", true},
		{VOctetString, []byte{}, "", true},
	} {
		es := AcquireErrState()
		h := ASN1StringTypeNew(tc.typ)
		ASN1StringSet(es, h, tc.data)

		var out Handle
		n := ASN1StringToUTF8(es, &out, h)
		if tc.ok {
			if n < 0 {
				t.Fatalf("%s[%d] failed: unexpected failure %v", t.Name(), idx, es.q)
			}
			if got := string(CryptoBuffer(out)); got != tc.want || n != len(tc.want) {
				t.Fatalf("%s[%d] failed:\n\twant: %q\n\tgot:  %q (%d)", t.Name(), idx, tc.want, got, n)
			}
			CryptoFree(out)
		} else if n >= 0 || es.Len() == 0 || out != 0 {
			t.Fatalf("%s[%d] failed: expected failure, got %d", t.Name(), idx, n)
		}

		ASN1StringFree(h)
		es.Release()
	}
}

func TestString_print(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	h := ASN1OctetStringNew()
	defer ASN1StringFree(h)
	ASN1StringSet(es, h, append([]byte("ab\x00c\r\n"), bytes.Repeat([]byte{'z'}, 100)...))

	got, _ := printed(t, ASN1StringPrint, h)
	want := "ab.c\r\n" + strings.Repeat("z", 100)
	if got != want {
		t.Fatalf("%s failed:\n\twant: %q\n\tgot:  %q", t.Name(), want, got)
	}

	if _, es2 := printed(t, ASN1StringPrint, 0); es2.Len() == 0 {
		t.Fatalf("%s failed: null handle printed", t.Name())
	}
}

func TestTime_gmtimeAdj(t *testing.T) {
	fixNow(t, time.Date(2026, 10, 14, 12, 30, 45, 999, time.UTC))
	es := AcquireErrState()
	defer es.Release()

	h := X509GmtimeAdj(es, 0, 0)
	defer ASN1StringFree(h)
	if ASN1StringType(h) != VUTCTime || string(ASN1StringData(h)) != "261014123045Z" {
		t.Fatalf("%s failed [utc]: %d %s", t.Name(), ASN1StringType(h), ASN1StringData(h))
	}
	if got, _ := printed(t, ASN1TimePrint, h); got != "Oct 14 12:30:45 2026 GMT" {
		t.Fatalf("%s failed [print]: %q", t.Name(), got)
	}

	if X509GmtimeAdj(es, h, 365*86400) != h {
		t.Fatalf("%s failed: adjust in place", t.Name())
	}
	if got, _ := printed(t, ASN1TimePrint, h); got != "Oct 14 12:30:45 2027 GMT" {
		t.Fatalf("%s failed [print +365]: %q", t.Name(), got)
	}

	var tm time.Time
	if ASN1TimeToTime(es, h, &tm) != 1 || !tm.Equal(time.Date(2027, 10, 14, 12, 30, 45, 0, time.UTC)) {
		t.Fatalf("%s failed [to time]: %v", t.Name(), tm)
	}

	if X509GmtimeAdj(es, 0, math.MaxInt64) != 0 || es.Len() == 0 {
		t.Fatalf("%s failed: overflowing adjustment accepted", t.Name())
	}
}

func TestTime_gmtimeAdjFarFuture(t *testing.T) {
	fixNow(t, time.Date(2026, 10, 14, 12, 30, 45, 0, time.UTC))
	es := AcquireErrState()
	defer es.Release()

	h := X509GmtimeAdj(es, 0, 110000*86400)
	if h == 0 {
		t.Fatalf("%s failed: far-future adjustment rejected", t.Name())
	}
	defer ASN1StringFree(h)
	if ASN1StringType(h) != VGeneralizedTime || string(ASN1StringData(h)) != "23271216123045Z" {
		t.Fatalf("%s failed: %d %s", t.Name(), ASN1StringType(h), ASN1StringData(h))
	}

	// last representable second, then one past it
	last := int64(2912156*86400 + 11*3600 + 29*60 + 14)
	if g := X509GmtimeAdj(es, 0, last); g == 0 {
		t.Fatalf("%s failed: year 9999 rejected", t.Name())
	} else {
		ASN1StringFree(g)
	}
	if X509GmtimeAdj(es, 0, last+1) != 0 || es.Len() == 0 {
		t.Fatalf("%s failed: year 10000 accepted", t.Name())
	}
	es.Clear()
	if X509GmtimeAdj(es, 0, math.MinInt64) != 0 || es.Len() == 0 {
		t.Fatalf("%s failed: underflowing adjustment accepted", t.Name())
	}
}

func TestTime_generalizedBoundary(t *testing.T) {
	fixNow(t, time.Date(2049, 12, 31, 23, 0, 0, 0, time.UTC))
	es := AcquireErrState()
	defer es.Release()

	h := X509GmtimeAdj(es, 0, 86400)
	defer ASN1StringFree(h)
	if ASN1StringType(h) != VGeneralizedTime || string(ASN1StringData(h)) != "20500101230000Z" {
		t.Fatalf("%s failed: %d %s", t.Name(), ASN1StringType(h), ASN1StringData(h))
	}
	if got, _ := printed(t, ASN1GeneralizedTimePrint, h); got != "Jan  1 23:00:00 2050 GMT" {
		t.Fatalf("%s failed [print]: %q", t.Name(), got)
	}
}

func TestTime_generalizedString(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	h := ASN1StringTypeNew(VGeneralizedTime)
	defer ASN1StringFree(h)

	if ASN1GeneralizedTimeSetString(es, h, "20261014120000.5Z") != 1 {
		t.Fatalf("%s failed: set string", t.Name())
	}
	if got, _ := printed(t, ASN1GeneralizedTimePrint, h); got != "Oct 14 12:00:00.5 2026 GMT" {
		t.Fatalf("%s failed [print]: %q", t.Name(), got)
	}

	for _, bad := range []string{
		"2026101412000Z",
		"20261014120000",
		"20261314120000Z",
		"20260231120000Z",
		"20261014120000.Z",
		"20261014120000.1234567Z",
		"20261014120000+0100",
	} {
		if ASN1GeneralizedTimeSetString(es, h, bad) != 0 {
			t.Fatalf("%s failed: accepted %q", t.Name(), bad)
		}
	}
}

func TestTime_printFailures(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	utc := ASN1TimeSet(es, 0, 0)
	defer ASN1StringFree(utc)
	if got, _ := printed(t, ASN1TimePrint, utc); got != "Jan  1 00:00:00 1970 GMT" {
		t.Fatalf("%s failed [epoch]: %q", t.Name(), got)
	}
	if _, es2 := printed(t, ASN1GeneralizedTimePrint, utc); es2.Len() == 0 {
		t.Fatalf("%s failed: UTCTime printed as GeneralizedTime", t.Name())
	}

	oct := ASN1OctetStringNew()
	defer ASN1StringFree(oct)
	if _, es2 := printed(t, ASN1TimePrint, oct); es2.Len() == 0 {
		t.Fatalf("%s failed: OCTET STRING printed as time", t.Name())
	} else if e, _ := es2.Peek(); e.Reason != ReasonWrongType {
		t.Fatalf("%s failed [reason]: %s", t.Name(), e.ReasonString())
	}

	gt := ASN1GeneralizedTimeSet(es, 0, 253402300800) // year 10000
	if gt != 0 {
		ASN1StringFree(gt)
		t.Fatalf("%s failed: five-digit year accepted", t.Name())
	}
}

func TestFormatGeneralizedTime(t *testing.T) {
	for _, tc := range []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), "20260102030405Z"},
		{time.Date(2026, 1, 2, 3, 4, 5, 120000000, time.UTC), "20260102030405.12Z"},
		{time.Date(2026, 1, 2, 3, 4, 5, 999, time.UTC), "20260102030405Z"},
		{time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC), ""},
	} {
		if got := FormatGeneralizedTime(tc.in); got != tc.want {
			t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), tc.want, got)
		}
	}
}

func TestInteger_setGet(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	h := ASN1IntegerNew()
	defer ASN1StringFree(h)

	if got := ASN1IntegerGet(es, h); got != 0 {
		t.Fatalf("%s failed [empty]: %d", t.Name(), got)
	}

	for _, v := range []int64{0, 1, -1, 42, 255, 256, -256, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64} {
		if ASN1IntegerSet(es, h, v) != 1 {
			t.Fatalf("%s failed: set %d", t.Name(), v)
		}
		if got := ASN1IntegerGet(es, h); got != v {
			t.Fatalf("%s failed:\n\twant: %d\n\tgot:  %d", t.Name(), v, got)
		}
		if b := ASN1IntegerToBig(es, h); b.Int64() != v {
			t.Fatalf("%s failed [big]: want %d, got %s", t.Name(), v, b)
		}
	}
	if es.Len() != 0 {
		t.Fatalf("%s failed: unexpected queued errors", t.Name())
	}
}

func TestInteger_outOfRange(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	h := ASN1IntegerSetBig(es, 0, huge)
	defer ASN1StringFree(h)

	if got := ASN1IntegerGet(es, h); got != -1 {
		t.Fatalf("%s failed: want -1, got %d", t.Name(), got)
	}
	if e, ok := es.Get(); !ok || e.Reason != ReasonTooLarge {
		t.Fatalf("%s failed [reason]: %#v", t.Name(), e)
	}
	if ASN1IntegerToBig(es, h).Cmp(huge) != 0 {
		t.Fatalf("%s failed: big round trip", t.Name())
	}

	over := new(big.Int).SetUint64(math.MaxInt64 + 1)
	ASN1IntegerSetBig(es, h, over)
	if got := ASN1IntegerGet(es, h); got != -1 {
		t.Fatalf("%s failed [MaxInt64+1]: %d", t.Name(), got)
	}

	if ASN1IntegerSetBig(es, 0, nil) != 0 {
		t.Fatalf("%s failed: nil big accepted", t.Name())
	}

	bs := ASN1BitStringNew()
	defer ASN1StringFree(bs)
	if ASN1IntegerSet(es, bs, 1) != 0 {
		t.Fatalf("%s failed: BIT STRING accepted as INTEGER", t.Name())
	}
}

func TestBitString_bits(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	h := ASN1BitStringNew()
	defer ASN1StringFree(h)

	if ASN1BitStringSetBit(es, h, 10, 0) != 1 || ASN1StringLength(h) != 0 {
		t.Fatalf("%s failed: clearing past the end grew content", t.Name())
	}
	for _, n := range []int{0, 7, 8, 17} {
		if ASN1BitStringSetBit(es, h, n, 1) != 1 {
			t.Fatalf("%s failed: set bit %d", t.Name(), n)
		}
	}
	if got := ASN1StringData(h); !bytes.Equal(got, []byte{0x81, 0x80, 0x40}) {
		t.Fatalf("%s failed [content]: % x", t.Name(), got)
	}
	for n := 0; n < 24; n++ {
		want := n == 0 || n == 7 || n == 8 || n == 17
		if (ASN1BitStringGetBit(h, n) == 1) != want {
			t.Fatalf("%s failed: bit %d", t.Name(), n)
		}
	}

	ASN1BitStringSetBit(es, h, 17, 0)
	if ASN1StringLength(h) != 2 {
		t.Fatalf("%s failed: trailing zero byte kept", t.Name())
	}

	if ASN1BitStringSetBit(es, h, -1, 1) != 0 {
		t.Fatalf("%s failed: negative index accepted", t.Name())
	}
	if e, _ := es.Get(); e.Reason != ReasonIllegalNegativeBitIndex {
		t.Fatalf("%s failed [reason]: %s", t.Name(), e.ReasonString())
	}
	if ASN1BitStringGetBit(h, -1) != 0 || ASN1BitStringGetBit(h, 1000) != 0 {
		t.Fatalf("%s failed: out-of-range read", t.Name())
	}
}

func TestObject_lookup(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	h := OBJNid2Obj(es, nid.CommonName)
	defer ASN1ObjectFree(h)

	var buf [80]byte
	if n := OBJObj2Txt(buf[:], h, 0); n != len("commonName") || string(buf[:n]) != "commonName" {
		t.Fatalf("%s failed [name]: %q", t.Name(), buf[:n])
	}
	if n := OBJObj2Txt(buf[:], h, 1); string(buf[:n]) != "2.5.4.3" {
		t.Fatalf("%s failed [dotted]: %q", t.Name(), buf[:n])
	}
	if OBJObj2Nid(h) != nid.CommonName {
		t.Fatalf("%s failed [nid]", t.Name())
	}

	if OBJNid2Obj(es, nid.Nid(99999)) != 0 {
		t.Fatalf("%s failed: unknown nid resolved", t.Name())
	}
	if e, _ := es.Get(); e.Lib != LibOBJ || e.Reason != ReasonUnknownNid {
		t.Fatalf("%s failed [reason]: %#v", t.Name(), e)
	}
}

func TestObject_txt2obj(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	for _, tc := range []struct {
		in     string
		noName int
		want   nid.Nid
		ok     bool
	}{
		{"CN", 0, nid.CommonName, true},
		{"commonName", 0, nid.CommonName, true},
		{"2.5.4.3", 0, nid.CommonName, true},
		{"2.5.4.3", 1, nid.CommonName, true},
		{"1.3.6.1.4.1.56521", 0, nid.Undef, true},
		{"CN", 1, nid.Undef, false},
		{"3.1", 0, nid.Undef, false},
		{"1.40", 0, nid.Undef, false},
		{"1", 0, nid.Undef, false},
		{"1..2", 0, nid.Undef, false},
		{"1.+2", 0, nid.Undef, false},
		{"1.02", 0, nid.Undef, false},
	} {
		h := OBJTxt2Obj(es, tc.in, tc.noName)
		if (h != 0) != tc.ok {
			t.Fatalf("%s failed [%q]: want ok=%t", t.Name(), tc.in, tc.ok)
		}
		if h != 0 {
			if got := OBJObj2Nid(h); got != tc.want {
				t.Fatalf("%s failed [%q nid]: want %v, got %v", t.Name(), tc.in, tc.want, got)
			}
			ASN1ObjectFree(h)
		}
		es.Clear()
	}
}

func TestObject_truncatedText(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	long := "1.3" + strings.Repeat(".123456789", 10)
	h := OBJTxt2Obj(es, long, 1)
	defer ASN1ObjectFree(h)

	var buf [80]byte
	if n := OBJObj2Txt(buf[:], h, 0); n != len(long) {
		t.Fatalf("%s failed [length]: want %d, got %d", t.Name(), len(long), n)
	}
	if i := bytes.IndexByte(buf[:], 0); i != 79 || string(buf[:i]) != long[:79] {
		t.Fatalf("%s failed [truncation]: NUL at %d", t.Name(), i)
	}

	if OBJObj2Txt(buf[:], 0, 0) != -1 || buf[0] != 0 {
		t.Fatalf("%s failed: null handle", t.Name())
	}

	empty := ASN1ObjectNew()
	defer ASN1ObjectFree(empty)
	if OBJObj2Txt(buf[:], empty, 0) != 0 || OBJObj2Nid(empty) != nid.Undef {
		t.Fatalf("%s failed: empty object", t.Name())
	}
}

func TestObject_dup(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	orig := OBJNid2Obj(es, nid.SHA256)
	dup := OBJDup(es, orig)
	if dup == 0 || dup == orig || OBJCmp(orig, dup) != 0 {
		t.Fatalf("%s failed: dup", t.Name())
	}
	ASN1ObjectFree(dup)
	if OBJObj2Nid(orig) != nid.SHA256 {
		t.Fatalf("%s failed: original damaged by freeing duplicate", t.Name())
	}
	ASN1ObjectFree(orig)

	if OBJDup(es, orig) != 0 || es.Len() == 0 {
		t.Fatalf("%s failed: freed object duplicated", t.Name())
	}
}

func TestOctetString_dup(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	h := ASN1OctetStringNew()
	ASN1StringSet(es, h, []byte{1, 2, 3})
	dup := ASN1OctetStringDup(es, h)
	ASN1StringFree(h)

	if !bytes.Equal(ASN1StringData(dup), []byte{1, 2, 3}) {
		t.Fatalf("%s failed: %v", t.Name(), ASN1StringData(dup))
	}
	ASN1StringFree(dup)

	ia5 := ASN1StringTypeNew(VIA5String)
	defer ASN1StringFree(ia5)
	if ASN1OctetStringDup(es, ia5) != 0 {
		t.Fatalf("%s failed: IA5String duplicated as OCTET STRING", t.Name())
	}
}

func TestType_container(t *testing.T) {
	es := AcquireErrState()
	defer es.Release()

	before := Stats().Live
	h := ASN1TypeNew()
	if ASN1TypeGet(h) != VUndef {
		t.Fatalf("%s failed: new type not undefined", t.Name())
	}
	if ASN1TypeSetOctetString(es, h, []byte("payload")) != 1 || ASN1TypeGet(h) != VOctetString {
		t.Fatalf("%s failed: set octet string", t.Name())
	}

	buf := make([]byte, 3)
	if n := ASN1TypeGetOctetString(es, h, buf); n != 7 || string(buf) != "pay" {
		t.Fatalf("%s failed [get]: %d %q", t.Name(), n, buf)
	}

	ASN1TypeSetNull(es, h)
	if ASN1TypeGet(h) != VNull || ASN1TypeGetOctetString(es, h, buf) != -1 {
		t.Fatalf("%s failed: null", t.Name())
	}
	ASN1TypeSetOctetString(es, h, []byte("again"))
	ASN1TypeFree(h)

	if Stats().Live != before {
		t.Fatalf("%s failed: contained value leaked", t.Name())
	}
}
