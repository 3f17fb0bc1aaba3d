package asn1safe

import (
	"errors"
	"fmt"
	"testing"
)

func TestString_AsUTF8(t *testing.T) {
	for idx, obj := range []struct {
		typ  StringType
		data []byte
		want string
	}{
		{UTF8String, []byte("héllo"), "héllo"},
		{BMPString, []byte{0x00, 0x48, 0x00, 0x69}, "Hi"},
		{BMPString, []byte{0x04, 0x1F, 0x04, 0x40}, "Пр"},
		{UniversalString, []byte{0x00, 0x00, 0x00, 0x41, 0x00, 0x01, 0xF6, 0x00}, "A😀"},
		{T61String, []byte{'c', 'a', 'f', 0xE9}, "café"},
		{IA5String, []byte("user@example.com"), "user@example.com"},
		{PrintableString, []byte{}, ""},
	} {
		s, err := NewString(obj.typ, obj.data)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		got, err := s.AsUTF8()
		if err != nil {
			t.Fatalf("%s[%d] failed [%s]: %v", t.Name(), idx, obj.typ, err)
		} else if got != obj.want {
			t.Fatalf("%s[%d] failed [%s]:\n\twant: %q\n\tgot:  %q", t.Name(), idx, obj.typ, obj.want, got)
		}
		s.Close()
	}
}

func TestString_AsUTF8_failure(t *testing.T) {
	for idx, obj := range []struct {
		typ    StringType
		data   []byte
		reason string
	}{
		{UTF8String, []byte{0xFF, 0xFE}, "invalid utf8string"},
		{BMPString, []byte{0x00, 0x48, 0x00}, "invalid bmpstring length"},
		{UniversalString, []byte{0x00, 0x00, 0x41}, "invalid universalstring length"},
		{BMPString, []byte{0xD8, 0x00, 0x00, 0x41}, "illegal characters"},
		{BMPString, []byte{0x00, 0x41, 0xDC, 0x00}, "illegal characters"},
		{UniversalString, []byte{0x00, 0x11, 0x00, 0x00}, "illegal characters"},
		{UniversalString, []byte{0x00, 0x00, 0xD8, 0x00}, "illegal characters"},
	} {
		s, _ := NewString(obj.typ, obj.data)
		_, err := s.AsUTF8()

		var stack ErrorStack
		if !errors.Is(err, ErrConversion) {
			t.Fatalf("%s[%d] failed: expected conversion error, got %v", t.Name(), idx, err)
		} else if !errors.As(err, &stack) || stack[0].Reason != obj.reason {
			t.Fatalf("%s[%d] failed: unexpected stack %v", t.Name(), idx, stack)
		}
		s.Close()
	}
}

func TestString_AsSlice(t *testing.T) {
	data := []byte("abcdef")
	s, _ := NewString(IA5String, data)
	defer s.Close()

	data[0] = 'X' // the string holds its own copy
	sl := s.AsSlice()
	if len(sl) != s.Len() || string(sl) != "abcdef" {
		t.Fatalf("%s failed: slice %q, len %d", t.Name(), sl, s.Len())
	} else if s.Type() != IA5String {
		t.Fatalf("%s failed: unexpected type %s", t.Name(), s.Type())
	}

	if got := StringType(99).String(); got != "UNKNOWN" {
		t.Fatalf("%s failed: unexpected name %q", t.Name(), got)
	}
}

func ExampleStringRef_AsUTF8() {
	s, err := NewString(BMPString, []byte{0x00, 0x47, 0x00, 0x6F})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer s.Close()

	u, _ := s.AsUTF8()
	fmt.Println(u, s.Len())
	// Output: Go 4
}
