package asn1safe

import (
	"fmt"
	"strings"
	"testing"

	"github.com/JesseCoretta/go-asn1safe/nid"
)

func TestObjectFromNid(t *testing.T) {
	for _, e := range nid.All() {
		o, err := ObjectFromNid(e.Nid)
		if err != nil {
			t.Fatalf("%s failed [%s]: %v", t.Name(), e.ShortName, err)
		}
		if n, ok := o.Nid(); !ok || n != e.Nid {
			t.Fatalf("%s failed: nid %d round-tripped to %d", t.Name(), e.Nid, n)
		}
		if o.Dotted() != e.OID.String() {
			t.Fatalf("%s failed: want %s, got %s", t.Name(), e.OID, o.Dotted())
		}
		o.Close()
	}
}

func TestObject_Text(t *testing.T) {
	for idx, obj := range []struct {
		in     string
		noName bool
		text   string
		dotted string
	}{
		{"2.5.4.3", false, "commonName", "2.5.4.3"},
		{"2.5.4.3", true, "commonName", "2.5.4.3"},
		{"CN", false, "commonName", "2.5.4.3"},
		{"commonName", false, "commonName", "2.5.4.3"},
		{"1.3.6.1.4.1.56521", false, "1.3.6.1.4.1.56521", "1.3.6.1.4.1.56521"},
	} {
		o, err := ObjectFromText(obj.in, obj.noName)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if got := o.Text(); got != obj.text {
			t.Fatalf("%s[%d] failed:\n\twant: %q\n\tgot:  %q", t.Name(), idx, obj.text, got)
		} else if got = o.Dotted(); got != obj.dotted {
			t.Fatalf("%s[%d] failed:\n\twant: %q\n\tgot:  %q", t.Name(), idx, obj.dotted, got)
		} else if o.String() != o.Text() {
			t.Fatalf("%s[%d] failed: String and Text differ", t.Name(), idx)
		}
		o.Close()
	}
}

func TestObjectFromText_invalid(t *testing.T) {
	for idx, in := range []string{
		"", "CN.", "1", "3.1", "1.40", "1.02", "1..2", "1.-2", "bogusName",
	} {
		if o, err := ObjectFromText(in, false); err == nil {
			o.Close()
			t.Fatalf("%s[%d] failed: %q accepted", t.Name(), idx, in)
		}
	}
	if o, err := ObjectFromText("CN", true); err == nil {
		o.Close()
		t.Fatalf("%s failed: name accepted with noName", t.Name())
	}
}

func TestObject_truncatedText(t *testing.T) {
	dotted := "1.3.6.1.4.1" + strings.Repeat(".123456789", 10)
	o, err := ObjectFromText(dotted, true)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	defer o.Close()

	got := o.Text()
	if len(got) != objTextLen-1 || got != dotted[:objTextLen-1] {
		t.Fatalf("%s failed: unexpected truncation %q (%d bytes)", t.Name(), got, len(got))
	}
}

func TestObject_Clone(t *testing.T) {
	o, _ := ObjectFromNid(nid.CommonName)
	defer o.Close()

	c, err := o.Clone()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	} else if c.Handle() == o.Handle() {
		t.Fatalf("%s failed: clone aliases the original", t.Name())
	} else if !c.Equal(o.Ref()) {
		t.Fatalf("%s failed: clone differs from the original", t.Name())
	}

	c.Close()
	if got := o.Text(); got != "commonName" {
		t.Fatalf("%s failed: original reads %q after closing the clone", t.Name(), got)
	}
}

func TestNewObject(t *testing.T) {
	o, err := NewObject()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	defer o.Close()

	if _, ok := o.Nid(); ok {
		t.Fatalf("%s failed: empty object resolved a nid", t.Name())
	} else if o.Text() != "" {
		t.Fatalf("%s failed: empty object rendered %q", t.Name(), o.Text())
	}

	cn, _ := ObjectFromNid(nid.CommonName)
	defer cn.Close()
	if o.Equal(cn.Ref()) {
		t.Fatalf("%s failed: empty object equals commonName", t.Name())
	}
}

func ExampleObjectFromNid() {
	o, err := ObjectFromNid(nid.CommonName)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer o.Close()

	n, _ := o.Nid()
	fmt.Println(o.Text(), o.Dotted(), n.ShortName())
	// Output: commonName 2.5.4.3 CN
}

func ExampleObjectFromText() {
	o, err := ObjectFromText("2.5.4.10", false)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer o.Close()

	fmt.Println(o)
	// Output: organizationName
}
