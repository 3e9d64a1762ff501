package ast

import "testing"

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("%s: MarshalText: %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: UnmarshalText(%q): %v", typ, d, err)
		}
		if back != typ {
			t.Errorf("round trip %s -> %q -> %s", typ, d, back)
		}
	}
}

func TestTypeUnmarshalUnknown(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("Number")); err == nil {
		t.Errorf("UnmarshalText accepted %q", "Number")
	}
}

func TestTypeStringUnknown(t *testing.T) {
	if got := Type(42).String(); got != "<unknown type>" {
		t.Errorf("Type(42).String() = %q", got)
	}
}
