package markup

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQName(t *testing.T) {
	tests := []struct {
		input   string
		want    QName
		wantErr bool
	}{
		{input: "a", want: QName{Local: "a"}},
		{input: "p:a", want: QName{Prefix: "p", Local: "a"}},
		{input: "xmlns:foo", want: QName{Prefix: "xmlns", Local: "foo"}},
		{input: ":a", want: QName{Prefix: "", Local: "a"}},
		{input: "a:", want: QName{Prefix: "a", Local: ""}},
		{input: "", wantErr: true},
		{input: "a:b:c", wantErr: true},
		{input: "::", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseQName(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseQName(%q) succeeded, want error", tt.input)
			}
			var de *DeserializationError
			if !errors.As(err, &de) {
				t.Errorf("ParseQName(%q) error type %T, want DeserializationError", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseQName(%q): %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseQName(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestQNameString(t *testing.T) {
	if got := (QName{Local: "a"}).String(); got != "a" {
		t.Errorf("String = %q, want %q", got, "a")
	}
	if got := (QName{Prefix: "p", Local: "a"}).String(); got != "p:a" {
		t.Errorf("String = %q, want %q", got, "p:a")
	}
}

func TestQNameEquality(t *testing.T) {
	if (QName{Prefix: "p", Local: "a"}) != (QName{Prefix: "p", Local: "a"}) {
		t.Error("equal names compare unequal")
	}
	if (QName{Local: "a"}) == (QName{Prefix: "p", Local: "a"}) {
		t.Error("names with different prefixes compare equal")
	}
	// Comparison is case-sensitive.
	if (QName{Local: "A"}) == (QName{Local: "a"}) {
		t.Error("case-different names compare equal")
	}
}

func TestDataNameEquality(t *testing.T) {
	a := DataName{Local: "x", Prefix: "p", Namespace: "u"}
	b := DataName{Local: "x", Prefix: "p", Namespace: "u"}
	if a != b {
		t.Error("equal names compare unequal")
	}
	c := DataName{Local: "x", Prefix: "p", Namespace: "v"}
	if a == c {
		t.Error("names with different namespaces compare equal")
	}
	if (DataName{Local: "x"}).String() != "x" || a.String() != "p:x" {
		t.Error("String does not render prefixed form")
	}
}
