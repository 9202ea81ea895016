package markup

import (
	"testing"

	"golang.org/x/net/html"
)

func TestDecodeNamedEntity(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{name: "amp", want: "&", ok: true},
		{name: "lt", want: "<", ok: true},
		{name: "gt", want: ">", ok: true},
		{name: "quot", want: `"`, ok: true},
		{name: "apos", want: "'", ok: true},
		{name: "nbsp", want: " ", ok: true},
		{name: "mdash", want: "—", ok: true},
		{name: "euro", want: "€", ok: true},
		{name: "alpha", want: "α", ok: true},
		{name: "Alpha", want: "Α", ok: true},
		{name: "Prime", want: "″", ok: true},
		{name: "prime", want: "′", ok: true},
		// Lookups are case-sensitive.
		{name: "AMP", ok: false},
		{name: "Euro", ok: false},
		{name: "bogus", ok: false},
		{name: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := decodeNamedEntity(tt.name)
		if ok != tt.ok {
			t.Errorf("decodeNamedEntity(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("decodeNamedEntity(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// The whole table must agree with the reference decoder, except lang and
// rang, whose code points HTML5 moved to the mathematical angle brackets.
func TestNamedEntitiesMatchReference(t *testing.T) {
	for name, ch := range namedEntities {
		if name == "lang" || name == "rang" {
			continue
		}
		ref := html.UnescapeString("&" + name + ";")
		if ref != string(ch) {
			t.Errorf("entity %q = %q, reference decodes %q", name, string(ch), ref)
		}
	}
}

// Tokenizing &name; for every table entry yields a single primitive
// holding the mapped code point.
func TestEntityTableRoundTrip(t *testing.T) {
	var tok Tokenizer
	for name, ch := range namedEntities {
		got, err := tok.TokenizeString("&" + name + ";")
		if err != nil {
			t.Fatalf("TokenizeString(&%s;): %v", name, err)
		}
		if len(got) != 1 || got[0].Type != TokenPrimitive || got[0].Value != string(ch) {
			t.Errorf("&%s; = %+v, want single Primitive(%q)", name, got, string(ch))
		}
	}
}

func TestNamedEntityCount(t *testing.T) {
	// HTML 4.01 defines 252 references; apos comes from XML.
	if len(namedEntities) != 253 {
		t.Errorf("table holds %d entities, want 253", len(namedEntities))
	}
}
