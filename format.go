package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// A Formatter writes a token sequence back out as markup text. End tokens
// carry no name, so the formatter tracks its own stack of open elements.
// Character data and attribute values are entity-escaped, so well-formed
// output re-tokenizes to the same sequence.
type Formatter struct{}

// Format renders tokens as a markup string.
func (f *Formatter) Format(tokens []Token) (string, error) {
	var sb strings.Builder
	if err := f.Write(&sb, tokens); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders tokens to w. End tokens with no matching open element are
// skipped, mirroring the tokenizer's permissive stance.
func (f *Formatter) Write(w io.Writer, tokens []Token) error {
	ew := &errWriter{w: w}
	var stack []DataName

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok.Type {
		case TokenElementBegin, TokenElementVoid:
			ew.writeString("<")
			ew.writeString(tok.Name.String())
			i++
			for i < len(tokens) && tokens[i].Type == TokenAttribute {
				attr := tokens[i]
				i++
				if i >= len(tokens) {
					return fmt.Errorf("attribute %s without a value", attr.Name)
				}
				ew.writeString(" ")
				ew.writeString(attr.Name.String())
				ew.writeString(`="`)
				ew.writeString(attributeValue(tokens[i]))
				ew.writeString(`"`)
				i++
			}
			if tok.Type == TokenElementVoid {
				ew.writeString(" />")
			} else {
				ew.writeString(">")
				stack = append(stack, tok.Name)
			}
		case TokenElementEnd:
			if len(stack) > 0 {
				name := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				ew.writeString("</")
				ew.writeString(name.String())
				ew.writeString(">")
			}
			i++
		case TokenPrimitive:
			ew.writeString(html.EscapeString(tok.Value))
			i++
		case TokenUnparsed:
			ew.writeString(unparsedSource(tok))
			i++
		default:
			return fmt.Errorf("unexpected %s token at position %d", tok.Type, i)
		}
		if ew.err != nil {
			return ew.err
		}
	}
	return ew.err
}

// attributeValue renders the value token following an attribute name.
func attributeValue(tok Token) string {
	if tok.Type == TokenUnparsed {
		return unparsedSource(tok)
	}
	return html.EscapeString(tok.Value)
}

// unparsedSource reconstructs the source form of an unparsed token. End
// markers that do not already carry the closing '>' get one appended.
func unparsedSource(tok Token) string {
	end := tok.End
	if !strings.HasSuffix(end, ">") {
		end += ">"
	}
	return "<" + tok.Begin + tok.Value + end
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err == nil {
		_, ew.err = io.WriteString(ew.w, s)
	}
}
