// Package tree folds a token sequence produced by the markup tokenizer
// into an etree document. It is a thin adapter over
// github.com/beevik/etree for callers that want a navigable tree rather
// than a flat token stream.
//
// The mapping is permissive, like the tokenizer itself: stray end tokens
// are ignored and unbalanced input yields whatever structure was closed.
// Comments become etree comments, SGML declarations and embedded code
// blocks become directives, and processing instructions keep their target.
package tree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/dpotapov/go-markup"
)

// Build constructs a document from a token sequence.
func Build(tokens []markup.Token) (*etree.Document, error) {
	doc := etree.NewDocument()
	cur := &doc.Element
	var stack []*etree.Element

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		switch tok.Type {
		case markup.TokenElementBegin, markup.TokenElementVoid:
			el := cur.CreateElement(tok.Name.String())
			i++
			for i < len(tokens) && tokens[i].Type == markup.TokenAttribute {
				attr := tokens[i]
				i++
				if i >= len(tokens) {
					return nil, fmt.Errorf("attribute %s without a value", attr.Name)
				}
				el.CreateAttr(attr.Name.String(), valueText(tokens[i]))
				i++
			}
			if tok.Type == markup.TokenElementBegin {
				stack = append(stack, cur)
				cur = el
			}
		case markup.TokenElementEnd:
			if len(stack) > 0 {
				cur = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			i++
		case markup.TokenPrimitive:
			cur.CreateText(tok.Value)
			i++
		case markup.TokenUnparsed:
			addUnparsed(cur, tok)
			i++
		default:
			return nil, fmt.Errorf("unexpected %s token at position %d", tok.Type, i)
		}
	}
	return doc, nil
}

func addUnparsed(parent *etree.Element, tok markup.Token) {
	switch {
	case tok.Begin == "!--":
		parent.CreateComment(tok.Value)
	case tok.Begin == "!":
		parent.CreateDirective(tok.Value)
	case strings.HasPrefix(tok.Begin, "?"):
		target, inst, _ := strings.Cut(strings.TrimPrefix(tok.Begin, "?")+tok.Value, " ")
		parent.CreateProcInst(target, inst)
	default:
		// ASP/JSP and T4 code blocks have no tree-node equivalent; keep
		// their inner source as a directive.
		parent.CreateDirective(tok.Begin + tok.Value + strings.TrimSuffix(tok.End, ">"))
	}
}

// valueText renders an attribute value token. Unparsed values keep their
// source form.
func valueText(tok markup.Token) string {
	if tok.Type != markup.TokenUnparsed {
		return tok.Value
	}
	end := tok.End
	if !strings.HasSuffix(end, ">") {
		end += ">"
	}
	return "<" + tok.Begin + tok.Value + end
}
