package markup

// TokenType identifies the kind of a Token.
type TokenType int

const (
	// TokenNone is the zero value; it never appears in tokenizer output.
	TokenNone TokenType = iota

	// TokenElementBegin opens an element. Name is set.
	TokenElementBegin

	// TokenElementEnd closes the innermost open element. It carries no
	// name; pairing is positional.
	TokenElementEnd

	// TokenElementVoid is a self-contained element that opens no lasting
	// scope. Name is set.
	TokenElementVoid

	// TokenAttribute names an attribute. Name is set, and the token is
	// always followed by exactly one TokenPrimitive or TokenUnparsed
	// holding the value.
	TokenAttribute

	// TokenPrimitive is character data. Value is set.
	TokenPrimitive

	// TokenUnparsed is an opaque region such as a comment, SGML
	// declaration, processing instruction or code block. Begin and End
	// hold the markers as written after the angle brackets; Value holds
	// the body.
	TokenUnparsed
)

func (t TokenType) String() string {
	switch t {
	case TokenElementBegin:
		return "ElementBegin"
	case TokenElementEnd:
		return "ElementEnd"
	case TokenElementVoid:
		return "ElementVoid"
	case TokenAttribute:
		return "Attribute"
	case TokenPrimitive:
		return "Primitive"
	case TokenUnparsed:
		return "Unparsed"
	}
	return "None"
}

// A Token is one element of the flat output sequence.
type Token struct {
	Type  TokenType
	Name  DataName
	Value string
	Begin string
	End   string
}

// ElementBegin returns a begin-element token.
func ElementBegin(name DataName) Token {
	return Token{Type: TokenElementBegin, Name: name}
}

// ElementEnd returns an end-element token.
func ElementEnd() Token {
	return Token{Type: TokenElementEnd}
}

// ElementVoid returns a void-element token.
func ElementVoid(name DataName) Token {
	return Token{Type: TokenElementVoid, Name: name}
}

// Attribute returns an attribute-name token.
func Attribute(name DataName) Token {
	return Token{Type: TokenAttribute, Name: name}
}

// Primitive returns a character-data token.
func Primitive(value string) Token {
	return Token{Type: TokenPrimitive, Value: value}
}

// Unparsed returns an opaque-region token.
func Unparsed(begin, end, value string) Token {
	return Token{Type: TokenUnparsed, Begin: begin, End: end, Value: value}
}
