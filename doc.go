// Package markup provides a permissive, streaming tokenizer for a
// generalized markup language covering HTML, XML and a family of embedded
// code dialects: SGML declarations, CDATA sections, processing
// instructions, ASP/JSP-style <% %> blocks and T4-style <# #> blocks.
//
// The tokenizer emits a flat sequence of tokens describing element
// boundaries, attributes with primitive values, character data and opaque
// unparsed regions. It performs HTML-style error recovery: input that
// merely violates strict XML is never rejected; malformed markers become
// literal text, stray end tags are tolerated, and open elements can be
// balanced automatically at end of input.
//
// Qualified names are resolved against the chain of namespace declarations
// visible at the moment each start tag is emitted, so every element and
// attribute token carries its local name, prefix and namespace URI.
package markup
