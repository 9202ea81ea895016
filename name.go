package markup

import "strings"

// A QName is a qualified name as written in source: an optional prefix and
// a local part. The zero value is the empty name.
type QName struct {
	Prefix string
	Local  string
}

// ParseQName splits s on its first colon. A name without a colon has an
// empty prefix. Empty input or more than one colon is an invalid name.
func ParseQName(s string) (QName, error) {
	if s == "" {
		return QName{}, &DeserializationError{Msg: "invalid name: empty"}
	}
	prefix, local, found := strings.Cut(s, ":")
	if !found {
		return QName{Local: s}, nil
	}
	if strings.Contains(local, ":") {
		return QName{}, &DeserializationError{Msg: "invalid name: " + s}
	}
	return QName{Prefix: prefix, Local: local}, nil
}

// String returns the name as written in source, prefix:local or just the
// local part when the prefix is empty.
func (q QName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// IsZero reports whether the name is empty.
func (q QName) IsZero() bool {
	return q.Prefix == "" && q.Local == ""
}

// A DataName is a resolved name: the local part and prefix from source plus
// the namespace URI the prefix resolved to at emission time. An unresolved
// prefix yields an empty Namespace. Equality compares all three fields.
type DataName struct {
	Local     string
	Prefix    string
	Namespace string
}

// NewDataName returns a DataName with no namespace resolution applied.
func NewDataName(local string) DataName {
	return DataName{Local: local}
}

// String returns the prefixed form of the name. The namespace URI does not
// participate; this is the name as it would be written in source.
func (n DataName) String() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}
