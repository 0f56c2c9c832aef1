package domain

import (
	"fmt"
	"strings"
)

// OffsetLen is the width of a synset byte offset in the data files.
const OffsetLen = 8

// SynsetID identifies a synset across all parts of speech: the POS digit
// followed by the 8-digit offset, e.g. "100001740".
type SynsetID string

// NewSynsetID composes a POS-prefixed synset id.
func NewSynsetID(pos POS, offset string) SynsetID {
	return SynsetID(pos.Digit() + offset)
}

// ParseSynsetID validates s as a POS-prefixed synset id.
func ParseSynsetID(s string) (SynsetID, error) {
	if len(s) != OffsetLen+1 {
		return "", NewValidationError("synset_id", fmt.Sprintf("expected %d characters, got %d", OffsetLen+1, len(s)))
	}
	if !POS(s[0]).IsValid() {
		return "", NewValidationError("synset_id", fmt.Sprintf("unknown POS digit %q", s[0]))
	}
	if !IsOffset(s[1:]) {
		return "", NewValidationError("synset_id", fmt.Sprintf("offset %q is not 8 digits", s[1:]))
	}
	return SynsetID(s), nil
}

// POS returns the part of speech encoded in the id.
func (id SynsetID) POS() POS {
	if id == "" {
		return 0
	}
	return POS(id[0])
}

// Offset returns the id without its POS digit.
func (id SynsetID) Offset() string {
	if id == "" {
		return ""
	}
	return string(id[1:])
}

func (id SynsetID) String() string { return string(id) }

// IsOffset reports whether s is an 8-digit synset offset.
func IsOffset(s string) bool {
	if len(s) != OffsetLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Relation is a typed, directed edge between two synsets. The target is
// not required to resolve to a loaded synset.
type Relation struct {
	Type   string
	Source SynsetID
	Target SynsetID
}

// ConceptTerm extracts the bare concept name from a mapping string such as
// "&%Entity=" or "(&%Human+": the "&%" prefix (and an optional opening
// parenthesis) and the trailing one-character qualifier are removed.
// Returns "" when the mapping does not carry a term.
func ConceptTerm(mapping string) string {
	m := strings.TrimSpace(mapping)
	if i := strings.Index(m, " "); i >= 0 {
		m = m[:i]
	}
	m = strings.TrimPrefix(m, "(")
	if !strings.HasPrefix(m, "&%") {
		return ""
	}
	m = m[2:]
	if len(m) < 2 {
		return ""
	}
	return m[:len(m)-1]
}

// IsMultiWord reports whether w is an underscore-joined phrase.
func IsMultiWord(w string) bool {
	return strings.IndexByte(w, '_') > 0
}

// HeadWord returns the first token of an underscore-joined phrase.
func HeadWord(w string) string {
	if i := strings.IndexByte(w, '_'); i >= 0 {
		return w[:i]
	}
	return w
}
