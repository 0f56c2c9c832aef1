package domain

import "fmt"

// POS is a part of speech as encoded by its numeric digit.
type POS byte

const (
	POSNoun      POS = '1'
	POSVerb      POS = '2'
	POSAdjective POS = '3'
	POSAdverb    POS = '4'
)

// AllPOS lists the parts of speech in load order.
var AllPOS = []POS{POSNoun, POSVerb, POSAdjective, POSAdverb}

// IsValid reports whether p is one of the four known parts of speech.
func (p POS) IsValid() bool {
	switch p {
	case POSNoun, POSVerb, POSAdjective, POSAdverb:
		return true
	}
	return false
}

// Digit returns the single-character digit prefixed to offsets.
func (p POS) Digit() string { return string(rune(p)) }

// String returns the lowercase name ("noun", "verb", ...).
func (p POS) String() string {
	switch p {
	case POSNoun:
		return "noun"
	case POSVerb:
		return "verb"
	case POSAdjective:
		return "adjective"
	case POSAdverb:
		return "adverb"
	}
	return fmt.Sprintf("pos(%q)", rune(p))
}

// Letter returns the data-file letter: n, v, a or r.
func (p POS) Letter() byte {
	switch p {
	case POSNoun:
		return 'n'
	case POSVerb:
		return 'v'
	case POSAdjective:
		return 'a'
	case POSAdverb:
		return 'r'
	}
	return 0
}

// SenseLetters returns the two-letter tag used in composed sense keys.
func (p POS) SenseLetters() string {
	switch p {
	case POSVerb:
		return "VB"
	case POSAdjective:
		return "JJ"
	case POSAdverb:
		return "RB"
	}
	return "NN"
}

// POSFromLetter converts a pointer target letter to a POS. Satellite
// adjectives ('s') live in the adjective file and map to POSAdjective.
func POSFromLetter(letter byte) (POS, bool) {
	switch letter {
	case 'n':
		return POSNoun, true
	case 'v':
		return POSVerb, true
	case 'a', 's':
		return POSAdjective, true
	case 'r':
		return POSAdverb, true
	}
	return 0, false
}

// POSFromDigit converts a sense-index lex type digit ("1".."5") to a POS.
// Digit 5 (satellite adjective) maps to POSAdjective.
func POSFromDigit(digit string) (POS, bool) {
	switch digit {
	case "1":
		return POSNoun, true
	case "2":
		return POSVerb, true
	case "3", "5":
		return POSAdjective, true
	case "4":
		return POSAdverb, true
	}
	return 0, false
}

// POSFromSenseLetters converts NN, VB, JJ or RB back to a POS.
func POSFromSenseLetters(letters string) (POS, bool) {
	switch letters {
	case "NN":
		return POSNoun, true
	case "VB":
		return POSVerb, true
	case "JJ":
		return POSAdjective, true
	case "RB":
		return POSAdverb, true
	}
	return 0, false
}

// ParsePOS accepts a name ("noun"), a letter ("n") or a digit ("1").
func ParsePOS(s string) (POS, error) {
	switch s {
	case "noun", "n", "1":
		return POSNoun, nil
	case "verb", "v", "2":
		return POSVerb, nil
	case "adjective", "adj", "a", "s", "3":
		return POSAdjective, nil
	case "adverb", "adv", "r", "4":
		return POSAdverb, nil
	}
	return 0, NewValidationError("pos", fmt.Sprintf("unknown part of speech %q", s))
}
