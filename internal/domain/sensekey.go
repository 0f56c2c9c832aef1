package domain

import (
	"fmt"
	"strings"
)

// SenseKey identifies one meaning of a word: word_LL_N, where LL is the
// two-letter POS tag and N the sense number from the sense index.
type SenseKey struct {
	Word   string
	POS    POS
	Number string
}

// String composes the key in its canonical form.
func (k SenseKey) String() string {
	return k.Word + "_" + k.POS.SenseLetters() + "_" + k.Number
}

// ParseSenseKey splits a composed key. The word part may itself contain
// underscores.
func ParseSenseKey(s string) (SenseKey, error) {
	last := strings.LastIndexByte(s, '_')
	if last < 4 || last == len(s)-1 || s[last-3] != '_' {
		return SenseKey{}, NewValidationError("sense_key", fmt.Sprintf("malformed sense key %q", s))
	}
	pos, ok := POSFromSenseLetters(s[last-2 : last])
	if !ok {
		return SenseKey{}, NewValidationError("sense_key", fmt.Sprintf("unknown POS tag in %q", s))
	}
	return SenseKey{Word: s[:last-3], POS: pos, Number: s[last+1:]}, nil
}
