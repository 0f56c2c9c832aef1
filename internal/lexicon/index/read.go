package index

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/heartmarshall/lexdb/internal/domain"
)

// Returned slices and maps are copies; callers may modify them freely.

// Gloss returns the gloss of the synset at offset in pos.
func (x *Index) Gloss(pos domain.POS, offset string) (string, bool) {
	return x.GlossByID(domain.NewSynsetID(pos, offset))
}

// GlossByID returns the gloss of a POS-prefixed synset id.
func (x *Index) GlossByID(id domain.SynsetID) (string, bool) {
	g, ok := x.glosses[id]
	return g, ok
}

// Concept returns the concept mapping of the synset at offset in pos.
func (x *Index) Concept(pos domain.POS, offset string) (string, bool) {
	c, ok := x.concepts[domain.NewSynsetID(pos, offset)]
	return c, ok
}

// SynsetsForConcept lists the synsets carrying exactly this mapping string,
// qualifier included.
func (x *Index) SynsetsForConcept(mapping string) []domain.SynsetID {
	return slices.Clone(x.conceptSynsets[mapping])
}

// SynsetsForTerm lists the synsets mapped to a bare concept term with any
// qualifier.
func (x *Index) SynsetsForTerm(term string) []domain.SynsetID {
	return slices.Clone(x.termSynsets[term])
}

// WordSynsets returns the offsets of the synsets word belongs to in pos, in
// file order.
func (x *Index) WordSynsets(pos domain.POS, word string) []string {
	return slices.Clone(x.words[pos][word])
}

// SynsetWords returns the members of a synset in file order.
func (x *Index) SynsetWords(id domain.SynsetID) []string {
	return slices.Clone(x.members[id])
}

// Relations returns the outgoing edges of a synset.
func (x *Index) Relations(id domain.SynsetID) []domain.Relation {
	return slices.Clone(x.relations[id])
}

// MultiWords returns the phrases whose first token is head.
func (x *Index) MultiWords(head string) []string {
	return slices.Clone(x.multiWords[head])
}

// SenseOffset returns the synset offset of a composed sense key.
func (x *Index) SenseOffset(key string) (string, bool) {
	o, ok := x.senses[key]
	return o, ok
}

// WordSenses returns the sense keys of word in file order.
func (x *Index) WordSenses(word string) []string {
	return slices.Clone(x.wordSenses[word])
}

// ExceptionBase returns the base form of an irregular form.
func (x *Index) ExceptionBase(pos domain.POS, form string) (string, bool) {
	b, ok := x.exceptions[pos][form]
	return b, ok
}

// ExceptionForms returns the irregular forms recorded for base.
func (x *Index) ExceptionForms(pos domain.POS, base string) []string {
	return slices.Clone(x.exceptionForms[pos][base])
}

// Frames returns the frames bound to the whole verb synset at offset.
func (x *Index) Frames(offset string) []string {
	return slices.Clone(x.frames[FrameKey{Offset: offset}])
}

// WordFrames returns the frames bound to one member word of a verb synset.
func (x *Index) WordFrames(offset, word string) []string {
	return slices.Clone(x.frames[FrameKey{Offset: offset, Word: word}])
}

// Frequencies returns the co-occurrence counts recorded for a sense key.
func (x *Index) Frequencies(key string) map[string]int {
	m, ok := x.frequencies[key]
	if !ok {
		return nil
	}
	return maps.Clone(m)
}

// Stopwords returns the stopword list in file order.
func (x *Index) Stopwords() []string {
	return slices.Clone(x.stopwords)
}

// IsStopword reports whether w is on the stopword list.
func (x *Index) IsStopword(w string) bool {
	_, ok := x.stopset[w]
	return ok
}

// Sentiment returns the sentiment row of word.
func (x *Index) Sentiment(word string) (Sentiment, bool) {
	s, ok := x.sentiment[word]
	return s, ok
}

// Stats summarizes the table sizes.
type Stats struct {
	Synsets     map[string]int `json:"synsets"`
	Words       map[string]int `json:"words"`
	Relations   int            `json:"relations"`
	Concepts    int            `json:"concepts"`
	MultiWords  int            `json:"multi_word_heads"`
	Senses      int            `json:"senses"`
	Exceptions  map[string]int `json:"exceptions"`
	FrameKeys   int            `json:"frame_keys"`
	Frequencies int            `json:"frequency_keys"`
	Stopwords   int            `json:"stopwords"`
	Sentiment   int            `json:"sentiment"`
}

// Stats counts the entries of every table.
func (x *Index) Stats() Stats {
	s := Stats{
		Synsets:     make(map[string]int, len(domain.AllPOS)),
		Words:       make(map[string]int, len(domain.AllPOS)),
		Exceptions:  make(map[string]int, len(domain.AllPOS)),
		Concepts:    len(x.concepts),
		MultiWords:  len(x.multiWords),
		Senses:      len(x.senses),
		FrameKeys:   len(x.frames),
		Frequencies: len(x.frequencies),
		Stopwords:   len(x.stopwords),
		Sentiment:   len(x.sentiment),
	}
	for _, p := range domain.AllPOS {
		s.Words[p.String()] = len(x.words[p])
		s.Exceptions[p.String()] = len(x.exceptions[p])
	}
	for id := range x.glosses {
		s.Synsets[id.POS().String()]++
	}
	for _, rels := range x.relations {
		s.Relations += len(rels)
	}
	return s
}

// Synsets calls fn for every synset with a gloss, ordered by id.
func (x *Index) Synsets(fn func(id domain.SynsetID, gloss string) bool) {
	for _, id := range slices.Sorted(maps.Keys(x.glosses)) {
		if !fn(id, x.glosses[id]) {
			return
		}
	}
}

// SenseKeys calls fn for every sense key with its offset, ordered by key.
func (x *Index) SenseKeys(fn func(key, offset string) bool) {
	for _, k := range slices.Sorted(maps.Keys(x.senses)) {
		if !fn(k, x.senses[k]) {
			return
		}
	}
}

// Exceptions calls fn for every forward exception of pos, ordered by form.
func (x *Index) Exceptions(pos domain.POS, fn func(form, base string) bool) {
	fwd := x.exceptions[pos]
	for _, f := range slices.Sorted(maps.Keys(fwd)) {
		if !fn(f, fwd[f]) {
			return
		}
	}
}

// FrameBindings calls fn for every verb-frame binding, ordered by key.
func (x *Index) FrameBindings(fn func(key FrameKey, frames []string) bool) {
	keys := slices.SortedFunc(maps.Keys(x.frames), func(a, b FrameKey) int {
		return cmp.Or(strings.Compare(a.Offset, b.Offset), strings.Compare(a.Word, b.Word))
	})
	for _, k := range keys {
		if !fn(k, slices.Clone(x.frames[k])) {
			return
		}
	}
}
