// Package index holds the in-memory lexical index built by the readers.
//
// The write methods are called by the readers during a load. Once a load
// has returned, an Index is treated as read-only and may be shared between
// goroutines.
package index

import (
	"slices"

	"github.com/heartmarshall/lexdb/internal/domain"
)

// FrameKey addresses a verb-frame binding. An empty Word binds the frames to
// the whole synset.
type FrameKey struct {
	Offset string
	Word   string
}

// Sentiment is one row of the sentiment lexicon.
type Sentiment struct {
	Type     string `json:"type"`
	POS      string `json:"pos"`
	Stemmed  string `json:"stemmed"`
	Polarity string `json:"polarity"`
}

// Index is the multiply-indexed graph of synsets, words, senses and
// relations.
type Index struct {
	glosses   map[domain.SynsetID]string
	members   map[domain.SynsetID][]string
	relations map[domain.SynsetID][]domain.Relation

	concepts       map[domain.SynsetID]string
	conceptSynsets map[string][]domain.SynsetID
	termSynsets    map[string][]domain.SynsetID

	// word -> offsets, per POS
	words      map[domain.POS]map[string][]string
	multiWords map[string][]string

	senses     map[string]string
	wordSenses map[string][]string

	exceptions     map[domain.POS]map[string]string
	exceptionForms map[domain.POS]map[string][]string

	frames map[FrameKey][]string

	frequencies map[string]map[string]int
	stopwords   []string
	stopset     map[string]struct{}
	sentiment   map[string]Sentiment
}

// New returns an empty index.
func New() *Index {
	idx := &Index{
		glosses:        make(map[domain.SynsetID]string),
		members:        make(map[domain.SynsetID][]string),
		relations:      make(map[domain.SynsetID][]domain.Relation),
		concepts:       make(map[domain.SynsetID]string),
		conceptSynsets: make(map[string][]domain.SynsetID),
		termSynsets:    make(map[string][]domain.SynsetID),
		words:          make(map[domain.POS]map[string][]string, len(domain.AllPOS)),
		multiWords:     make(map[string][]string),
		senses:         make(map[string]string),
		wordSenses:     make(map[string][]string),
		exceptions:     make(map[domain.POS]map[string]string, len(domain.AllPOS)),
		exceptionForms: make(map[domain.POS]map[string][]string, len(domain.AllPOS)),
		frames:         make(map[FrameKey][]string),
		frequencies:    make(map[string]map[string]int),
		stopset:        make(map[string]struct{}),
		sentiment:      make(map[string]Sentiment),
	}
	for _, p := range domain.AllPOS {
		idx.words[p] = make(map[string][]string)
		idx.exceptions[p] = make(map[string]string)
		idx.exceptionForms[p] = make(map[string][]string)
	}
	return idx
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// SetGloss stores the gloss of a synset.
func (x *Index) SetGloss(id domain.SynsetID, gloss string) {
	x.glosses[id] = gloss
}

// SetConcept records the concept mapping of a synset in the forward table,
// the reverse table keyed by the verbatim mapping and the reverse table keyed
// by the bare concept term.
func (x *Index) SetConcept(id domain.SynsetID, mapping string) {
	x.concepts[id] = mapping
	x.conceptSynsets[mapping] = appendUnique(x.conceptSynsets[mapping], id)
	if term := domain.ConceptTerm(mapping); term != "" {
		x.termSynsets[term] = appendUnique(x.termSynsets[term], id)
	}
}

// AddMember appends word to the members of id and indexes the word. It
// returns the new member count.
func (x *Index) AddMember(id domain.SynsetID, word string) int {
	x.members[id] = append(x.members[id], word)

	byWord := x.words[id.POS()]
	if byWord == nil {
		byWord = make(map[string][]string)
		x.words[id.POS()] = byWord
	}
	byWord[word] = appendUnique(byWord[word], id.Offset())

	if domain.IsMultiWord(word) {
		head := domain.HeadWord(word)
		x.multiWords[head] = appendUnique(x.multiWords[head], word)
	}
	return len(x.members[id])
}

// AddRelation appends an outgoing edge to its source synset.
func (x *Index) AddRelation(rel domain.Relation) {
	x.relations[rel.Source] = append(x.relations[rel.Source], rel)
}

// BindFrame appends a verb frame number to key.
func (x *Index) BindFrame(key FrameKey, frame string) {
	x.frames[key] = append(x.frames[key], frame)
}

// AddException records that form is an irregular form of base for pos.
// The forward table keeps the last base seen for a form.
func (x *Index) AddException(pos domain.POS, form, base string) {
	fwd := x.exceptions[pos]
	if fwd == nil {
		fwd = make(map[string]string)
		x.exceptions[pos] = fwd
		x.exceptionForms[pos] = make(map[string][]string)
	}
	fwd[form] = base
	x.AddExceptionForm(pos, base, form)
}

// AddExceptionForm records form in the reverse table of base only.
func (x *Index) AddExceptionForm(pos domain.POS, base, form string) {
	rev := x.exceptionForms[pos]
	if rev == nil {
		rev = make(map[string][]string)
		x.exceptionForms[pos] = rev
	}
	rev[base] = appendUnique(rev[base], form)
}

// AddSense maps a sense key to its synset offset and appends the key to the
// word's ordered sense list.
func (x *Index) AddSense(key domain.SenseKey, offset string) {
	k := key.String()
	if _, seen := x.senses[k]; !seen {
		x.wordSenses[key.Word] = append(x.wordSenses[key.Word], k)
	}
	x.senses[k] = offset
}

// AddFrequency records a co-occurrence count for a sense key.
func (x *Index) AddFrequency(key, word string, count int) {
	m := x.frequencies[key]
	if m == nil {
		m = make(map[string]int)
		x.frequencies[key] = m
	}
	m[word] = count
}

// AddStopword appends w to the stopword list.
func (x *Index) AddStopword(w string) {
	x.stopwords = append(x.stopwords, w)
	x.stopset[w] = struct{}{}
}

// SetSentiment stores the sentiment row of word.
func (x *Index) SetSentiment(word string, s Sentiment) {
	x.sentiment[word] = s
}

func appendUnique[T comparable](s []T, v T) []T {
	if slices.Contains(s, v) {
		return s
	}
	return append(s, v)
}
