// Package wndb reads the per-POS synset mapping files: one synset record per
// line, with its member words, pointers, optional verb frames, gloss and
// optional concept mapping.
package wndb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/grammar"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
)

// adjectiveMarkers are the syntactic markers that may trail an adjective.
var adjectiveMarkers = []string{"(ip)", "(a)", "(p)"}

// Decoder parses the body of a synset record, the text between the offset
// and the gloss separator:
//
//	lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] [frames...]
type Decoder struct {
	idx *index.Index

	header       *grammar.Grammar
	word         *grammar.Grammar
	pointerCount *grammar.Grammar
	pointer      *grammar.Grammar
	frameCount   *grammar.Grammar
	frame        *grammar.Grammar
}

// NewDecoder creates a Decoder writing into idx.
func NewDecoder(reg *grammar.Registry, idx *index.Index) *Decoder {
	return &Decoder{
		idx:          idx,
		header:       reg.Lookup(grammar.DecoderHeader),
		word:         reg.Lookup(grammar.DecoderWord),
		pointerCount: reg.Lookup(grammar.DecoderPointerCount),
		pointer:      reg.Lookup(grammar.DecoderPointer),
		frameCount:   reg.Lookup(grammar.DecoderFrameCount),
		frame:        reg.Lookup(grammar.DecoderFrame),
	}
}

// Decode registers the members, relations and verb frames of the synset id
// found in body. Problems are recorded in stats against line. A missing
// header stops decoding; a missing pointer count does not.
func (d *Decoder) Decode(id domain.SynsetID, body string, line int, stats *source.Stats) {
	m, rest := d.header.Consume(body)
	if !m.OK() {
		stats.Anomaly(line, source.IssueAnomaly, fmt.Sprintf("synset %s: missing header (%s)", id, m.Status()))
		return
	}

	for {
		m, next := d.word.Consume(rest)
		if !m.OK() {
			break
		}
		d.idx.AddMember(id, stripAdjectiveMarker(m.Group(1)))
		rest = next
	}

	if m, next := d.pointerCount.Consume(rest); m.OK() {
		rest = next
	} else {
		stats.Anomaly(line, source.IssueAnomaly, fmt.Sprintf("synset %s: missing pointer count (%s)", id, m.Status()))
	}

	for {
		m, next := d.pointer.Consume(rest)
		if !m.OK() {
			break
		}
		rest = next
		d.addPointer(id, m, line, stats)
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return
	}
	if id.POS() != domain.POSVerb {
		stats.Anomaly(line, source.IssueAnomaly, fmt.Sprintf("synset %s: leftover text %q", id, rest))
		return
	}
	rest = d.decodeFrames(id, rest+" ", line, stats)
	if rest = strings.TrimSpace(rest); rest != "" {
		stats.Anomaly(line, source.IssueAnomaly, fmt.Sprintf("synset %s: leftover frame text %q", id, rest))
	}
}

func (d *Decoder) addPointer(id domain.SynsetID, m grammar.Match, line int, stats *source.Stats) {
	symbol, target, letter := m.Group(1), m.Group(2), m.Group(3)

	// An unknown symbol is kept verbatim as the relation type.
	name, ok := domain.PointerName(symbol)
	if !ok {
		stats.Anomaly(line, source.IssueAnomaly, fmt.Sprintf("synset %s: unknown pointer symbol %q", id, symbol))
	}
	pos, ok := domain.POSFromLetter(letter[0])
	if !ok {
		stats.Anomaly(line, source.IssueAnomaly, fmt.Sprintf("synset %s: unknown pointer POS %q", id, letter))
		return
	}
	d.idx.AddRelation(domain.Relation{
		Type:   name,
		Source: id,
		Target: domain.NewSynsetID(pos, target),
	})
}

// decodeFrames consumes "[f_cnt] + f_num w_num ..." and returns what is
// left.
func (d *Decoder) decodeFrames(id domain.SynsetID, text string, line int, stats *source.Stats) string {
	if m, next := d.frameCount.Consume(text); m.OK() {
		text = next
	}

	offset := id.Offset()
	for {
		m, next := d.frame.Consume(text)
		if !m.OK() {
			return text
		}
		text = next

		frameNum, wordNum := m.Group(1), m.Group(2)
		if wordNum == "00" {
			d.idx.BindFrame(index.FrameKey{Offset: offset}, frameNum)
			continue
		}

		n, _ := strconv.Atoi(wordNum)
		members := d.idx.SynsetWords(id)
		if n < 1 || n > len(members) {
			stats.Anomaly(line, source.IssueBounds,
				fmt.Sprintf("synset %s: frame %s names word %d of %d", id, frameNum, n, len(members)))
			continue
		}
		d.idx.BindFrame(index.FrameKey{Offset: offset, Word: members[n-1]}, frameNum)
	}
}

func stripAdjectiveMarker(word string) string {
	for _, mk := range adjectiveMarkers {
		if len(word) > len(mk) && strings.HasSuffix(word, mk) {
			return word[:len(word)-len(mk)]
		}
	}
	return word
}
