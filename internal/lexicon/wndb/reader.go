package wndb

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/grammar"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
)

// Reader loads the synset mapping file of one part of speech.
type Reader struct {
	log       *slog.Logger
	pos       domain.POS
	concept   *grammar.Grammar
	plain     *grammar.Grammar
	decoder   *Decoder
	idx       *index.Index
	maxIssues int
}

// NewReader creates a Reader for pos writing into idx.
func NewReader(log *slog.Logger, reg *grammar.Registry, idx *index.Index, pos domain.POS, maxIssues int) *Reader {
	return &Reader{
		log:       log,
		pos:       pos,
		concept:   reg.Lookup(grammar.SynsetWithConcept(pos)),
		plain:     reg.Lookup(grammar.SynsetPlain(pos)),
		decoder:   NewDecoder(reg, idx),
		idx:       idx,
		maxIssues: maxIssues,
	}
}

// Read parses the file at path. The returned error is non-nil only when the
// file cannot be read; line-level problems are counted in the stats.
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [...] p_cnt [ptr...] [frames...] | gloss [&%Concept=]
func (r *Reader) Read(path string) (*source.Stats, error) {
	stats := source.NewStats(r.maxIssues)
	err := source.EachLine(path, func(n int, raw string) error {
		r.readLine(n, strings.TrimSpace(raw), stats)
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("read %s mappings: %w", r.pos, err)
	}
	return stats, nil
}

func (r *Reader) readLine(n int, line string, stats *source.Stats) {
	if line == "" || line[0] == ';' {
		stats.Skipped++
		return
	}

	var mapping string
	m := r.concept.Match(line)
	if m.OK() {
		mapping = strings.TrimSpace(m.Group(4))
	} else {
		m = r.plain.Match(line)
	}
	if !m.OK() {
		stats.Unparsed(n, line, fmt.Sprintf("no %s synset grammar matched (%s)", r.pos, m.Status()))
		r.log.Debug("unparsed synset line",
			slog.String("pos", r.pos.String()),
			slog.Int("line", n),
		)
		return
	}

	id := domain.NewSynsetID(r.pos, m.Group(1))
	r.idx.SetGloss(id, m.Group(3))
	if mapping != "" {
		r.idx.SetConcept(id, mapping)
	}
	r.decoder.Decode(id, m.Group(2), n, stats)
	stats.Parsed++
}

// ReadMappings is a convenience wrapper around NewReader and Read.
func ReadMappings(log *slog.Logger, reg *grammar.Registry, idx *index.Index, pos domain.POS, path string, maxIssues int) (*source.Stats, error) {
	return NewReader(log, reg, idx, pos, maxIssues).Read(path)
}
