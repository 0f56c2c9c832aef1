// Package senses reads the global sense index (index.sense).
package senses

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/grammar"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
)

// Read loads the sense index at path into idx. Each line
//
//	lemma%ss_type:lex_filenum:lex_id:head_word:head_id synset_offset sense_number tag_cnt
//
// becomes the key lemma_LL_sense_number mapped to synset_offset, appended
// to the lemma's sense list in file order.
func Read(reg *grammar.Registry, idx *index.Index, path string, maxIssues int) (*source.Stats, error) {
	g := reg.Lookup(grammar.SenseIndexLine)
	stats := source.NewStats(maxIssues)

	err := source.EachLine(path, func(n int, line string) error {
		if strings.TrimSpace(line) == "" {
			stats.Skipped++
			return nil
		}
		m := g.Match(line)
		if !m.OK() {
			stats.Unparsed(n, line, fmt.Sprintf("no sense grammar matched (%s)", m.Status()))
			return nil
		}
		pos, ok := domain.POSFromDigit(m.Group(2))
		if !ok {
			stats.Anomaly(n, source.IssueAnomaly, fmt.Sprintf("unknown synset type %q", m.Group(2)))
			return nil
		}
		idx.AddSense(domain.SenseKey{Word: m.Group(1), POS: pos, Number: m.Group(4)}, m.Group(3))
		stats.Parsed++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("read sense index: %w", err)
	}
	return stats, nil
}
