// Package morph reads the irregular morphology tables (the *.exc files).
// Pure function: file path in, index entries out.
package morph

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/grammar"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
)

// ReadExceptions loads the exception list of pos from path into idx.
//
//	irregular base [alternate_base]
//
// A three-column line records the irregular form in the reverse table of
// both bases. The returned error is non-nil only when the file cannot be
// read.
func ReadExceptions(reg *grammar.Registry, idx *index.Index, pos domain.POS, path string, maxIssues int) (*source.Stats, error) {
	pair := reg.Lookup(grammar.ExceptionPair)
	triple := reg.Lookup(grammar.ExceptionTriple)
	stats := source.NewStats(maxIssues)

	err := source.EachLine(path, func(n int, raw string) error {
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == ';' {
			stats.Skipped++
			return nil
		}

		if m := pair.Match(line); m.OK() {
			idx.AddException(pos, m.Group(1), m.Group(2))
			stats.Parsed++
			return nil
		}
		m := triple.Match(line)
		if !m.OK() {
			stats.Unparsed(n, line, fmt.Sprintf("no %s exception grammar matched (%s)", pos, m.Status()))
			return nil
		}
		idx.AddException(pos, m.Group(1), m.Group(2))
		idx.AddExceptionForm(pos, m.Group(3), m.Group(1))
		stats.Parsed++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("read %s exceptions: %w", pos, err)
	}
	return stats, nil
}
