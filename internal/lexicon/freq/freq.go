// Package freq reads the word co-occurrence frequencies and the stopword
// list.
package freq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/lexdb/internal/lexicon/grammar"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
)

// stopToken ends the frequency tokens of a line.
const stopToken = "SUMOterm:"

// ReadFrequencies loads co-occurrence counts from path into idx.
//
//	Word: <sense_key> Values: <word>_<count> [<word>_<count>...] [SUMOterm: ...]
//
// Tokens without an underscore are ignored. A count that is not an integer
// is recorded as an anomaly and the token is dropped.
func ReadFrequencies(reg *grammar.Registry, idx *index.Index, path string, maxIssues int) (*source.Stats, error) {
	g := reg.Lookup(grammar.FrequencyLine)
	stats := source.NewStats(maxIssues)

	err := source.EachLine(path, func(n int, raw string) error {
		line := strings.TrimSpace(raw)
		if line == "" {
			stats.Skipped++
			return nil
		}
		m := g.Match(line)
		if !m.OK() {
			stats.Unparsed(n, line, fmt.Sprintf("no frequency grammar matched (%s)", m.Status()))
			return nil
		}

		key := m.Group(1)
		for _, tok := range strings.Split(m.Group(2), " ") {
			if tok == stopToken {
				break
			}
			i := strings.LastIndexByte(tok, '_')
			if i < 0 {
				continue
			}
			count, err := strconv.Atoi(tok[i+1:])
			if err != nil {
				stats.Anomaly(n, source.IssueAnomaly, fmt.Sprintf("%s: bad count in %q", key, tok))
				continue
			}
			idx.AddFrequency(key, tok[:i], count)
		}
		stats.Parsed++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("read word frequencies: %w", err)
	}
	return stats, nil
}

// ReadStopwords appends every line of path to the stopword list as-is.
func ReadStopwords(idx *index.Index, path string, maxIssues int) (*source.Stats, error) {
	stats := source.NewStats(maxIssues)
	err := source.EachLine(path, func(_ int, line string) error {
		idx.AddStopword(line)
		stats.Parsed++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("read stopwords: %w", err)
	}
	return stats, nil
}
