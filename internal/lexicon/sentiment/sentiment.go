// Package sentiment reads the subjectivity lexicon loaded after the main
// tables.
package sentiment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
)

const minFields = 5

// Read loads the sentiment CSV at path into idx. Columns:
//
//	type,word,pos,stemmed,polarity
//
// A later row for the same word replaces the earlier one. An optional header
// row whose first cell is "type" is skipped.
func Read(idx *index.Index, path string, maxIssues int) (*source.Stats, error) {
	stats := source.NewStats(maxIssues)

	f, err := source.Open(path)
	if err != nil {
		return stats, fmt.Errorf("read sentiment: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may carry trailing columns
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				stats.Unparsed(perr.Line, "", perr.Err.Error())
				continue
			}
			return stats, fmt.Errorf("read sentiment: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) < minFields {
			stats.Unparsed(line, strings.Join(record, ","), fmt.Sprintf("expected %d columns, got %d", minFields, len(record)))
			continue
		}
		if strings.EqualFold(record[0], "type") {
			stats.Skipped++
			continue
		}

		word := strings.TrimSpace(record[1])
		if word == "" {
			stats.Anomaly(line, source.IssueAnomaly, "empty word")
			continue
		}
		idx.SetSentiment(word, index.Sentiment{
			Type:     strings.TrimSpace(record[0]),
			POS:      strings.TrimSpace(record[2]),
			Stemmed:  strings.TrimSpace(record[3]),
			Polarity: strings.TrimSpace(record[4]),
		})
		stats.Parsed++
	}
	return stats, nil
}
