package loader

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
)

// FileReport holds the outcome of reading one resource file.
type FileReport struct {
	Phase    Phase         `json:"phase"`
	Key      source.Key    `json:"key"`
	Path     string        `json:"path,omitempty"`
	Stats    source.Stats  `json:"stats"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`

	Err error `json:"-"`
}

// Missing reports whether the file could not be located.
func (f FileReport) Missing() bool {
	return errors.Is(f.Err, domain.ErrResourceNotFound)
}

// Report is the structured outcome of a load.
type Report struct {
	RunID     uuid.UUID     `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Files     []FileReport  `json:"files"`

	// Complete is true when every resource file was located and read.
	Complete bool `json:"complete"`

	// UnusableGrammars lists grammars that failed to compile.
	UnusableGrammars []string `json:"unusable_grammars,omitempty"`

	Index index.Stats `json:"index"`
}

// HasErrors returns true if any file failed or recorded problems, or if a
// grammar was unusable.
func (r Report) HasErrors() bool {
	if len(r.UnusableGrammars) > 0 {
		return true
	}
	for _, f := range r.Files {
		if f.Err != nil || f.Stats.HasIssues() {
			return true
		}
	}
	return false
}

// File returns the report of the file read for key.
func (r Report) File(key source.Key) (FileReport, bool) {
	for _, f := range r.Files {
		if f.Key == key {
			return f, true
		}
	}
	return FileReport{}, false
}

// Totals sums the per-file counters.
func (r Report) Totals() source.Stats {
	var t source.Stats
	for _, f := range r.Files {
		t.Parsed += f.Stats.Parsed
		t.Skipped += f.Stats.Skipped
		t.Failed += f.Stats.Failed
		t.Anomalies += f.Stats.Anomalies
		t.Dropped += f.Stats.Dropped
	}
	return t
}
