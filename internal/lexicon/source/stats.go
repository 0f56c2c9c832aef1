package source

import "fmt"

// IssueKind classifies a problem found while reading a file.
type IssueKind string

const (
	// IssueUnparsed is a line no grammar accepted.
	IssueUnparsed IssueKind = "unparsed"
	// IssueAnomaly is a line that parsed but carried an inconsistent field.
	IssueAnomaly IssueKind = "anomaly"
	// IssueBounds is a verb-frame word number outside the synset's members.
	IssueBounds IssueKind = "bounds"
)

// Issue is one recorded problem.
type Issue struct {
	Line    int       `json:"line"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
	Text    string    `json:"text,omitempty"`
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s: %s", i.Line, i.Kind, i.Message)
}

// maxIssueText caps the offending line kept in an Issue.
const maxIssueText = 160

// Stats counts the outcome of reading one file. Only the first MaxIssues
// issues are kept; Dropped counts the rest.
type Stats struct {
	Parsed    int     `json:"parsed"`
	Skipped   int     `json:"skipped"`
	Failed    int     `json:"failed"`
	Anomalies int     `json:"anomalies"`
	Dropped   int     `json:"dropped_issues,omitempty"`
	Issues    []Issue `json:"issues,omitempty"`

	maxIssues int
}

// NewStats creates a Stats that keeps up to maxIssues issues.
// A non-positive maxIssues keeps none.
func NewStats(maxIssues int) *Stats {
	return &Stats{maxIssues: maxIssues}
}

// Unparsed records a line that no grammar accepted.
func (s *Stats) Unparsed(line int, text, msg string) {
	s.Failed++
	s.add(Issue{Line: line, Kind: IssueUnparsed, Message: msg, Text: text})
}

// Anomaly records a field-level problem in an otherwise parsed line.
func (s *Stats) Anomaly(line int, kind IssueKind, msg string) {
	s.Anomalies++
	s.add(Issue{Line: line, Kind: kind, Message: msg})
}

// HasIssues reports whether anything went wrong.
func (s *Stats) HasIssues() bool {
	return s.Failed > 0 || s.Anomalies > 0
}

func (s *Stats) add(i Issue) {
	if len(s.Issues) >= s.maxIssues {
		s.Dropped++
		return
	}
	if len(i.Text) > maxIssueText {
		i.Text = i.Text[:maxIssueText]
	}
	s.Issues = append(s.Issues, i)
}
