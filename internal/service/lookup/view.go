package lookup

import "github.com/heartmarshall/lexdb/internal/domain"

// Match says how a word query reached its synsets.
type Match string

const (
	MatchExact     Match = "exact"
	MatchFolded    Match = "folded"
	MatchException Match = "exception"
)

// Hit is one synset a word query resolved to.
type Hit struct {
	ID    domain.SynsetID `json:"id"`
	POS   string          `json:"pos"`
	Word  string          `json:"word"`
	Match Match           `json:"match"`
}

// SynsetView is everything the index knows about one synset.
type SynsetView struct {
	ID         domain.SynsetID     `json:"id"`
	POS        string              `json:"pos"`
	Gloss      string              `json:"gloss"`
	Words      []string            `json:"words"`
	Concept    string              `json:"concept,omitempty"`
	Relations  []RelationView      `json:"relations"`
	Frames     []string            `json:"frames,omitempty"`
	WordFrames map[string][]string `json:"word_frames,omitempty"`
}

// RelationView is an outgoing edge. Resolved is false when the target
// synset was not loaded.
type RelationView struct {
	Type     string          `json:"type"`
	Target   domain.SynsetID `json:"target"`
	Resolved bool            `json:"resolved"`
}

// SenseView is one entry of a word's sense list.
type SenseView struct {
	Key         string          `json:"key"`
	Number      string          `json:"number"`
	SynsetID    domain.SynsetID `json:"synset_id"`
	Frequencies map[string]int  `json:"frequencies,omitempty"`
}

// ConceptView lists the synsets mapped to one concept term.
type ConceptView struct {
	Term    string            `json:"term"`
	Synsets []domain.SynsetID `json:"synsets"`
}
