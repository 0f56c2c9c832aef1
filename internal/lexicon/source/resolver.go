// Package source locates the lexicon resource files and streams their lines.
package source

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/heartmarshall/lexdb/internal/domain"
)

// Key is the logical name of a resource file.
type Key string

const (
	NounMappings     Key = "noun_mappings"
	VerbMappings     Key = "verb_mappings"
	AdjMappings      Key = "adj_mappings"
	AdvMappings      Key = "adv_mappings"
	NounExceptions   Key = "noun_exceptions"
	VerbExceptions   Key = "verb_exceptions"
	AdjExceptions    Key = "adj_exceptions"
	AdvExceptions    Key = "adv_exceptions"
	SenseIndex       Key = "sense_indexes"
	WordFrequencies  Key = "word_frequencies"
	Stopwords        Key = "stopwords"
	SentimentLexicon Key = "sentiment"
)

// filenamePatterns maps each key to the file name pattern it must match in
// full. Patterns are regular expressions over the base name.
var filenamePatterns = map[Key]string{
	NounMappings:     `WordNetMappings.*noun.*txt`,
	VerbMappings:     `WordNetMappings.*verb.*txt`,
	AdjMappings:      `WordNetMappings.*adj.*txt`,
	AdvMappings:      `WordNetMappings.*adv.*txt`,
	NounExceptions:   `noun.exc`,
	VerbExceptions:   `verb.exc`,
	AdjExceptions:    `adj.exc`,
	AdvExceptions:    `adv.exc`,
	SenseIndex:       `index.sense`,
	WordFrequencies:  `wordFrequencies.txt`,
	Stopwords:        `stopwords.txt`,
	SentimentLexicon: `sentiment.*\.csv`,
}

// MappingsKey returns the synset mapping file key for pos.
func MappingsKey(pos domain.POS) Key {
	switch pos {
	case domain.POSVerb:
		return VerbMappings
	case domain.POSAdjective:
		return AdjMappings
	case domain.POSAdverb:
		return AdvMappings
	}
	return NounMappings
}

// ExceptionsKey returns the exception list key for pos.
func ExceptionsKey(pos domain.POS) Key {
	switch pos {
	case domain.POSVerb:
		return VerbExceptions
	case domain.POSAdjective:
		return AdjExceptions
	case domain.POSAdverb:
		return AdvExceptions
	}
	return NounExceptions
}

// ErrNotFound is returned when no file matches a key.
var ErrNotFound = fmt.Errorf("resource file: %w", domain.ErrResourceNotFound)

// Resolver maps a logical key to a physical file path.
type Resolver interface {
	Resolve(key Key) (string, error)
}

// DirResolver selects files from a base directory by file name pattern,
// preferring the most recently modified match.
type DirResolver struct {
	dir      string
	patterns map[Key]*regexp.Regexp
}

// NewDirResolver creates a resolver over dir using the fixed file name
// patterns.
func NewDirResolver(dir string) *DirResolver {
	patterns := make(map[Key]*regexp.Regexp, len(filenamePatterns))
	for k, p := range filenamePatterns {
		patterns[k] = regexp.MustCompile(`^(?:` + p + `)$`)
	}
	return &DirResolver{dir: dir, patterns: patterns}
}

// Dir returns the base directory.
func (r *DirResolver) Dir() string { return r.dir }

// Resolve scans the base directory for the newest file matching key.
// Keys are compared case-insensitively.
func (r *DirResolver) Resolve(key Key) (string, error) {
	re, ok := r.patterns[Key(strings.ToLower(string(key)))]
	if !ok {
		return "", fmt.Errorf("resolve %s: unknown key: %w", key, ErrNotFound)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: read dir %s: %w: %w", key, r.dir, ErrNotFound, err)
	}

	var (
		best     string
		bestTime int64
	)
	for _, e := range entries {
		if e.IsDir() || !re.MatchString(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		mod := info.ModTime().UnixNano()
		if best == "" || mod > bestTime {
			best, bestTime = e.Name(), mod
		}
	}

	if best == "" {
		return "", fmt.Errorf("resolve %s in %s: %w", key, r.dir, ErrNotFound)
	}
	return r.dir + string(os.PathSeparator) + best, nil
}

// StaticResolver maps keys to explicit paths.
type StaticResolver map[Key]string

// Resolve returns the configured path for key.
func (r StaticResolver) Resolve(key Key) (string, error) {
	if p, ok := r[key]; ok && p != "" {
		return p, nil
	}
	return "", fmt.Errorf("resolve %s: %w", key, ErrNotFound)
}
