// Package lookup answers read queries against a loaded lexical index.
package lookup

import (
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/lexdb/internal/app/loader"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
)

// DefaultCacheSize is used when a non-positive cache size is configured.
const DefaultCacheSize = 4096

type indexSource interface {
	Get() (*index.Index, loader.Report)
}

// Service implements word, synset, sense and concept lookups. The index is
// fetched from the source on every call, so the first query triggers the
// load when nothing has loaded it yet.
type Service struct {
	log   *slog.Logger
	src   indexSource
	cache *lru.Cache[string, []Hit]
}

// NewService creates a lookup service over src with an LRU cache of word
// query results.
func NewService(logger *slog.Logger, src indexSource, cacheSize int) *Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, _ := lru.New[string, []Hit](cacheSize)
	return &Service{
		log:   logger.With("service", "lookup"),
		src:   src,
		cache: cache,
	}
}

func (s *Service) index() *index.Index {
	idx, _ := s.src.Get()
	return idx
}

// Report returns the report of the load that built the served index.
func (s *Service) Report() loader.Report {
	_, rep := s.src.Get()
	return rep
}

// normalize trims the query, composes it to NFC and joins inner whitespace
// with underscores, which is how the synset files spell phrases.
func normalize(word string) string {
	w := norm.NFC.String(strings.TrimSpace(word))
	return strings.Join(strings.Fields(w), "_")
}

// fold lower-cases w. Casers keep state, so one is built per call.
func fold(w string) string {
	return cases.Lower(language.English).String(w)
}
