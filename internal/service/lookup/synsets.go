package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
)

// Synsets resolves word to the synsets it belongs to. A zero pos searches
// every part of speech. Per part of speech the word is tried as given, then
// lower-cased, then through the exception table. Returns domain.ErrNotFound
// when nothing matches.
func (s *Service) Synsets(ctx context.Context, word string, pos domain.POS) ([]Hit, error) {
	w := normalize(word)
	if w == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	poses := domain.AllPOS
	if pos != 0 {
		if !pos.IsValid() {
			return nil, domain.NewValidationError("pos", "unknown part of speech")
		}
		poses = []domain.POS{pos}
	}

	key := cacheKey(pos, w)
	if hits, ok := s.cache.Get(key); ok {
		return cloneHits(hits)
	}

	idx := s.index()
	var hits []Hit
	for _, p := range poses {
		hits = append(hits, resolveWord(idx, p, w)...)
	}
	s.cache.Add(key, hits)

	s.log.DebugContext(ctx, "word resolved",
		slog.String("word", w),
		slog.Int("hits", len(hits)),
	)
	return cloneHits(hits)
}

func resolveWord(idx *index.Index, pos domain.POS, w string) []Hit {
	if hits := wordHits(idx, pos, w, MatchExact); len(hits) > 0 {
		return hits
	}
	folded := fold(w)
	if folded != w {
		if hits := wordHits(idx, pos, folded, MatchFolded); len(hits) > 0 {
			return hits
		}
	}
	if base, ok := idx.ExceptionBase(pos, folded); ok {
		return wordHits(idx, pos, base, MatchException)
	}
	return nil
}

func wordHits(idx *index.Index, pos domain.POS, w string, m Match) []Hit {
	offsets := idx.WordSynsets(pos, w)
	if len(offsets) == 0 {
		return nil
	}
	hits := make([]Hit, 0, len(offsets))
	for _, off := range offsets {
		hits = append(hits, Hit{ID: domain.NewSynsetID(pos, off), POS: pos.String(), Word: w, Match: m})
	}
	return hits
}

func cacheKey(pos domain.POS, w string) string {
	if pos == 0 {
		return "*|" + w
	}
	return pos.Digit() + "|" + w
}

// cloneHits copies cached hits so callers cannot alter the cache, and maps an
// empty result to domain.ErrNotFound.
func cloneHits(hits []Hit) ([]Hit, error) {
	if len(hits) == 0 {
		return nil, domain.ErrNotFound
	}
	out := make([]Hit, len(hits))
	copy(out, hits)
	return out, nil
}

// Describe returns everything known about the synset with the given
// POS-prefixed id.
func (s *Service) Describe(ctx context.Context, id string) (*SynsetView, error) {
	sid, err := domain.ParseSynsetID(id)
	if err != nil {
		return nil, err
	}

	idx := s.index()
	gloss, ok := idx.GlossByID(sid)
	if !ok {
		return nil, fmt.Errorf("synset %s: %w", sid, domain.ErrNotFound)
	}

	view := &SynsetView{
		ID:        sid,
		POS:       sid.POS().String(),
		Gloss:     gloss,
		Words:     idx.SynsetWords(sid),
		Relations: []RelationView{},
	}
	if c, ok := idx.Concept(sid.POS(), sid.Offset()); ok {
		view.Concept = c
	}
	for _, rel := range idx.Relations(sid) {
		_, resolved := idx.GlossByID(rel.Target)
		view.Relations = append(view.Relations, RelationView{Type: rel.Type, Target: rel.Target, Resolved: resolved})
	}

	if sid.POS() == domain.POSVerb {
		view.Frames = idx.Frames(sid.Offset())
		for _, w := range view.Words {
			if frames := idx.WordFrames(sid.Offset(), w); len(frames) > 0 {
				if view.WordFrames == nil {
					view.WordFrames = make(map[string][]string)
				}
				view.WordFrames[w] = frames
			}
		}
	}

	s.log.DebugContext(ctx, "synset described", slog.String("id", string(sid)))
	return view, nil
}
