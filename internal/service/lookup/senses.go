package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/lexdb/internal/domain"
)

// Senses lists the sense keys of word in sense-index order, each with the
// synset it names and its co-occurrence counts.
func (s *Service) Senses(ctx context.Context, word string) ([]SenseView, error) {
	w := normalize(word)
	if w == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	idx := s.index()
	keys := idx.WordSenses(w)
	if len(keys) == 0 {
		keys = idx.WordSenses(fold(w))
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("senses of %q: %w", w, domain.ErrNotFound)
	}

	views := make([]SenseView, 0, len(keys))
	for _, k := range keys {
		sk, err := domain.ParseSenseKey(k)
		if err != nil {
			return nil, fmt.Errorf("sense key %q: %w", k, err)
		}
		offset, _ := idx.SenseOffset(k)
		views = append(views, SenseView{
			Key:         k,
			Number:      sk.Number,
			SynsetID:    domain.NewSynsetID(sk.POS, offset),
			Frequencies: idx.Frequencies(k),
		})
	}
	return views, nil
}

// Concept lists the synsets mapped to a concept term. A leading "&%" is
// accepted and ignored.
func (s *Service) Concept(ctx context.Context, term string) (*ConceptView, error) {
	t := strings.TrimPrefix(strings.TrimSpace(term), "&%")
	if t == "" {
		return nil, domain.NewValidationError("term", "required")
	}
	ids := s.index().SynsetsForTerm(t)
	if len(ids) == 0 {
		return nil, fmt.Errorf("concept %q: %w", t, domain.ErrNotFound)
	}
	return &ConceptView{Term: t, Synsets: ids}, nil
}

// BaseForm returns the base form the exception table lists for an
// irregular form.
func (s *Service) BaseForm(ctx context.Context, pos domain.POS, form string) (string, error) {
	if !pos.IsValid() {
		return "", domain.NewValidationError("pos", "unknown part of speech")
	}
	f := fold(normalize(form))
	if f == "" {
		return "", domain.NewValidationError("form", "required")
	}
	base, ok := s.index().ExceptionBase(pos, f)
	if !ok {
		return "", fmt.Errorf("exception %q: %w", f, domain.ErrNotFound)
	}
	return base, nil
}

// InflectedForms returns the irregular forms listed for base.
func (s *Service) InflectedForms(ctx context.Context, pos domain.POS, base string) []string {
	return s.index().ExceptionForms(pos, fold(normalize(base)))
}

// MultiWords returns the phrases starting with head. The result is empty,
// not nil, when there are none.
func (s *Service) MultiWords(ctx context.Context, head string) []string {
	h := normalize(head)
	idx := s.index()
	words := idx.MultiWords(h)
	if len(words) == 0 {
		words = idx.MultiWords(fold(h))
	}
	if words == nil {
		return []string{}
	}
	return words
}

// IsStopword reports whether w is on the stopword list.
func (s *Service) IsStopword(ctx context.Context, w string) bool {
	return s.index().IsStopword(strings.TrimSpace(w))
}
