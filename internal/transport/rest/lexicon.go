package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lexdb/internal/app/loader"
	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/service/lookup"
)

type lookupService interface {
	Synsets(ctx context.Context, word string, pos domain.POS) ([]lookup.Hit, error)
	Describe(ctx context.Context, id string) (*lookup.SynsetView, error)
	Senses(ctx context.Context, word string) ([]lookup.SenseView, error)
	Concept(ctx context.Context, term string) (*lookup.ConceptView, error)
	BaseForm(ctx context.Context, pos domain.POS, form string) (string, error)
	InflectedForms(ctx context.Context, pos domain.POS, base string) []string
	MultiWords(ctx context.Context, head string) []string
	IsStopword(ctx context.Context, w string) bool
	Report() loader.Report
}

// LexiconHandler serves the read-only lexicon endpoints.
type LexiconHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLexiconHandler creates a LexiconHandler.
func NewLexiconHandler(svc lookupService, logger *slog.Logger) *LexiconHandler {
	return &LexiconHandler{
		svc: svc,
		log: logger.With("handler", "lexicon"),
	}
}

// Synset describes one synset.
// GET /api/v1/synsets/{id}
func (h *LexiconHandler) Synset(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Describe(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// WordResponse is the JSON response for a word query.
type WordResponse struct {
	Word       string       `json:"word"`
	Stopword   bool         `json:"stopword"`
	Synsets    []lookup.Hit `json:"synsets"`
	MultiWords []string     `json:"multiwords"`
}

// Word resolves a word to its synsets.
// GET /api/v1/words/{word}?pos=noun
func (h *LexiconHandler) Word(w http.ResponseWriter, r *http.Request) {
	var pos domain.POS
	if v := r.URL.Query().Get("pos"); v != "" {
		p, err := domain.ParsePOS(v)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		pos = p
	}

	word := r.PathValue("word")
	hits, err := h.svc.Synsets(r.Context(), word, pos)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, WordResponse{
		Word:       word,
		Stopword:   h.svc.IsStopword(r.Context(), word),
		Synsets:    hits,
		MultiWords: h.svc.MultiWords(r.Context(), word),
	})
}

// WordSenses lists the senses of a word.
// GET /api/v1/words/{word}/senses
func (h *LexiconHandler) WordSenses(w http.ResponseWriter, r *http.Request) {
	senses, err := h.svc.Senses(r.Context(), r.PathValue("word"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, senses)
}

// Concept lists the synsets mapped to a concept term.
// GET /api/v1/concepts/{term}
func (h *LexiconHandler) Concept(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Concept(r.Context(), r.PathValue("term"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ExceptionResponse is the JSON response for an irregular form.
type ExceptionResponse struct {
	POS   string   `json:"pos"`
	Form  string   `json:"form"`
	Base  string   `json:"base"`
	Forms []string `json:"forms"`
}

// Exception returns the base form of an irregular form and every irregular
// form listed for that base.
// GET /api/v1/exceptions/{pos}/{form}
func (h *LexiconHandler) Exception(w http.ResponseWriter, r *http.Request) {
	pos, err := domain.ParsePOS(r.PathValue("pos"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	form := r.PathValue("form")
	base, err := h.svc.BaseForm(r.Context(), pos, form)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ExceptionResponse{
		POS:   pos.String(),
		Form:  form,
		Base:  base,
		Forms: h.svc.InflectedForms(r.Context(), pos, base),
	})
}

// MultiWords lists the phrases that start with a head word.
// GET /api/v1/multiwords/{head}
func (h *LexiconHandler) MultiWords(w http.ResponseWriter, r *http.Request) {
	head := r.PathValue("head")
	writeJSON(w, http.StatusOK, map[string]any{
		"head":    head,
		"phrases": h.svc.MultiWords(r.Context(), head),
	})
}

// Report returns the per-file report of the load behind the served index.
// GET /api/v1/report
func (h *LexiconHandler) Report(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Report())
}

func (h *LexiconHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
