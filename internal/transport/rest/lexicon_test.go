package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexdb/internal/app/loader"
	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/service/lookup"
)

type fixedIndex struct {
	idx    *index.Index
	report loader.Report
}

func (f fixedIndex) Get() (*index.Index, loader.Report) { return f.idx, f.report }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	idx := index.New()
	goose := domain.NewSynsetID(domain.POSNoun, "01855672")
	idx.SetGloss(goose, "web-footed long-necked migratory aquatic birds")
	idx.SetConcept(goose, "&%Goose+")
	idx.AddMember(goose, "goose")
	idx.AddMember(goose, "goose_egg")
	idx.AddException(domain.POSNoun, "geese", "goose")
	idx.AddSense(domain.SenseKey{Word: "goose", POS: domain.POSNoun, Number: "1"}, "01855672")
	idx.AddStopword("the")

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	report := loader.Report{RunID: uuid.New(), Complete: true}
	svc := lookup.NewService(log, fixedIndex{idx: idx, report: report}, 8)

	health := NewHealthHandler(&loadStateMock{loaded: true, report: report}, nil, "test")
	srv := httptest.NewServer(NewRouter(NewLexiconHandler(svc, log), health))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, v any) int {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestRouter_Synset(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	var view lookup.SynsetView
	code := getJSON(t, srv, "/api/v1/synsets/101855672", &view)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"goose", "goose_egg"}, view.Words)
	assert.Equal(t, "&%Goose+", view.Concept)

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/v1/synsets/abc", &errBody))
	assert.NotEmpty(t, errBody["error"])
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/api/v1/synsets/199999999", nil))
}

func TestRouter_Word(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	var resp WordResponse
	code := getJSON(t, srv, "/api/v1/words/geese?pos=n", &resp)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp.Synsets, 1)
	assert.Equal(t, lookup.MatchException, resp.Synsets[0].Match)
	assert.Equal(t, []string{}, resp.MultiWords)

	code = getJSON(t, srv, "/api/v1/words/goose", &resp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"goose_egg"}, resp.MultiWords)
	assert.False(t, resp.Stopword)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/v1/words/goose?pos=x", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/api/v1/words/unicorn", nil))
}

func TestRouter_SensesConceptsExceptions(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	var senses []lookup.SenseView
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/v1/words/goose/senses", &senses))
	require.Len(t, senses, 1)
	assert.Equal(t, domain.SynsetID("101855672"), senses[0].SynsetID)

	var concept lookup.ConceptView
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/v1/concepts/Goose", &concept))
	assert.Equal(t, []domain.SynsetID{"101855672"}, concept.Synsets)

	var exc ExceptionResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/v1/exceptions/noun/geese", &exc))
	assert.Equal(t, ExceptionResponse{POS: "noun", Form: "geese", Base: "goose", Forms: []string{"geese"}}, exc)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, srv, "/api/v1/exceptions/xyz/geese", nil))
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv, "/api/v1/exceptions/verb/geese", nil))
}

func TestRouter_MultiWordsAndReport(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	var mw map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/v1/multiwords/goose", &mw))
	assert.Equal(t, []any{"goose_egg"}, mw["phrases"])

	var rep map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, srv, "/api/v1/report", &rep))
	assert.Equal(t, true, rep["complete"])

	assert.Equal(t, http.StatusOK, getJSON(t, srv, "/ready", nil))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/api/v1/report", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
