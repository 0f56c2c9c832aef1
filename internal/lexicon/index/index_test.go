package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexdb/internal/domain"
)

func TestAddMember_OrderDedupAndMultiWords(t *testing.T) {
	t.Parallel()

	x := New()
	a := domain.NewSynsetID(domain.POSNoun, "00001740")
	b := domain.NewSynsetID(domain.POSNoun, "00002000")

	assert.Equal(t, 1, x.AddMember(a, "entity"))
	assert.Equal(t, 2, x.AddMember(a, "table_tennis"))
	x.AddMember(b, "entity")
	x.AddMember(a, "entity")

	assert.Equal(t, []string{"entity", "table_tennis", "entity"}, x.SynsetWords(a))
	assert.Equal(t, []string{"00001740", "00002000"}, x.WordSynsets(domain.POSNoun, "entity"))
	assert.Empty(t, x.WordSynsets(domain.POSVerb, "entity"))
	assert.Equal(t, []string{"table_tennis"}, x.MultiWords("table"))
}

func TestSetConcept_ForwardAndReverse(t *testing.T) {
	t.Parallel()

	x := New()
	a := domain.NewSynsetID(domain.POSNoun, "00001740")
	b := domain.NewSynsetID(domain.POSNoun, "00002137")
	x.SetConcept(a, "&%Entity=")
	x.SetConcept(b, "&%Entity+")

	got, ok := x.Concept(domain.POSNoun, "00001740")
	require.True(t, ok)
	assert.Equal(t, "&%Entity=", got)

	assert.Equal(t, []domain.SynsetID{a}, x.SynsetsForConcept("&%Entity="))
	assert.Equal(t, []domain.SynsetID{a, b}, x.SynsetsForTerm("Entity"))
	assert.Empty(t, x.SynsetsForConcept("Entity"))
}

func TestExceptions_ForwardReverse(t *testing.T) {
	t.Parallel()

	x := New()
	x.AddException(domain.POSNoun, "geese", "goose")
	x.AddException(domain.POSVerb, "ridden", "ride")
	x.AddExceptionForm(domain.POSVerb, "rid", "ridden")

	base, ok := x.ExceptionBase(domain.POSNoun, "geese")
	require.True(t, ok)
	assert.Equal(t, "goose", base)
	assert.Equal(t, []string{"geese"}, x.ExceptionForms(domain.POSNoun, "goose"))
	assert.Equal(t, []string{"ridden"}, x.ExceptionForms(domain.POSVerb, "rid"))

	_, ok = x.ExceptionBase(domain.POSVerb, "geese")
	assert.False(t, ok)
}

func TestAddSense_PreservesOrder(t *testing.T) {
	t.Parallel()

	x := New()
	x.AddSense(domain.SenseKey{Word: "dog", POS: domain.POSNoun, Number: "1"}, "02084071")
	x.AddSense(domain.SenseKey{Word: "dog", POS: domain.POSVerb, Number: "1"}, "02005948")
	x.AddSense(domain.SenseKey{Word: "dog", POS: domain.POSNoun, Number: "2"}, "10114209")

	assert.Equal(t, []string{"dog_NN_1", "dog_VB_1", "dog_NN_2"}, x.WordSenses("dog"))
	off, ok := x.SenseOffset("dog_VB_1")
	require.True(t, ok)
	assert.Equal(t, "02005948", off)
}

func TestFrames_DistinctKeys(t *testing.T) {
	t.Parallel()

	x := New()
	x.BindFrame(FrameKey{Offset: "00001740"}, "02")
	x.BindFrame(FrameKey{Offset: "00001740", Word: "breathe"}, "02")

	assert.Equal(t, []string{"02"}, x.Frames("00001740"))
	assert.Equal(t, []string{"02"}, x.WordFrames("00001740", "breathe"))

	var keys []FrameKey
	for k := range x.FrameBindings {
		keys = append(keys, k)
	}
	assert.Equal(t, []FrameKey{{Offset: "00001740"}, {Offset: "00001740", Word: "breathe"}}, keys)
}

func TestReadsReturnCopies(t *testing.T) {
	t.Parallel()

	x := New()
	id := domain.NewSynsetID(domain.POSNoun, "00001740")
	x.AddMember(id, "entity")
	x.AddFrequency("entity_NN_1", "thing", 3)

	words := x.SynsetWords(id)
	words[0] = "mutated"
	assert.Equal(t, []string{"entity"}, x.SynsetWords(id))

	freq := x.Frequencies("entity_NN_1")
	freq["thing"] = 99
	assert.Equal(t, 3, x.Frequencies("entity_NN_1")["thing"])
	assert.Nil(t, x.Frequencies("missing"))
}

func TestStopwordsAndSentiment(t *testing.T) {
	t.Parallel()

	x := New()
	x.AddStopword("a")
	x.AddStopword("the")
	x.SetSentiment("abandon", Sentiment{Type: "weaksubj", POS: "verb", Stemmed: "y", Polarity: "negative"})

	assert.Equal(t, []string{"a", "the"}, x.Stopwords())
	assert.True(t, x.IsStopword("the"))
	assert.False(t, x.IsStopword("cat"))

	s, ok := x.Sentiment("abandon")
	require.True(t, ok)
	assert.Equal(t, "negative", s.Polarity)
}

func TestStats(t *testing.T) {
	t.Parallel()

	x := New()
	n := domain.NewSynsetID(domain.POSNoun, "00001740")
	v := domain.NewSynsetID(domain.POSVerb, "00001740")
	x.SetGloss(n, "that which exists")
	x.SetGloss(v, "draw air")
	x.AddMember(n, "entity")
	x.AddRelation(domain.Relation{Type: "hypernym", Source: n, Target: v})
	x.AddException(domain.POSNoun, "geese", "goose")

	s := x.Stats()
	assert.Equal(t, 1, s.Synsets["noun"])
	assert.Equal(t, 1, s.Synsets["verb"])
	assert.Equal(t, 1, s.Words["noun"])
	assert.Equal(t, 1, s.Relations)
	assert.Equal(t, 1, s.Exceptions["noun"])

	var ids []domain.SynsetID
	for id := range x.Synsets {
		ids = append(ids, id)
	}
	assert.Equal(t, []domain.SynsetID{n, v}, ids)
}
