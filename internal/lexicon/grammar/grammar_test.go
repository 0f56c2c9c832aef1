package grammar

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lexdb/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefault_AllUsable(t *testing.T) {
	t.Parallel()

	reg := Default(discardLogger())
	assert.Empty(t, reg.Unusable(), "fixed catalog must compile")
	for _, d := range Catalog() {
		assert.True(t, reg.Lookup(d.Name).Usable(), "grammar %s", d.Name)
	}
}

func TestCompile_BrokenGrammarIsUnusable(t *testing.T) {
	t.Parallel()

	reg := Compile(discardLogger(), []Definition{
		{Name: "ok", Expr: `^(a+)$`},
		{Name: "broken", Expr: `^(unclosed`},
	})

	broken := reg.Lookup("broken")
	require.False(t, broken.Usable())
	require.Error(t, broken.Err())

	m := broken.Match("anything")
	assert.Equal(t, Unusable, m.Status())
	assert.False(t, m.OK())

	m, rest := broken.Consume("anything")
	assert.Equal(t, Unusable, m.Status())
	assert.Equal(t, "anything", rest)

	require.Len(t, reg.Unusable(), 1)
	assert.Equal(t, Name("broken"), reg.Unusable()[0].Name())

	assert.True(t, reg.Lookup("ok").Match("aaa").OK())
}

func TestLookup_UnknownNameIsUnusable(t *testing.T) {
	t.Parallel()

	reg := Compile(discardLogger(), nil)
	g := reg.Lookup("missing")
	require.NotNil(t, g)
	assert.False(t, g.Usable())
	assert.Equal(t, Unusable, g.Match("x").Status())
}

func TestConsume_AdvancesPastMatch(t *testing.T) {
	t.Parallel()

	reg := Default(discardLogger())
	word := reg.Lookup(DecoderWord)

	m, rest := word.Consume("entity 0 003 @ 00001930 n 0000")
	require.True(t, m.OK())
	assert.Equal(t, "entity", m.Group(1))
	assert.Equal(t, "0", m.Group(2))
	assert.Equal(t, "003 @ 00001930 n 0000", rest)

	m, rest = word.Consume(rest)
	assert.Equal(t, NoMatch, m.Status())
	assert.Equal(t, "003 @ 00001930 n 0000", rest)
}

func TestConsume_DoesNotMatchMidText(t *testing.T) {
	t.Parallel()

	reg := Compile(discardLogger(), []Definition{{Name: "digits", Expr: `(\d+)`}})
	m, rest := reg.Lookup("digits").Consume("abc 123")
	assert.False(t, m.OK())
	assert.Equal(t, "abc 123", rest)
}

func TestMatch_GroupOutOfRange(t *testing.T) {
	t.Parallel()

	reg := Default(discardLogger())
	m := reg.Lookup(ExceptionPair).Match("geese goose")
	require.True(t, m.OK())
	assert.Equal(t, 2, m.Groups())
	assert.Equal(t, "geese", m.Group(1))
	assert.Equal(t, "goose", m.Group(2))
	assert.Equal(t, "", m.Group(0))
	assert.Equal(t, "", m.Group(3))
}

func TestSynsetGrammars(t *testing.T) {
	t.Parallel()

	reg := Default(discardLogger())

	withConcept := "00001740 03 n 01 entity 0 001 ~ 00001930 n 0000 | that which is perceived to have its own distinct existence &%Entity="
	plain := "00001740 03 n 01 entity 0 001 ~ 00001930 n 0000 | that which is perceived to have its own distinct existence"

	for _, pos := range domain.AllPOS {
		m := reg.Lookup(SynsetWithConcept(pos)).Match(withConcept)
		require.True(t, m.OK(), "%s concept grammar", pos)
		assert.Equal(t, "00001740", m.Group(1))
		assert.Equal(t, " 03 n 01 entity 0 001 ~ 00001930 n 0000 ", m.Group(2))
		assert.Equal(t, "that which is perceived to have its own distinct existence", m.Group(3))
		assert.Equal(t, "&%Entity=", m.Group(4))

		assert.False(t, reg.Lookup(SynsetWithConcept(pos)).Match(plain).OK(), "%s concept grammar on plain line", pos)

		m = reg.Lookup(SynsetPlain(pos)).Match(plain)
		require.True(t, m.OK(), "%s plain grammar", pos)
		assert.Equal(t, "that which is perceived to have its own distinct existence", m.Group(3))
	}
}

func TestSenseIndexGrammar(t *testing.T) {
	t.Parallel()

	reg := Default(discardLogger())
	m := reg.Lookup(SenseIndexLine).Match("dog%1:05:00:: 02084071 1 42")
	require.True(t, m.OK())
	assert.Equal(t, "dog", m.Group(1))
	assert.Equal(t, "1", m.Group(2))
	assert.Equal(t, "02084071", m.Group(3))
	assert.Equal(t, "1", m.Group(4))

	assert.False(t, reg.Lookup(SenseIndexLine).Match("dog 02084071 1").OK())
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "matched", Matched.String())
	assert.Equal(t, "no match", NoMatch.String())
	assert.Equal(t, "unusable", Unusable.String())
}
