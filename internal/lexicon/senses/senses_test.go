package senses

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/heartmarshall/lexdb/internal/lexicon/grammar"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
)

const fixture = `dog%1:05:00:: 02084071 1 42
dog%1:18:01:: 10114209 3 0
dog%2:38:00:: 02005948 1 4
table_tennis%1:04:00:: 00482298 1 0
able%5:00:00:competent:00 00006000 2 0
broken line without key

cat%9:05:00:: 02121620 1 18
`

func read(t *testing.T) (*index.Index, int, int, int) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "index.sense")
	if err := os.WriteFile(p, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	idx := index.New()
	stats, err := Read(grammar.Default(slog.New(slog.NewTextHandler(io.Discard, nil))), idx, p, 10)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return idx, stats.Parsed, stats.Failed, stats.Anomalies
}

func TestRead_KeysAndOrder(t *testing.T) {
	t.Parallel()

	idx, parsed, failed, anomalies := read(t)
	if parsed != 5 || failed != 1 || anomalies != 1 {
		t.Errorf("parsed/failed/anomalies = %d/%d/%d, want 5/1/1", parsed, failed, anomalies)
	}

	want := []string{"dog_NN_1", "dog_NN_3", "dog_VB_1"}
	if got := idx.WordSenses("dog"); !slices.Equal(got, want) {
		t.Errorf("WordSenses(dog) = %v, want %v", got, want)
	}

	tests := []struct {
		key    string
		offset string
	}{
		{key: "dog_NN_1", offset: "02084071"},
		{key: "dog_VB_1", offset: "02005948"},
		{key: "table_tennis_NN_1", offset: "00482298"},
		{key: "able_JJ_2", offset: "00006000"},
	}
	for _, tt := range tests {
		got, ok := idx.SenseOffset(tt.key)
		if !ok || got != tt.offset {
			t.Errorf("SenseOffset(%s) = (%q, %v), want %q", tt.key, got, ok, tt.offset)
		}
	}

	if _, ok := idx.SenseOffset("cat_NN_1"); ok {
		t.Error("unknown synset type must not produce a sense")
	}
}

func TestRead_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Read(grammar.Default(slog.New(slog.NewTextHandler(io.Discard, nil))), index.New(), filepath.Join(t.TempDir(), "index.sense"), 10)
	if err == nil {
		t.Fatal("expected error")
	}
}
