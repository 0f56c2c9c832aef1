// Package lexicon writes a loaded index to PostgreSQL as a relational dump
// for downstream SQL tools.
package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lexdb/internal/adapter/postgres"
	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
)

// Table names of the export schema.
const (
	tableSynsets     = "lex_synsets"
	tableSynsetWords = "lex_synset_words"
	tableRelations   = "lex_relations"
	tableSenses      = "lex_senses"
	tableExceptions  = "lex_exceptions"
	tableVerbFrames  = "lex_verb_frames"
	tableExportRuns  = "lex_export_runs"
)

// dataTables lists the tables an export replaces, parents first.
var dataTables = []string{
	tableSynsets, tableSynsetWords, tableRelations,
	tableSenses, tableExceptions, tableVerbFrames,
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Counts holds the row count of every exported table.
type Counts struct {
	Synsets     int64 `json:"synsets"`
	SynsetWords int64 `json:"synset_words"`
	Relations   int64 `json:"relations"`
	Senses      int64 `json:"senses"`
	Exceptions  int64 `json:"exceptions"`
	VerbFrames  int64 `json:"verb_frames"`
}

// Run is one row of lex_export_runs.
type Run struct {
	ID         uuid.UUID `json:"id"`
	LoadRunID  uuid.UUID `json:"load_run_id"`
	Counts     Counts    `json:"counts"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Exporter replaces the export tables with the contents of an index.
type Exporter struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
	log  *slog.Logger
}

// NewExporter creates an Exporter.
func NewExporter(pool *pgxpool.Pool, logger *slog.Logger) *Exporter {
	return &Exporter{
		pool: pool,
		tx:   postgres.NewTxManager(pool).WithOptions(pgx.TxOptions{IsoLevel: pgx.Serializable}),
		log:  logger.With("adapter", "lexicon_export"),
	}
}

// Export truncates the export tables and reloads them from idx inside one
// transaction, then records the run. loadRunID ties the export to the load
// report that produced idx.
func (e *Exporter) Export(ctx context.Context, idx *index.Index, loadRunID uuid.UUID) (Run, error) {
	run := Run{ID: uuid.New(), LoadRunID: loadRunID, StartedAt: time.Now().UTC()}

	err := e.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, e.pool)

		if _, err := q.Exec(ctx, "TRUNCATE "+joinTables(dataTables)); err != nil {
			return postgres.MapError(err, "truncate", joinTables(dataTables))
		}

		rows := collectRows(idx)
		for _, c := range []struct {
			table   string
			columns []string
			rows    [][]any
			count   *int64
		}{
			{tableSynsets, []string{"id", "pos", "synset_offset", "gloss", "concept"}, rows.synsets, &run.Counts.Synsets},
			{tableSynsetWords, []string{"synset_id", "position", "word"}, rows.words, &run.Counts.SynsetWords},
			{tableRelations, []string{"source_id", "position", "relation", "target_id"}, rows.relations, &run.Counts.Relations},
			{tableSenses, []string{"sense_key", "word", "pos", "sense_number", "synset_offset"}, rows.senses, &run.Counts.Senses},
			{tableExceptions, []string{"pos", "form", "base"}, rows.exceptions, &run.Counts.Exceptions},
			{tableVerbFrames, []string{"synset_offset", "word", "position", "frame"}, rows.frames, &run.Counts.VerbFrames},
		} {
			n, err := q.CopyFrom(ctx, pgx.Identifier{c.table}, c.columns, pgx.CopyFromRows(c.rows))
			if err != nil {
				return postgres.MapError(err, c.table, "copy")
			}
			*c.count = n
		}

		run.FinishedAt = time.Now().UTC()
		return insertRun(ctx, q, run)
	})
	if err != nil {
		return Run{}, fmt.Errorf("export lexicon: %w", err)
	}

	e.log.InfoContext(ctx, "lexicon exported",
		slog.String("export_id", run.ID.String()),
		slog.String("load_run_id", loadRunID.String()),
		slog.Int64("synsets", run.Counts.Synsets),
		slog.Int64("relations", run.Counts.Relations),
		slog.Int64("senses", run.Counts.Senses),
		slog.Duration("duration", run.FinishedAt.Sub(run.StartedAt)),
	)
	return run, nil
}

func insertRun(ctx context.Context, q postgres.Querier, run Run) error {
	query, args, err := psql.Insert(tableExportRuns).
		Columns("id", "load_run_id", "synsets", "synset_words", "relations",
			"senses", "exceptions", "verb_frames", "started_at", "finished_at").
		Values(run.ID, run.LoadRunID, run.Counts.Synsets, run.Counts.SynsetWords, run.Counts.Relations,
			run.Counts.Senses, run.Counts.Exceptions, run.Counts.VerbFrames, run.StartedAt, run.FinishedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert run: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "lex_export_run", run.ID.String())
	}
	return nil
}

// exportRows holds the COPY rows of every table.
type exportRows struct {
	synsets    [][]any
	words      [][]any
	relations  [][]any
	senses     [][]any
	exceptions [][]any
	frames     [][]any
}

func collectRows(idx *index.Index) exportRows {
	var r exportRows

	for id, gloss := range idx.Synsets {
		var concept *string
		if c, ok := idx.Concept(id.POS(), id.Offset()); ok {
			concept = &c
		}
		r.synsets = append(r.synsets, []any{string(id), id.POS().String(), id.Offset(), gloss, concept})

		for i, w := range idx.SynsetWords(id) {
			r.words = append(r.words, []any{string(id), int32(i), w})
		}
		for i, rel := range idx.Relations(id) {
			r.relations = append(r.relations, []any{string(id), int32(i), rel.Type, string(rel.Target)})
		}
	}

	for key, offset := range idx.SenseKeys {
		sk, err := domain.ParseSenseKey(key)
		if err != nil {
			continue
		}
		r.senses = append(r.senses, []any{key, sk.Word, sk.POS.String(), sk.Number, offset})
	}

	for _, pos := range domain.AllPOS {
		idx.Exceptions(pos, func(form, base string) bool {
			r.exceptions = append(r.exceptions, []any{pos.String(), form, base})
			return true
		})
	}

	for key, frames := range idx.FrameBindings {
		for i, f := range frames {
			r.frames = append(r.frames, []any{key.Offset, key.Word, int32(i), f})
		}
	}
	return r
}

func joinTables(tables []string) string {
	return strings.Join(tables, ", ")
}

// Counts reads back the row count of every export table.
func (e *Exporter) Counts(ctx context.Context) (Counts, error) {
	q := postgres.QuerierFromCtx(ctx, e.pool)

	var c Counts
	for _, t := range []struct {
		table string
		dst   *int64
	}{
		{tableSynsets, &c.Synsets},
		{tableSynsetWords, &c.SynsetWords},
		{tableRelations, &c.Relations},
		{tableSenses, &c.Senses},
		{tableExceptions, &c.Exceptions},
		{tableVerbFrames, &c.VerbFrames},
	} {
		query, args, err := psql.Select("count(*)").From(t.table).ToSql()
		if err != nil {
			return Counts{}, fmt.Errorf("build count %s: %w", t.table, err)
		}
		if err := q.QueryRow(ctx, query, args...).Scan(t.dst); err != nil {
			return Counts{}, postgres.MapError(err, t.table, "count")
		}
	}
	return c, nil
}

// LastRun returns the most recent export run. Returns domain.ErrNotFound
// when nothing has been exported yet.
func (e *Exporter) LastRun(ctx context.Context) (Run, error) {
	q := postgres.QuerierFromCtx(ctx, e.pool)

	query, args, err := psql.Select("id", "load_run_id", "synsets", "synset_words", "relations",
		"senses", "exceptions", "verb_frames", "started_at", "finished_at").
		From(tableExportRuns).
		OrderBy("finished_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return Run{}, fmt.Errorf("build last run: %w", err)
	}

	var r Run
	err = q.QueryRow(ctx, query, args...).Scan(
		&r.ID, &r.LoadRunID,
		&r.Counts.Synsets, &r.Counts.SynsetWords, &r.Counts.Relations,
		&r.Counts.Senses, &r.Counts.Exceptions, &r.Counts.VerbFrames,
		&r.StartedAt, &r.FinishedAt,
	)
	if err != nil {
		return Run{}, postgres.MapError(err, "lex_export_run", "latest")
	}
	return r, nil
}

// Synset reads one exported synset row back, for spot checks.
func (e *Exporter) Synset(ctx context.Context, id domain.SynsetID) (gloss string, concept *string, err error) {
	q := postgres.QuerierFromCtx(ctx, e.pool)

	query, args, err := psql.Select("gloss", "concept").
		From(tableSynsets).
		Where(sq.Eq{"id": string(id)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build synset: %w", err)
	}
	if err := q.QueryRow(ctx, query, args...).Scan(&gloss, &concept); err != nil {
		return "", nil, postgres.MapError(err, "lex_synset", string(id))
	}
	return gloss, concept, nil
}
