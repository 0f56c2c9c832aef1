// Package loader builds the lexical index from the resource files. It runs
// the readers in a fixed order; a failing file is logged and reported, and
// the remaining readers still run.
package loader

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexdb/internal/domain"
	"github.com/heartmarshall/lexdb/internal/lexicon/freq"
	"github.com/heartmarshall/lexdb/internal/lexicon/grammar"
	"github.com/heartmarshall/lexdb/internal/lexicon/index"
	"github.com/heartmarshall/lexdb/internal/lexicon/morph"
	"github.com/heartmarshall/lexdb/internal/lexicon/senses"
	"github.com/heartmarshall/lexdb/internal/lexicon/sentiment"
	"github.com/heartmarshall/lexdb/internal/lexicon/source"
	"github.com/heartmarshall/lexdb/internal/lexicon/wndb"
)

// Phase names one stage of a load.
type Phase string

const (
	PhaseNouns       Phase = "nouns"
	PhaseVerbs       Phase = "verbs"
	PhaseAdjectives  Phase = "adjectives"
	PhaseAdverbs     Phase = "adverbs"
	PhaseFrequencies Phase = "frequencies"
	PhaseStopwords   Phase = "stopwords"
	PhaseSenses      Phase = "senses"
	PhaseSentiment   Phase = "sentiment"
)

// posPhases maps each part of speech to its phase, in load order.
var posPhases = []struct {
	pos   domain.POS
	phase Phase
}{
	{domain.POSNoun, PhaseNouns},
	{domain.POSVerb, PhaseVerbs},
	{domain.POSAdjective, PhaseAdjectives},
	{domain.POSAdverb, PhaseAdverbs},
}

// step reads one resource file into the index.
type step struct {
	phase Phase
	key   source.Key
	read  func(path string) (*source.Stats, error)
}

// Loader orchestrates one load.
type Loader struct {
	log      *slog.Logger
	cfg      Config
	resolver source.Resolver
	registry *grammar.Registry
}

// Option customizes a Loader.
type Option func(*Loader)

// WithResolver replaces the directory resolver built from Config.BaseDir.
func WithResolver(r source.Resolver) Option {
	return func(l *Loader) { l.resolver = r }
}

// WithRegistry replaces the default grammar catalog.
func WithRegistry(reg *grammar.Registry) Option {
	return func(l *Loader) { l.registry = reg }
}

// New creates a Loader. Without a resolver option and with an empty
// cfg.BaseDir, the base directory is read from the environment
// (LEXICON_BASE_DIR).
func New(log *slog.Logger, cfg Config, opts ...Option) *Loader {
	l := &Loader{log: log, cfg: cfg}
	for _, opt := range opts {
		opt(l)
	}
	if l.resolver == nil {
		if l.cfg.BaseDir == "" {
			l.cfg.BaseDir = baseDirFromEnv(log)
		}
		l.resolver = source.NewDirResolver(l.cfg.BaseDir)
	}
	return l
}

func baseDirFromEnv(log *slog.Logger) string {
	envCfg, err := LoadConfig("")
	if err != nil {
		log.Warn("base directory not configured", slog.String("error", err.Error()))
		return ""
	}
	if envCfg.BaseDir == "" {
		log.Warn("base directory not configured; every resource will be missing")
	}
	return envCfg.BaseDir
}

// Load builds a fresh index. It never fails as a whole: problems are
// reported per file in the returned Report.
func (l *Loader) Load() (*index.Index, Report) {
	report := Report{RunID: uuid.New(), StartedAt: time.Now(), Complete: true}
	log := l.log.With(slog.String("run_id", report.RunID.String()))

	reg := l.registry
	if reg == nil {
		reg = grammar.Default(log)
	}
	for _, g := range reg.Unusable() {
		report.UnusableGrammars = append(report.UnusableGrammars, string(g.Name()))
	}

	idx := index.New()
	for _, s := range l.steps(log, reg, idx) {
		fr := l.runStep(log, s)
		if fr.Err != nil {
			report.Complete = false
		}
		report.Files = append(report.Files, fr)
	}

	report.Duration = time.Since(report.StartedAt)
	report.Index = idx.Stats()

	totals := report.Totals()
	log.Info("lexicon loaded",
		slog.Bool("complete", report.Complete),
		slog.Int("files", len(report.Files)),
		slog.Int("parsed", totals.Parsed),
		slog.Int("failed", totals.Failed),
		slog.Int("anomalies", totals.Anomalies),
		slog.Duration("duration", report.Duration),
	)
	return idx, report
}

// steps lists the reads in their fixed order.
func (l *Loader) steps(log *slog.Logger, reg *grammar.Registry, idx *index.Index) []step {
	maxIssues := l.cfg.MaxIssuesPerFile

	var steps []step
	for _, p := range posPhases {
		pos := p.pos
		steps = append(steps,
			step{phase: p.phase, key: source.MappingsKey(pos), read: func(path string) (*source.Stats, error) {
				return wndb.ReadMappings(log, reg, idx, pos, path, maxIssues)
			}},
			step{phase: p.phase, key: source.ExceptionsKey(pos), read: func(path string) (*source.Stats, error) {
				return morph.ReadExceptions(reg, idx, pos, path, maxIssues)
			}},
		)
	}

	steps = append(steps,
		step{phase: PhaseFrequencies, key: source.WordFrequencies, read: func(path string) (*source.Stats, error) {
			return freq.ReadFrequencies(reg, idx, path, maxIssues)
		}},
		step{phase: PhaseStopwords, key: source.Stopwords, read: func(path string) (*source.Stats, error) {
			return freq.ReadStopwords(idx, path, maxIssues)
		}},
		step{phase: PhaseSenses, key: source.SenseIndex, read: func(path string) (*source.Stats, error) {
			return senses.Read(reg, idx, path, maxIssues)
		}},
	)

	if !l.cfg.SkipSentiment {
		steps = append(steps, step{phase: PhaseSentiment, key: source.SentimentLexicon, read: func(path string) (*source.Stats, error) {
			return sentiment.Read(idx, path, maxIssues)
		}})
	}
	return steps
}

func (l *Loader) runStep(log *slog.Logger, s step) FileReport {
	start := time.Now()
	fr := FileReport{Phase: s.phase, Key: s.key}

	path, err := l.resolver.Resolve(s.key)
	if err != nil {
		fr.Err, fr.Error = err, err.Error()
		fr.Duration = time.Since(start)
		log.Warn("resource not found",
			slog.String("phase", string(s.phase)),
			slog.String("key", string(s.key)),
			slog.String("error", err.Error()),
		)
		return fr
	}
	fr.Path = path

	stats, err := s.read(path)
	if stats != nil {
		fr.Stats = *stats
	}
	fr.Duration = time.Since(start)

	if err != nil {
		fr.Err, fr.Error = err, err.Error()
		log.Warn("file failed",
			slog.String("phase", string(s.phase)),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Duration("duration", fr.Duration),
		)
		return fr
	}

	log.Info("file loaded",
		slog.String("phase", string(s.phase)),
		slog.String("path", path),
		slog.Int("parsed", fr.Stats.Parsed),
		slog.Int("skipped", fr.Stats.Skipped),
		slog.Int("failed", fr.Stats.Failed),
		slog.Int("anomalies", fr.Stats.Anomalies),
		slog.Duration("duration", fr.Duration),
	)
	for _, issue := range fr.Stats.Issues {
		log.Debug("line issue",
			slog.String("path", path),
			slog.Int("line", issue.Line),
			slog.String("kind", string(issue.Kind)),
			slog.String("message", issue.Message),
		)
	}
	return fr
}
