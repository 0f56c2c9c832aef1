// Package grammar holds the catalog of line grammars used by the lexicon
// readers. Each grammar is compiled once; a grammar that fails to compile
// stays in the registry as unusable and rejects every line it is given.
package grammar

import (
	"fmt"
	"log/slog"
	"regexp"
)

// Name identifies a grammar in the registry.
type Name string

// Status tags the outcome of applying a grammar to a line.
type Status int

const (
	NoMatch Status = iota
	Matched
	Unusable
)

func (s Status) String() string {
	switch s {
	case Matched:
		return "matched"
	case Unusable:
		return "unusable"
	}
	return "no match"
}

// Match is the tagged result of Grammar.Match and Grammar.Consume.
type Match struct {
	status Status
	groups []string
}

// Status returns the match outcome.
func (m Match) Status() Status { return m.status }

// OK reports whether the grammar matched.
func (m Match) OK() bool { return m.status == Matched }

// Group returns capture group i (1-based). Out-of-range groups are "".
func (m Match) Group(i int) string {
	if i < 1 || i > len(m.groups) {
		return ""
	}
	return m.groups[i-1]
}

// Groups returns the number of capture groups.
func (m Match) Groups() int { return len(m.groups) }

// Definition is the source of one grammar.
type Definition struct {
	Name Name
	Expr string
}

// Grammar is a compiled line grammar.
type Grammar struct {
	name Name
	expr string
	re   *regexp.Regexp
	err  error
}

// Name returns the grammar's registry name.
func (g *Grammar) Name() Name { return g.name }

// Err returns the compile error of an unusable grammar.
func (g *Grammar) Err() error { return g.err }

// Usable reports whether the grammar compiled.
func (g *Grammar) Usable() bool { return g.re != nil }

// Match applies the grammar to the whole line.
func (g *Grammar) Match(line string) Match {
	if g.re == nil {
		return Match{status: Unusable}
	}
	sub := g.re.FindStringSubmatch(line)
	if sub == nil {
		return Match{status: NoMatch}
	}
	return Match{status: Matched, groups: sub[1:]}
}

// Consume matches the grammar at the start of text and returns the text
// that follows the match. On NoMatch or Unusable, rest is text unchanged.
func (g *Grammar) Consume(text string) (m Match, rest string) {
	if g.re == nil {
		return Match{status: Unusable}, text
	}
	loc := g.re.FindStringSubmatchIndex(text)
	if loc == nil || loc[0] != 0 {
		return Match{status: NoMatch}, text
	}
	groups := make([]string, len(loc)/2-1)
	for i := range groups {
		start, end := loc[2*i+2], loc[2*i+3]
		if start >= 0 {
			groups[i] = text[start:end]
		}
	}
	return Match{status: Matched, groups: groups}, text[loc[1]:]
}

// Registry is a named table of compiled grammars.
type Registry struct {
	grammars map[Name]*Grammar
	order    []Name
}

// Compile builds a registry from defs. Compile failures are logged once
// and the grammar is kept as unusable.
func Compile(log *slog.Logger, defs []Definition) *Registry {
	r := &Registry{grammars: make(map[Name]*Grammar, len(defs))}
	for _, d := range defs {
		g := &Grammar{name: d.Name, expr: d.Expr}
		re, err := regexp.Compile(d.Expr)
		if err != nil {
			g.err = fmt.Errorf("compile grammar %s: %w", d.Name, err)
			log.Error("grammar unusable",
				slog.String("grammar", string(d.Name)),
				slog.String("expr", d.Expr),
				slog.String("error", err.Error()),
			)
		} else {
			g.re = re
		}
		if _, dup := r.grammars[d.Name]; !dup {
			r.order = append(r.order, d.Name)
		}
		r.grammars[d.Name] = g
	}
	return r
}

// Default compiles the fixed catalog.
func Default(log *slog.Logger) *Registry {
	return Compile(log, Catalog())
}

// Lookup returns the grammar registered under name. Unknown names yield an
// unusable grammar, never nil.
func (r *Registry) Lookup(name Name) *Grammar {
	if g, ok := r.grammars[name]; ok {
		return g
	}
	return &Grammar{name: name, err: fmt.Errorf("grammar %s: not registered", name)}
}

// Unusable lists the grammars that failed to compile, in catalog order.
func (r *Registry) Unusable() []*Grammar {
	var out []*Grammar
	for _, n := range r.order {
		if g := r.grammars[n]; !g.Usable() {
			out = append(out, g)
		}
	}
	return out
}
