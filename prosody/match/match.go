// Package match implements the poetry matcher (C8): the library's main
// entry point, composing the rule engine, the processor, and the meter
// index.
package match

import (
	"github.com/omars-kassem/arudy/prosody/clean"
	"github.com/omars-kassem/arudy/prosody/meter"
	"github.com/omars-kassem/arudy/prosody/process"
	"github.com/omars-kassem/arudy/prosody/rules"
	"github.com/omars-kassem/arudy/prosody/verse"
)

// Result is the output of Analyze: the phonologically rewritten verse and
// every canonical meter entry whose scansion key matches it. An empty
// Matches slice is not an error — it covers EmptyInput, DegenerateKey, and
// NoMatch uniformly (spec §7).
type Result struct {
	Rewritten string
	Matches   []meter.Entry
}

// Matcher is the C8 entry point, dependency-injected with a rule engine and
// a meter index. It owns no mutable state and is safe to call concurrently.
type Matcher struct {
	engine *rules.Engine
	index  *meter.Index
}

// New builds a Matcher from an already-constructed engine and index.
func New(engine *rules.Engine, index *meter.Index) *Matcher {
	return &Matcher{engine: engine, index: index}
}

// Analyze runs the rule engine over each hemistich of verseText, computes
// the rewritten verse's scansion key, and looks it up in the meter index.
func (m *Matcher) Analyze(verseText string) Result {
	if clean.Clean(verseText) == "" {
		return Result{} // EmptyInput
	}

	hemistichs := verse.Split(verseText)
	for i, h := range hemistichs {
		hemistichs[i] = m.engine.Apply(h)
	}
	rewritten := verse.Join(hemistichs)

	key := process.Line(rewritten)
	if !key.Valid() {
		return Result{Rewritten: rewritten} // DegenerateKey
	}

	matches := m.index.Lookup(key) // nil on NoMatch, handled identically
	return Result{Rewritten: rewritten, Matches: matches}
}

// LineFor returns the canonical line the given meter name matched under, and
// whether it was present in Matches. Used by callers that want to feed a
// specific match into the foot aligner (C9).
func (r Result) LineFor(meterName string) (string, bool) {
	for _, m := range r.Matches {
		if m.Name == meterName {
			return m.Line, true
		}
	}
	return "", false
}
