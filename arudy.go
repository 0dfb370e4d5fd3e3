// Package arudy wires the reference tables loaded from package data into a
// ready-to-use Matcher and foot Aligner. The prosody/... packages underneath
// are the pure, dependency-free core; this package is the one place that
// performs I/O (reading the embedded CSVs through gocsv) and logs structured
// diagnostics about it.
package arudy

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/omars-kassem/arudy/data"
	"github.com/omars-kassem/arudy/prosody/align"
	"github.com/omars-kassem/arudy/prosody/match"
	"github.com/omars-kassem/arudy/prosody/meter"
	"github.com/omars-kassem/arudy/prosody/replace"
	"github.com/omars-kassem/arudy/prosody/rules"
)

// LoadError reports a ReferenceLoadFailure (spec §7): one of the four
// reference tables could not be parsed. It is fatal — the caller cannot
// build a working Matcher or Aligner without all four.
type LoadError struct {
	Table string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("arudy: load %s: %v", e.Table, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// System bundles the two analysis entry points (spec §6): the poetry matcher
// and the foot aligner, plus the weight table the aligner needs per call.
type System struct {
	Matcher *match.Matcher
	Catalog *align.Catalog
	Weights align.WeightTable
}

// Align is a convenience wrapper over align.Align bound to this System's
// weights and catalog.
func (s *System) Align(meterName, canonicalLine string) align.Alignment {
	return align.Align(s.Weights, s.Catalog, meterName, canonicalLine)
}

// Load builds a System from the embedded reference tables, logging a
// one-line summary of each table's size on success. Any parse failure is
// wrapped in a *LoadError and returned as-is: the caller decides whether a
// ReferenceLoadFailure should be treated as fatal (it should be, per
// spec §7), but this package never calls os.Exit itself.
func Load(log zerolog.Logger) (*System, error) {
	replacementPairs, err := data.LoadReplacements()
	if err != nil {
		return nil, &LoadError{Table: "replacements", Err: err}
	}
	table := replace.New(replacementPairs)
	log.Debug().Int("entries", table.Len()).Msg("loaded replacement table")

	meterRows, err := data.LoadMeterRows()
	if err != nil {
		return nil, &LoadError{Table: "meters", Err: err}
	}
	index := meter.Build(meterRows)
	log.Debug().Int("rows", len(meterRows)).Int("keys", index.Len()).Msg("built meter index")

	weights, err := data.LoadWeights()
	if err != nil {
		return nil, &LoadError{Table: "weights", Err: err}
	}
	log.Debug().Int("meters", len(weights)).Msg("loaded weight table")

	modEntries, err := data.LoadModifications()
	if err != nil {
		return nil, &LoadError{Table: "modifications", Err: err}
	}
	catalog := align.BuildCatalog(modEntries)
	log.Debug().Int("entries", len(modEntries)).Msg("built modification catalog")

	engine := rules.New(table)
	matcher := match.New(engine, index)

	return &System{Matcher: matcher, Catalog: catalog, Weights: weights}, nil
}
