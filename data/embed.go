// Package data embeds the four reference-table CSV files bundled with the
// module (meters, weights, modifications, replacements) and parses them into
// the row types the rest of the library builds its indexes from.
//
// Construction of these reference tables is, per spec §1, an external
// collaborator's concern — the bundled CSVs are a representative sample
// sufficient to exercise every component, not an exhaustive corpus. A
// deployment with its own corpus loads it the same way: bytes in, Load* out.
package data

import (
	_ "embed"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/omars-kassem/arudy/prosody/align"
	"github.com/omars-kassem/arudy/prosody/meter"
)

//go:embed meters.csv
var metersCSV []byte

//go:embed weights.csv
var weightsCSV []byte

//go:embed modifications.csv
var modificationsCSV []byte

//go:embed replacements.csv
var replacementsCSV []byte

// meterRow and friends mirror the CSV headers; gocsv matches struct tags to
// column names.
type meterRow struct {
	Name string `csv:"name"`
	Line string `csv:"line"`
}

type weightRow struct {
	Name    string `csv:"name"`
	Pattern string `csv:"pattern"`
}

type modificationRow struct {
	CanonicalFoot string `csv:"canonical_foot"`
	FormA         string `csv:"form_a"`
	FormB         string `csv:"form_b"`
	Name          string `csv:"name"`
	Notes         string `csv:"notes"`
}

type replacementRow struct {
	Original    string `csv:"original"`
	Replacement string `csv:"replacement"`
}

// LoadMeterRows parses the embedded meter corpus into meter.Row values.
func LoadMeterRows() ([]meter.Row, error) {
	var rows []meterRow
	if err := gocsv.UnmarshalBytes(metersCSV, &rows); err != nil {
		return nil, fmt.Errorf("parse meters.csv: %w", err)
	}
	out := make([]meter.Row, len(rows))
	for i, r := range rows {
		out[i] = meter.Row{Name: r.Name, Line: r.Line}
	}
	return out, nil
}

// LoadWeights parses the embedded per-meter canonical weights.
func LoadWeights() (align.WeightTable, error) {
	var rows []weightRow
	if err := gocsv.UnmarshalBytes(weightsCSV, &rows); err != nil {
		return nil, fmt.Errorf("parse weights.csv: %w", err)
	}
	table := make(align.WeightTable, len(rows))
	for _, r := range rows {
		table[r.Name] = r.Pattern
	}
	return table, nil
}

// LoadModifications parses the embedded zihāf/ʿilla catalog.
func LoadModifications() ([]align.ModEntry, error) {
	var rows []modificationRow
	if err := gocsv.UnmarshalBytes(modificationsCSV, &rows); err != nil {
		return nil, fmt.Errorf("parse modifications.csv: %w", err)
	}
	out := make([]align.ModEntry, len(rows))
	for i, r := range rows {
		out[i] = align.ModEntry{
			CanonicalFoot: r.CanonicalFoot,
			FormA:         r.FormA,
			FormB:         r.FormB,
			Name:          r.Name,
			Notes:         r.Notes,
		}
	}
	return out, nil
}

// LoadReplacements parses the embedded irregular-spelling replacement table.
func LoadReplacements() (map[string]string, error) {
	var rows []replacementRow
	if err := gocsv.UnmarshalBytes(replacementsCSV, &rows); err != nil {
		return nil, fmt.Errorf("parse replacements.csv: %w", err)
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Original] = r.Replacement
	}
	return out, nil
}
