// Package align implements the foot aligner (C9): for a matched meter, pairs
// canonical feet against the verse's realized feet and annotates each pair
// with its modification, from the catalog of licensed zihāfāt and ʿilal.
package align

import (
	"fmt"
	"strings"

	"github.com/omars-kassem/arudy/prosody/verse"
)

// RemainedOnOriginal is the synthesized annotation for a foot pair absent
// from the modification catalog (spec §4.7, §7's MissingModification).
const RemainedOnOriginal = "بقيت على الأصل"

// ModEntry is one row of the modification catalog: a canonical foot, its two
// recognized realized spellings, the modification name, and free-text notes.
type ModEntry struct {
	CanonicalFoot string
	FormA         string
	FormB         string
	Name          string
	Notes         string
}

// Catalog is the immutable, read-only modification lookup table, keyed by
// canonical foot.
type Catalog struct {
	byFoot map[string][]ModEntry
}

// BuildCatalog indexes entries by their canonical foot.
func BuildCatalog(entries []ModEntry) *Catalog {
	c := &Catalog{byFoot: make(map[string][]ModEntry, len(entries))}
	for _, e := range entries {
		c.byFoot[e.CanonicalFoot] = append(c.byFoot[e.CanonicalFoot], e)
	}
	return c
}

// Pair is one positionally-aligned (canonical foot, realized foot) with its
// resolved annotation.
type Pair struct {
	CanonicalFoot string
	RealizedFoot  string
	Annotation    string
}

// Alignment is the full foot-by-foot breakdown for one matched meter.
type Alignment struct {
	Header string
	Pairs  []Pair
}

// WeightTable maps a meter name to its canonical weight (spec §3): a
// whitespace-delimited sequence of feet, with the padded delimiter between
// hemistichs.
type WeightTable map[string]string

// Align looks up meterName's canonical weight, tokenizes it and
// canonicalLine into feet (concatenating both hemistichs only when both
// sides have exactly two), pairs them positionally, and resolves each pair's
// modification from catalog. A meter name absent from weights yields a
// zero-value Alignment (MissingWeight, spec §7).
func Align(weights WeightTable, catalog *Catalog, meterName, canonicalLine string) Alignment {
	pattern, ok := weights[meterName]
	if !ok {
		return Alignment{}
	}

	weightFeet, realizedFeet := feetLists(pattern, canonicalLine)
	n := len(weightFeet)
	if len(realizedFeet) < n {
		n = len(realizedFeet)
	}

	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		cf, rf := weightFeet[i], realizedFeet[i]
		pairs = append(pairs, Pair{
			CanonicalFoot: cf,
			RealizedFoot:  rf,
			Annotation:    catalog.annotate(cf, rf),
		})
	}

	return Alignment{
		Header: fmt.Sprintf("%s: %s", meterName, pattern),
		Pairs:  pairs,
	}
}

func feetLists(weightPattern, canonicalLine string) (weightFeet, realizedFeet []string) {
	wParts := strings.Split(weightPattern, verse.Padded)
	rParts := strings.Split(canonicalLine, verse.Padded)
	if len(wParts) == 2 && len(rParts) == 2 {
		weightFeet = append(strings.Fields(wParts[0]), strings.Fields(wParts[1])...)
		realizedFeet = append(strings.Fields(rParts[0]), strings.Fields(rParts[1])...)
		return weightFeet, realizedFeet
	}
	return strings.Fields(wParts[0]), strings.Fields(rParts[0])
}

func (c *Catalog) annotate(canonicalFoot, realizedFoot string) string {
	for _, e := range c.byFoot[canonicalFoot] {
		if e.FormA == realizedFoot {
			return e.Name
		}
	}
	for _, e := range c.byFoot[canonicalFoot] {
		if e.FormB == realizedFoot {
			return e.Name
		}
	}
	return RemainedOnOriginal
}

// Summary renders a one-line plain-text tally of an alignment: the meter
// name, its foot count, and how many of its feet carry a named modification
// rather than "remained on original". Grounded in original_source/app.py's
// ResultProcessor, which computes the same tally before feeding it to its
// HTML template; the HTML templating itself stays out of scope (spec §1).
func (a Alignment) Summary(meterName string) string {
	modified := 0
	for _, p := range a.Pairs {
		if p.Annotation != RemainedOnOriginal {
			modified++
		}
	}
	return fmt.Sprintf("%s: %d feet, %d modified", meterName, len(a.Pairs), modified)
}
