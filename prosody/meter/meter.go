// Package meter implements the meter indexer (C7): loading the reference
// meter corpus and building a multimap from scansion key to the canonical
// entries that produced it.
package meter

import "github.com/omars-kassem/arudy/prosody/process"

// Entry is a canonical meter entry (spec §3): a meter name paired with one
// of its fully-vowelled canonical lines.
type Entry struct {
	Name string
	Line string
}

// Row is the shape of one reference-table record before indexing.
type Row struct {
	Name string
	Line string
}

// Index is the immutable, read-only multimap built once at startup.
type Index struct {
	byKey map[string][]Entry
}

// Build computes each row's scansion key via process.Line — without running
// the rule engine, since canonical lines are already scansion-ready
// (spec §4.5) — and keeps only entries whose key has length 2.
func Build(rows []Row) *Index {
	idx := &Index{byKey: make(map[string][]Entry, len(rows))}
	for _, row := range rows {
		key := process.Line(row.Line)
		if !key.Valid() {
			continue
		}
		k := key.MapKey()
		idx.byKey[k] = append(idx.byKey[k], Entry{Name: row.Name, Line: row.Line})
	}
	return idx
}

// Lookup returns every canonical entry whose scansion key equals key, or nil
// if key is degenerate or absent from the index.
func (idx *Index) Lookup(key process.Key) []Entry {
	if !key.Valid() {
		return nil
	}
	return idx.byKey[key.MapKey()]
}

// Len reports the number of distinct scansion keys in the index.
func (idx *Index) Len() int { return len(idx.byKey) }
