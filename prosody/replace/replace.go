// Package replace implements the orthographic replacement table (C1): a
// read-only mapping from literal, irregularly-spelled surface forms to their
// prosodic-ready spellings.
package replace

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Table is an immutable, longest-key-first replacement map. The zero value
// is an empty table.
type Table struct {
	keys   []string
	values map[string]string
}

// New builds a Table from original/replacement pairs, normalizing every key
// and value to canonical composed form (NFC) once, at load time, per
// spec §9's normalization rule.
func New(pairs map[string]string) Table {
	t := Table{values: make(map[string]string, len(pairs))}
	for k, v := range pairs {
		k = norm.NFC.String(k)
		v = norm.NFC.String(v)
		if k == "" {
			continue
		}
		t.values[k] = v
		t.keys = append(t.keys, k)
	}
	sort.Slice(t.keys, func(i, j int) bool {
		li, lj := len([]rune(t.keys[i])), len([]rune(t.keys[j]))
		if li != lj {
			return li > lj
		}
		return t.keys[i] < t.keys[j]
	})
	return t
}

// Len reports the number of entries in the table.
func (t Table) Len() int { return len(t.keys) }

// Apply replaces every occurrence of every key in s, longest key first, so
// that a longer irregular spelling is never shadowed by a shorter prefix of
// itself.
func (t Table) Apply(s string) string {
	for _, k := range t.keys {
		if strings.Contains(s, k) {
			s = strings.ReplaceAll(s, k, t.values[k])
		}
	}
	return s
}
