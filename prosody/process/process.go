// Package process implements the Processor (C6): composing the cleaner,
// whitespace removal, and unit extractor over a verse to yield its scansion
// key.
package process

import (
	"strings"

	"github.com/omars-kassem/arudy/prosody/clean"
	"github.com/omars-kassem/arudy/prosody/units"
	"github.com/omars-kassem/arudy/prosody/verse"
)

// Key is the scansion key: one encoded unit sequence per hemistich, in
// order. A Key derived from a delimiter-less verse has length 1
// (DegenerateKey, spec §7); a well-formed two-hemistich verse has length 2.
type Key []units.Sequence

// Valid reports whether k has exactly two hemistichs, the only length the
// meter index and matcher accept.
func (k Key) Valid() bool { return len(k) == 2 }

// mapKey renders k as a single comparable string for use as a map key.
// Sequence values never contain the separator byte, so no two distinct Keys
// can collide.
func (k Key) mapKey() string {
	strs := make([]string, len(k))
	for i, s := range k {
		strs[i] = string(s)
	}
	return strings.Join(strs, "\x1f")
}

// MapKey exposes the map-safe encoding for packages that index by Key.
func (k Key) MapKey() string { return k.mapKey() }

// Line computes the scansion key of a verse or canonical line: split on the
// hemistich delimiter, clean and strip whitespace from each piece, then
// extract its unit sequence.
func Line(line string) Key {
	parts := verse.Split(line)
	key := make(Key, len(parts))
	for i, p := range parts {
		cleaned := strings.ReplaceAll(clean.Clean(p), " ", "")
		key[i] = units.Encode(units.Extract(cleaned))
	}
	return key
}
