// Package units implements the prosodic unit extractor (C4): converting a
// rewritten, whitespace-stripped hemistich into a sequence of three-valued
// units used as the meter-matching key.
package units

import (
	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/internal/grapheme"
)

// Unit is one of three prosodic tags a grapheme cluster classifies to.
type Unit byte

const (
	// Bare is a consonant with no diacritic at all.
	Bare Unit = iota
	// Vowelled is a cluster bearing a short vowel, tanwīn, or shadda mark but
	// no sukūn.
	Vowelled
	// Sukun is a cluster bearing the sukūn mark.
	Sukun
)

func (u Unit) String() string {
	switch u {
	case Sukun:
		return "SUKUN"
	case Vowelled:
		return "VOWELLED"
	default:
		return "BARE"
	}
}

// code renders a Unit as the single printable byte used in a Sequence's map
// key. The three codes are ASCII letters, which never occur among the bytes
// of UTF-8-encoded Arabic text, so they never collide with it when debugging.
func (u Unit) code() byte {
	switch u {
	case Sukun:
		return 'S'
	case Vowelled:
		return 'V'
	default:
		return 'B'
	}
}

// Extract walks s left to right (skipping any leading stray combining
// marks), groups each base code point with its contiguous trailing
// combining marks, and classifies each resulting cluster. The caller must
// have already removed whitespace from s.
func Extract(s string) []Unit {
	clusters := grapheme.Split(s)
	out := make([]Unit, len(clusters))
	for i, c := range clusters {
		switch {
		case c.HasSukun():
			out[i] = Sukun
		case c.HasHaraka():
			out[i] = Vowelled
		default:
			out[i] = Bare
		}
	}
	return out
}

// Sequence is a map-safe, comparable encoding of a []Unit: one byte per
// unit. Two Sequences are structurally equal iff the underlying strings are
// equal, which lets Sequence be used directly as a map key or compared with ==.
type Sequence string

// Encode renders a unit sequence as a Sequence.
func Encode(us []Unit) Sequence {
	b := make([]byte, len(us))
	for i, u := range us {
		b[i] = u.code()
	}
	return Sequence(b)
}

// Len reports the number of units encoded.
func (s Sequence) Len() int { return len(s) }
