// Package diacritic names the Arabic combining marks and letter sets that the
// rule engine's context predicates are built from.
package diacritic

// Combining marks in code-point order, U+064B..U+0652.
const (
	Fathatan = 'ً' // tanwīn fatḥa
	Dammatan = 'ٌ' // tanwīn ḍamma
	Kasratan = 'ٍ' // tanwīn kasra
	Fatha    = 'َ'
	Damma    = 'ُ'
	Kasra    = 'ِ'
	Shadda   = 'ّ'
	Sukun    = 'ْ'
)

// Frequently-named base letters.
const (
	Hamza       = 'ء'
	AlefMadda   = 'آ'
	Alef        = 'ا'
	AlefMaksura = 'ى'
	Waw         = 'و'
	Yeh         = 'ي'
	Heh         = 'ه'
	Meem        = 'م'
	Noon        = 'ن'
	Lam         = 'ل'
	TehMarbuta  = 'ة'
	Teh         = 'ت'
)

// IsArabicLetter reports whether r falls in the Arabic-letter block
// (U+0621..U+064A) denoted "ء-ي" in classical rule descriptions. Encoded as
// an explicit predicate, not a raw range comparison inlined at call sites,
// so it can't accidentally be widened to swallow combining marks.
func IsArabicLetter(r rune) bool {
	return r >= 0x0621 && r <= 0x064A
}

// IsCombiningMark reports whether r is one of the eight marks this system
// reasons about (U+064B..U+0652).
func IsCombiningMark(r rune) bool {
	return r >= Fathatan && r <= Sukun
}

// IsHaraka reports whether r is a short vowel, tanwīn, or shadda mark (any
// combining mark other than sukūn).
func IsHaraka(r rune) bool {
	return IsCombiningMark(r) && r != Sukun
}

// IsTanwin reports whether r is one of the three nunation marks.
func IsTanwin(r rune) bool {
	return r == Fathatan || r == Dammatan || r == Kasratan
}

// IsShortVowel reports whether r is fatḥa, ḍamma, or kasra (excluding
// tanwīn, shadda, and sukūn).
func IsShortVowel(r rune) bool {
	return r == Fatha || r == Damma || r == Kasra
}

// IsLongVowelLetter reports whether r is one of the three letters used to
// spell a long vowel (alif, wāw, yāʾ).
func IsLongVowelLetter(r rune) bool {
	return r == Alef || r == Waw || r == Yeh
}

// moonLetters and sunLetters govern assimilation of the definite article's
// lām. The two sets are disjoint and exhaustive over the letters that can
// follow "ال".
var moonLetters = map[rune]bool{
	'ء': true, 'آ': true, 'أ': true, 'إ': true, 'ئ': true, 'ؤ': true,
	'ب': true, 'ج': true, 'ح': true, 'خ': true, 'ع': true, 'غ': true,
	'ف': true, 'ق': true, 'ك': true, 'م': true, 'ه': true, 'و': true, 'ي': true,
}

var sunLetters = map[rune]bool{
	'ت': true, 'ث': true, 'د': true, 'ذ': true, 'ر': true, 'ز': true,
	'س': true, 'ش': true, 'ص': true, 'ض': true, 'ط': true, 'ظ': true,
	'ل': true, 'ن': true,
}

// IsMoonLetter reports whether r triggers overt lām pronunciation after "ال".
func IsMoonLetter(r rune) bool { return moonLetters[r] }

// IsSunLetter reports whether r triggers lām assimilation (gemination) after "ال".
func IsSunLetter(r rune) bool { return sunLetters[r] }

// Tatweel is the kashida elongation character, prosodically inert.
const Tatweel = 'ـ'
