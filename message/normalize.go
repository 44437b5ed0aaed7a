// Package message converts free-form broker notification text (SMS,
// statement lines, manual pastes) into ledger transactions. Recognition is
// template-based: one matcher per message family, tried in a fixed priority
// order, first success wins.
package message

import (
	"strings"
	"unicode"
)

// turkishFold maps accented Turkish characters to their canonical unaccented
// lowercase spelling. Both cases fold to the same rune so "Temettü", "TEMETTU"
// and "temettü" normalize identically.
var turkishFold = map[rune]rune{
	'ç': 'c', 'Ç': 'c',
	'ğ': 'g', 'Ğ': 'g',
	'ı': 'i', 'I': 'i',
	'i': 'i', 'İ': 'i',
	'ö': 'o', 'Ö': 'o',
	'ş': 's', 'Ş': 's',
	'ü': 'u', 'Ü': 'u',
}

// kept punctuation carries meaning in the supported templates: decimal
// separators, percentages, the date prefix colon and the ".E" ticker suffix.
const keptPunct = ".,%:/-"

// Normalize lower-cases the text, folds Turkish diacritics, drops decorative
// punctuation and collapses whitespace runs to single spaces. It is pure,
// total and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	space := true // swallow leading whitespace
	for _, r := range raw {
		if folded, ok := turkishFold[r]; ok {
			r = folded
		} else {
			r = unicode.ToLower(r)
		}
		switch {
		case unicode.IsSpace(r):
			if !space {
				b.WriteRune(' ')
				space = true
			}
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		case strings.ContainsRune(keptPunct, r):
		default:
			// decorative punctuation acts as a separator
			if !space {
				b.WriteRune(' ')
				space = true
			}
			continue
		}
		b.WriteRune(r)
		space = false
	}
	return strings.TrimRight(b.String(), " ")
}
