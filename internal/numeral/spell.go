// Package numeral renders numbers in Khmer: numeral glyph transcription and
// spelling in words.
//
// Khmer number words are concatenated without spaces; only the callers add
// spacing around surrounding literal words such as currency names.
//
// All functions are safe for concurrent use by multiple goroutines.
package numeral

import (
	"fmt"

	"khmer-format/internal/domain"
)

// Spell returns the Khmer words for a non-negative integer.
//
// Values of 100 and above are split on the largest scale that fits: the
// count is spelled recursively, followed by the scale label and the spelled
// remainder when it is not zero.
func Spell(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d is negative", domain.ErrUnsupportedNumber, n)
	}
	return spell(n)
}

func spell(n int64) (string, error) {
	if n < 100 {
		return spellBelowHundred(n), nil
	}

	for _, s := range scales {
		if n < s.value {
			continue
		}

		major, err := spell(n / s.value)
		if err != nil {
			return "", err
		}
		words := major + s.label

		if rem := n % s.value; rem > 0 {
			minor, err := spell(rem)
			if err != nil {
				return "", err
			}
			words += minor
		}
		return words, nil
	}

	return "", fmt.Errorf("%w: %d", domain.ErrUnsupportedNumber, n)
}

// spellBelowHundred handles 0-99. Callers must ensure the range.
func spellBelowHundred(n int64) string {
	if n < 10 {
		return units[n]
	}
	words := tens[n/10]
	if o := n % 10; o > 0 {
		words += units[o]
	}
	return words
}

// SpellClock spells a value shown on a clock face, 0 through 59.
func SpellClock(n int) (string, error) {
	if n < 0 || n > 59 {
		return "", fmt.Errorf("%w: %d, supported range is 0-59", domain.ErrNumberOutOfRange, n)
	}
	if n < 10 {
		return units[n], nil
	}
	words := clockTens[n/10]
	if o := n % 10; o > 0 {
		words += units[o]
	}
	return words, nil
}
