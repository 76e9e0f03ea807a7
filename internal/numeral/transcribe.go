package numeral

import "strings"

// ToKhmerDigits replaces every ASCII digit in s with the matching Khmer
// numeral glyph. All other characters, separators included, pass through.
// Khmer glyphs are not in the mapped set, so applying it twice is the
// same as applying it once.
func ToKhmerDigits(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) * 3)

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(khmerDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ToArabicDigits is the inverse of ToKhmerDigits: Khmer numeral glyphs
// become ASCII digits and everything else passes through.
func ToArabicDigits(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r >= khmerDigits[0] && r <= khmerDigits[9] {
			b.WriteRune('0' + (r - khmerDigits[0]))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
