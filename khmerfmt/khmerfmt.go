// Package khmerfmt formats money amounts and clock times as Khmer text.
//
// Amounts can be rendered with grouped digits, in either Khmer numeral
// glyphs or Latin digits, or spelled out in words:
//
//	khmerfmt.FormatKHR(15000, true)  // "១៥,០០០ ៛"
//	khmerfmt.FormatUSD(15000, false) // "$15,000.00"
//	khmerfmt.SpellKHR(15000)         // "មួយម៉ឺនប្រាំពាន់ រៀល"
//
// Times are accepted in 24-hour or 12-hour form and rendered with the
// Khmer part-of-day label:
//
//	khmerfmt.FormatTime("1:22 PM", khmerfmt.ModeDigits) // "ម៉ោង១ និង ២២ នាទី រសៀល"
//
// Amounts are rounded half away from zero: KHR to whole Riel, USD to cents.
// Failures wrap the sentinel errors below and can be matched with errors.Is.
//
// All functions are safe for concurrent use by multiple goroutines.
package khmerfmt

import (
	"time"

	"khmer-format/internal/domain"
	"khmer-format/internal/gateway"
	"khmer-format/internal/numeral"
	"khmer-format/internal/usecase"
)

// Amount lists the types accepted as a monetary amount.
type Amount interface {
	int | int32 | int64 | uint | uint32 | uint64 | float32 | float64 | string
}

// Render modes accepted by the time functions.
const (
	ModeDigits = string(domain.ModeDigits)
	ModeWords  = string(domain.ModeWords)
)

// Errors returned by the package.
var (
	ErrInvalidAmount       = domain.ErrInvalidAmount
	ErrUnsupportedCurrency = domain.ErrUnsupportedCurrency
	ErrInvalidTimeFormat   = domain.ErrInvalidTimeFormat
	ErrInvalidHour         = domain.ErrInvalidHour
	ErrInvalidMinute       = domain.ErrInvalidMinute
	ErrInvalidMode         = domain.ErrInvalidMode
	ErrInvalidTimezone     = domain.ErrInvalidTimezone
	ErrNumberOutOfRange    = domain.ErrNumberOutOfRange
	ErrUnsupportedNumber   = domain.ErrUnsupportedNumber
)

var (
	money = usecase.NewMoneyFormatter()
	times = usecase.NewTimeFormatter(gateway.NewSystemClock(nil))
)

// FormatMoney formats amount in currency ("KHR" or "USD", case-insensitive).
// A nil khmerDigits picks the currency default: Khmer glyphs for KHR,
// Latin digits for USD.
func FormatMoney[T Amount](currency string, amount T, khmerDigits *bool) (string, error) {
	return money.Format(currency, amount, khmerDigits)
}

// FormatKHR formats a Riel amount, e.g. "១៥,០០០ ៛".
func FormatKHR[T Amount](amount T, khmerDigits bool) (string, error) {
	return money.FormatKHR(amount, khmerDigits)
}

// FormatUSD formats a Dollar amount, e.g. "$15,000.00".
func FormatUSD[T Amount](amount T, khmerDigits bool) (string, error) {
	return money.FormatUSD(amount, khmerDigits)
}

// SpellMoney spells amount in currency out in words.
func SpellMoney[T Amount](currency string, amount T) (string, error) {
	return money.Spell(currency, amount)
}

// SpellKHR spells a Riel amount, e.g. "មួយម៉ឺនប្រាំពាន់ រៀល".
func SpellKHR[T Amount](amount T) (string, error) {
	return money.SpellKHR(amount)
}

// SpellUSD spells a Dollar amount, e.g. "មួយរយម្ភៃបី ដុល្លារ និង សែសិបប្រាំ សេន".
func SpellUSD[T Amount](amount T) (string, error) {
	return money.SpellUSD(amount)
}

// FormatTime renders a "H:MM", "HH:MM" or "H:MM AM/PM" time in mode.
func FormatTime(text, mode string) (string, error) {
	return times.Format(text, mode)
}

// FormatTimeNow renders the current time in timezone, an IANA identifier
// such as "Asia/Phnom_Penh". An empty timezone uses the host zone.
func FormatTimeNow(mode, timezone string) (string, error) {
	return times.FormatNow(mode, timezone)
}

// FormatTimeFromInstant renders the wall-clock time of t in t's location.
func FormatTimeFromInstant(t time.Time, mode string) (string, error) {
	return times.FormatInstant(t, mode)
}

// ToKhmerDigits replaces ASCII digits with Khmer numeral glyphs.
func ToKhmerDigits(s string) string {
	return numeral.ToKhmerDigits(s)
}

// SpellNumber spells a non-negative integer in Khmer words.
func SpellNumber(n int64) (string, error) {
	return numeral.Spell(n)
}
