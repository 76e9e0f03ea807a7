package usecase

import (
	"fmt"
	"math"
	"strings"

	"khmer-format/internal/domain"
	"khmer-format/internal/numeral"

	"github.com/shopspring/decimal"
)

var (
	maxSpellable = decimal.NewFromInt(math.MaxInt64)
	hundred      = decimal.NewFromInt(100)
)

// MoneyFormatter renders currency amounts as grouped numerals or as Khmer words.
// It holds no state and is safe for concurrent use.
type MoneyFormatter struct{}

// NewMoneyFormatter creates a new instance of the formatter.
func NewMoneyFormatter() *MoneyFormatter {
	return &MoneyFormatter{}
}

// Format formats amount in the given currency. A nil khmerDigits uses the
// currency default: Khmer glyphs for KHR, Latin digits for USD.
func (f *MoneyFormatter) Format(currency string, amount any, khmerDigits *bool) (string, error) {
	c, err := domain.LookupCurrency(currency)
	if err != nil {
		return "", err
	}

	useKhmer := c.KhmerDigits
	if khmerDigits != nil {
		useKhmer = *khmerDigits
	}
	return f.format(c, amount, useKhmer)
}

// FormatKHR formats a Riel amount with no decimals, e.g. "១៥,០០០ ៛".
func (f *MoneyFormatter) FormatKHR(amount any, khmerDigits bool) (string, error) {
	return f.format(domain.Riel, amount, khmerDigits)
}

// FormatUSD formats a Dollar amount with two decimals, e.g. "$15,000.00".
func (f *MoneyFormatter) FormatUSD(amount any, khmerDigits bool) (string, error) {
	return f.format(domain.Dollar, amount, khmerDigits)
}

// Spell spells amount out in words for the given currency.
func (f *MoneyFormatter) Spell(currency string, amount any) (string, error) {
	c, err := domain.LookupCurrency(currency)
	if err != nil {
		return "", err
	}

	if c.Code == domain.USD {
		return f.SpellUSD(amount)
	}
	return f.SpellKHR(amount)
}

// SpellKHR rounds amount to whole Riel and spells it, e.g. "មួយម៉ឺនប្រាំពាន់ រៀល".
func (f *MoneyFormatter) SpellKHR(amount any) (string, error) {
	value, err := domain.NormalizeAmount(amount)
	if err != nil {
		return "", err
	}

	rounded := value.Round(domain.Riel.Decimals)
	riels, err := toSpellable(rounded.Abs())
	if err != nil {
		return "", err
	}

	words, err := numeral.Spell(riels)
	if err != nil {
		return "", err
	}

	return withNegative(words+" "+domain.Riel.UnitWord, rounded.IsNegative()), nil
}

// SpellUSD rounds amount to cents and spells dollars and, when present, cents.
func (f *MoneyFormatter) SpellUSD(amount any) (string, error) {
	value, err := domain.NormalizeAmount(amount)
	if err != nil {
		return "", err
	}

	rounded := value.Round(domain.Dollar.Decimals)
	abs := rounded.Abs()
	whole := abs.Floor()

	dollars, err := toSpellable(whole)
	if err != nil {
		return "", err
	}
	cents := abs.Sub(whole).Mul(hundred).Round(0).IntPart()

	// A fraction that rounds up to a full dollar carries over.
	if cents == 100 {
		if dollars == math.MaxInt64 {
			return "", fmt.Errorf("%w: %s exceeds the supported range", domain.ErrUnsupportedNumber, rounded)
		}
		dollars++
		cents = 0
	}

	words, err := numeral.Spell(dollars)
	if err != nil {
		return "", err
	}
	words += " " + domain.Dollar.UnitWord

	if cents > 0 {
		centWords, err := numeral.Spell(cents)
		if err != nil {
			return "", err
		}
		words += " " + numeral.WordAnd + " " + centWords + " " + numeral.WordCent
	}

	return withNegative(words, rounded.IsNegative()), nil
}

func (f *MoneyFormatter) format(c domain.Currency, amount any, khmerDigits bool) (string, error) {
	value, err := domain.NormalizeAmount(amount)
	if err != nil {
		return "", err
	}

	rounded := value.Round(c.Decimals)
	formatted := groupThousands(rounded.Abs().StringFixed(c.Decimals))
	if khmerDigits {
		formatted = numeral.ToKhmerDigits(formatted)
	}

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	if c.SymbolPosition == domain.SymbolPrefix {
		return sign + c.Symbol + formatted, nil
	}
	return sign + formatted + " " + c.Symbol, nil
}

// groupThousands inserts ',' every three digits of the integer part of an
// unsigned decimal string.
func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3)

	head := len(intPart) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(intPart[:head])
	for i := head; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// toSpellable converts a non-negative whole decimal into an int64.
func toSpellable(d decimal.Decimal) (int64, error) {
	if d.GreaterThan(maxSpellable) {
		return 0, fmt.Errorf("%w: %s exceeds the supported range", domain.ErrUnsupportedNumber, d)
	}
	return d.IntPart(), nil
}

func withNegative(words string, negative bool) string {
	if negative {
		return numeral.WordNegative + " " + words
	}
	return words
}
