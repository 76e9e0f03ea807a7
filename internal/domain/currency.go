package domain

import (
	"fmt"
	"strings"
)

// CurrencyCode is the shorthand for a supported currency.
type CurrencyCode string

const (
	KHR CurrencyCode = "KHR"
	USD CurrencyCode = "USD"
)

// SymbolPosition tells whether the currency symbol goes before or after the number.
type SymbolPosition int

const (
	SymbolPrefix SymbolPosition = iota
	SymbolSuffix
)

// Currency holds the formatting conventions of a supported currency.
type Currency struct {
	Code CurrencyCode

	// Number of digits after the decimal point.
	Decimals int32

	Symbol         string
	SymbolPosition SymbolPosition

	// KhmerDigits is the glyph policy used when the caller does not pick one.
	KhmerDigits bool

	// Unit word used when the amount is spelled out.
	UnitWord string
}

// Supported currencies.
var (
	Riel = Currency{
		Code:           KHR,
		Decimals:       0,
		Symbol:         "៛",
		SymbolPosition: SymbolSuffix,
		KhmerDigits:    true,
		UnitWord:       "រៀល",
	}
	Dollar = Currency{
		Code:           USD,
		Decimals:       2,
		Symbol:         "$",
		SymbolPosition: SymbolPrefix,
		KhmerDigits:    false,
		UnitWord:       "ដុល្លារ",
	}
)

// LookupCurrency resolves a currency code. The code is trimmed and
// compared case-insensitively.
func LookupCurrency(code string) (Currency, error) {
	switch CurrencyCode(strings.ToUpper(strings.TrimSpace(code))) {
	case KHR:
		return Riel, nil
	case USD:
		return Dollar, nil
	default:
		return Currency{}, fmt.Errorf("%w: %q, must be KHR or USD", ErrUnsupportedCurrency, code)
	}
}

// String returns the currency code.
func (c Currency) String() string { return string(c.Code) }
