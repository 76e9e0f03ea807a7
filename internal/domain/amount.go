package domain

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// numericLiteral matches a plain decimal literal with an optional exponent.
// Hex, "inf" and "nan" spellings are rejected.
var numericLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

var amountCleaner = strings.NewReplacer(",", "", " ", "")

// NormalizeAmount converts a numeric value or numeric string into a finite
// decimal. Strings are trimmed and stripped of thousands separators and
// spaces before parsing. Magnitudes are not clamped.
func NormalizeAmount(amount any) (decimal.Decimal, error) {
	switch v := amount.(type) {
	case string:
		return normalizeAmountString(v)
	case float64:
		return normalizeAmountFloat(v)
	case float32:
		return normalizeAmountFloat(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case decimal.Decimal:
		return v, nil
	case nil:
		return decimal.Zero, fmt.Errorf("%w: nil value", ErrInvalidAmount)
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, amount)
	}
}

func normalizeAmountString(s string) (decimal.Decimal, error) {
	clean := amountCleaner.Replace(strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: empty string value", ErrInvalidAmount)
	}
	if !numericLiteral.MatchString(clean) {
		return decimal.Zero, fmt.Errorf("%w: string %q is not numeric", ErrInvalidAmount, s)
	}

	// Out of range literals such as "1e999" come back as ±Inf with ErrRange;
	// the finiteness check below rejects those.
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, fmt.Errorf("%w: string %q: %v", ErrInvalidAmount, s, err)
	}

	return normalizeAmountFloat(value)
}

func normalizeAmountFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v is not a finite number", ErrInvalidAmount, f)
	}
	return decimal.NewFromFloat(f), nil
}
