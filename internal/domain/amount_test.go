package domain_test

import (
	"math"
	"testing"

	"khmer-format/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
		wantErr  bool
	}{
		{name: "int", input: 15000, expected: "15000"},
		{name: "negative int64", input: int64(-42), expected: "-42"},
		{name: "int32", input: int32(7), expected: "7"},
		{name: "uint64 above int64", input: uint64(math.MaxUint64), expected: "18446744073709551615"},
		{name: "float", input: 123.45, expected: "123.45"},
		{name: "float32", input: float32(0.5), expected: "0.5"},
		{name: "decimal", input: decimal.RequireFromString("1.005"), expected: "1.005"},
		{name: "plain string", input: "15000", expected: "15000"},
		{name: "grouped string", input: "1,234,567.89", expected: "1234567.89"},
		{name: "padded string", input: "  2 500  ", expected: "2500"},
		{name: "exponent string", input: "1.5e3", expected: "1500"},
		{name: "leading dot", input: ".25", expected: "0.25"},
		{name: "signed string", input: "-0.4", expected: "-0.4"},
		{name: "underflow is zero", input: "1e-400", expected: "0"},

		{name: "empty string", input: "", wantErr: true},
		{name: "only separators", input: " , ", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "hex", input: "0x10", wantErr: true},
		{name: "inf string", input: "inf", wantErr: true},
		{name: "nan string", input: "NaN", wantErr: true},
		{name: "overflow string", input: "1e999", wantErr: true},
		{name: "nan float", input: math.NaN(), wantErr: true},
		{name: "inf float", input: math.Inf(-1), wantErr: true},
		{name: "nil", input: nil, wantErr: true},
		{name: "bool", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}
