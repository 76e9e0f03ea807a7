package khmerfmt_test

import (
	"testing"
	"time"

	"khmer-format/khmerfmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	yes := true

	tests := []struct {
		name string
		call func() (string, error)
		want string
	}{
		{name: "KHR default", call: func() (string, error) { return khmerfmt.FormatKHR(15000, true) }, want: "១៥,០០០ ៛"},
		{name: "KHR latin", call: func() (string, error) { return khmerfmt.FormatKHR(15000, false) }, want: "15,000 ៛"},
		{name: "KHR rounding", call: func() (string, error) { return khmerfmt.FormatKHR(15000.5, true) }, want: "១៥,០០១ ៛"},
		{name: "USD default", call: func() (string, error) { return khmerfmt.FormatUSD(15000, false) }, want: "$15,000.00"},
		{name: "USD khmer", call: func() (string, error) { return khmerfmt.FormatUSD(15000.25, true) }, want: "$១៥,០០០.២៥"},
		{name: "generic KHR", call: func() (string, error) { return khmerfmt.FormatMoney("KHR", 15000, nil) }, want: "១៥,០០០ ៛"},
		{name: "generic USD", call: func() (string, error) { return khmerfmt.FormatMoney("USD", 15000, nil) }, want: "$15,000.00"},
		{name: "generic override", call: func() (string, error) { return khmerfmt.FormatMoney("usd", "15000.25", &yes) }, want: "$១៥,០០០.២៥"},
		{name: "spell KHR", call: func() (string, error) { return khmerfmt.SpellKHR(15000) }, want: "មួយម៉ឺនប្រាំពាន់ រៀល"},
		{name: "spell USD whole", call: func() (string, error) { return khmerfmt.SpellUSD(15000) }, want: "មួយម៉ឺនប្រាំពាន់ ដុល្លារ"},
		{name: "spell USD cents", call: func() (string, error) { return khmerfmt.SpellUSD(123.45) }, want: "មួយរយម្ភៃបី ដុល្លារ និង សែសិបប្រាំ សេន"},
		{name: "spell USD carry", call: func() (string, error) { return khmerfmt.SpellUSD(19.995) }, want: "ម្ភៃ ដុល្លារ"},
		{name: "spell generic", call: func() (string, error) { return khmerfmt.SpellMoney("khr", uint32(100)) }, want: "មួយរយ រៀល"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoney_Errors(t *testing.T) {
	_, err := khmerfmt.FormatMoney("EUR", 10, nil)
	assert.ErrorIs(t, err, khmerfmt.ErrUnsupportedCurrency)

	_, err = khmerfmt.FormatKHR("abc", true)
	assert.ErrorIs(t, err, khmerfmt.ErrInvalidAmount)
}

func TestTime(t *testing.T) {
	for _, text := range []string{"1:22 PM", "13:22"} {
		got, err := khmerfmt.FormatTime(text, khmerfmt.ModeDigits)
		require.NoError(t, err)
		assert.Equal(t, "ម៉ោង១ និង ២២ នាទី រសៀល", got, "input %q", text)

		got, err = khmerfmt.FormatTime(text, khmerfmt.ModeWords)
		require.NoError(t, err)
		assert.Equal(t, "ម៉ោងមួយ និង ម្ភៃពីរ នាទី រសៀល", got, "input %q", text)
	}
}

func TestFormatTimeFromInstant(t *testing.T) {
	instant := time.Date(2025, 1, 1, 13, 22, 0, 0, time.FixedZone("ICT", 7*60*60))

	got, err := khmerfmt.FormatTimeFromInstant(instant, khmerfmt.ModeWords)
	require.NoError(t, err)
	assert.Equal(t, "ម៉ោងមួយ និង ម្ភៃពីរ នាទី រសៀល", got)
}

func TestFormatTimeNow(t *testing.T) {
	got, err := khmerfmt.FormatTimeNow(khmerfmt.ModeDigits, "UTC")
	require.NoError(t, err)
	assert.Contains(t, got, "ម៉ោង")

	_, err = khmerfmt.FormatTimeNow(khmerfmt.ModeDigits, "Not/A_Real_Timezone")
	assert.ErrorIs(t, err, khmerfmt.ErrInvalidTimezone)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "១៥,០០០", khmerfmt.ToKhmerDigits("15,000"))

	got, err := khmerfmt.SpellNumber(0)
	require.NoError(t, err)
	assert.Equal(t, "សូន្យ", got)

	_, err = khmerfmt.SpellNumber(-1)
	assert.ErrorIs(t, err, khmerfmt.ErrUnsupportedNumber)
}
