package domain

import "errors"

// Validation errors returned by the formatters. Call sites wrap them with
// fmt.Errorf("%w: ...") so callers can match with errors.Is.
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidTimeFormat   = errors.New("invalid time format")
	ErrInvalidHour         = errors.New("invalid hour")
	ErrInvalidMinute       = errors.New("invalid minute")
	ErrInvalidMode         = errors.New("invalid mode")
	ErrInvalidTimezone     = errors.New("invalid timezone")
	ErrNumberOutOfRange    = errors.New("number out of range")
	ErrUnsupportedNumber   = errors.New("unsupported number")

	// ErrUnsupportedKind is returned for batch requests of an unknown kind.
	ErrUnsupportedKind = errors.New("unsupported request kind")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidAmount, "invalid_amount"},
	{ErrUnsupportedCurrency, "unsupported_currency"},
	{ErrInvalidTimeFormat, "invalid_time_format"},
	{ErrInvalidHour, "invalid_hour"},
	{ErrInvalidMinute, "invalid_minute"},
	{ErrInvalidMode, "invalid_mode"},
	{ErrInvalidTimezone, "invalid_timezone"},
	{ErrNumberOutOfRange, "number_out_of_range"},
	{ErrUnsupportedNumber, "unsupported_number"},
	{ErrUnsupportedKind, "unsupported_kind"},
}

// ErrorKind returns a stable snake_case name for a validation error,
// "internal" for anything else and "" for nil.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "internal"
}

// IsValidationError reports whether err wraps one of the validation errors.
func IsValidationError(err error) bool {
	kind := ErrorKind(err)
	return kind != "" && kind != "internal"
}
