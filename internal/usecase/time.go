package usecase

import (
	"fmt"
	"strconv"
	"time"

	"khmer-format/internal/domain"
	"khmer-format/internal/numeral"
)

// TimeFormatter renders clock times in Khmer with a part-of-day label,
// e.g. "ម៉ោង១ និង ២២ នាទី រសៀល".
type TimeFormatter struct {
	clock Clock
}

// NewTimeFormatter creates a new instance of the formatter. The clock is
// only consulted by FormatNow.
func NewTimeFormatter(clock Clock) *TimeFormatter {
	return &TimeFormatter{clock: clock}
}

// Format parses a "H:MM[ AM/PM]" string and renders it in the given mode.
func (f *TimeFormatter) Format(text string, mode string) (string, error) {
	t, err := domain.ParseTimeOfDay(text)
	if err != nil {
		return "", err
	}

	m, err := domain.ParseRenderMode(mode)
	if err != nil {
		return "", err
	}

	return f.render(t, m)
}

// FormatNow renders the current wall-clock time. An empty timezone uses the
// clock's own location.
func (f *TimeFormatter) FormatNow(mode string, timezone string) (string, error) {
	var loc *time.Location
	if timezone != "" {
		var err error
		if loc, err = f.clock.LoadLocation(timezone); err != nil {
			return "", fmt.Errorf("%w: %q: %v", domain.ErrInvalidTimezone, timezone, err)
		}
	}

	now := f.clock.Now()
	if loc != nil {
		now = now.In(loc)
	}

	return f.FormatInstant(now, mode)
}

// FormatInstant renders the hour and minute of t in t's own location.
func (f *TimeFormatter) FormatInstant(t time.Time, mode string) (string, error) {
	return f.Format(t.Format("15:04"), mode)
}

func (f *TimeFormatter) render(t domain.TimeOfDay, mode domain.RenderMode) (string, error) {
	var hour, minute string

	switch mode {
	case domain.ModeWords:
		var err error
		if hour, err = numeral.SpellClock(t.Hour12()); err != nil {
			return "", err
		}
		if minute, err = numeral.SpellClock(t.Minute); err != nil {
			return "", err
		}
	default:
		hour = numeral.ToKhmerDigits(strconv.Itoa(t.Hour12()))
		minute = numeral.ToKhmerDigits(strconv.Itoa(t.Minute))
	}

	return numeral.WordHour + hour + " " + numeral.WordAnd + " " + minute + " " + numeral.WordMinute + " " + string(t.Period()), nil
}
