package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RenderMode selects how numbers inside a formatted string are written.
type RenderMode string

const (
	ModeDigits RenderMode = "digits"
	ModeWords  RenderMode = "words"
)

// ParseRenderMode validates a mode name. Names are case-sensitive.
func ParseRenderMode(s string) (RenderMode, error) {
	switch m := RenderMode(s); m {
	case ModeDigits, ModeWords:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q, must be 'digits' or 'words'", ErrInvalidMode, s)
	}
}

// DayPeriod is the Khmer part-of-day label derived from the 24-hour clock.
type DayPeriod string

const (
	PeriodNight     DayPeriod = "យប់"
	PeriodMorning   DayPeriod = "ព្រឹក"
	PeriodAfternoon DayPeriod = "រសៀល"
	PeriodEvening   DayPeriod = "ល្ងាច"
)

// TimeOfDay is a wall-clock time in 24-hour form.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

var timePattern = regexp.MustCompile(`(?i)^(\d{1,2})\s*:\s*(\d{2})\s*(AM|PM)?$`)

// ParseTimeOfDay accepts "H:MM", "HH:MM" and "H:MM AM/PM" (marker is
// case-insensitive, spaces around the colon are allowed).
func ParseTimeOfDay(text string) (TimeOfDay, error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q, use 'H:MM', 'HH:MM' or 'H:MM AM/PM'", ErrInvalidTimeFormat, text)
	}

	// The pattern guarantees at most two ASCII digits in each group.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	marker := strings.ToUpper(m[3])

	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %d, must be 00-59", ErrInvalidMinute, minute)
	}

	if marker == "" {
		if hour < 0 || hour > 23 {
			return TimeOfDay{}, fmt.Errorf("%w: %d, must be 0-23 for 24-hour input", ErrInvalidHour, hour)
		}
		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: %d, must be 1-12 when using AM/PM", ErrInvalidHour, hour)
	}

	hour24 := hour % 12
	if marker == "PM" {
		hour24 += 12
	}
	return TimeOfDay{Hour: hour24, Minute: minute}, nil
}

// Hour12 returns the hour on a 12-hour dial; midnight and noon are both 12.
func (t TimeOfDay) Hour12() int {
	if h := t.Hour % 12; h != 0 {
		return h
	}
	return 12
}

// Period returns the part of the day the time falls in.
func (t TimeOfDay) Period() DayPeriod {
	switch {
	case t.Hour <= 5:
		return PeriodNight
	case t.Hour <= 11:
		return PeriodMorning
	case t.Hour <= 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// String returns the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
