package gateway

import "time"

// SystemClock implements the Clock interface on top of the host clock and
// timezone database.
type SystemClock struct {
	location *time.Location
}

// NewSystemClock creates a clock reporting times in loc. A nil loc uses
// the host's local zone.
func NewSystemClock(loc *time.Location) *SystemClock {
	if loc == nil {
		loc = time.Local
	}
	return &SystemClock{location: loc}
}

// Now returns the current time in the clock's location.
func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// LoadLocation resolves an IANA timezone identifier such as "Asia/Phnom_Penh".
func (c *SystemClock) LoadLocation(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}
