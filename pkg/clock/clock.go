// Package clock implements wall-clock "HH:MM" arithmetic for bedtimes and
// wake times that may fall on either side of midnight.
package clock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const (
	MinutesPerDay = 24 * 60

	// lateBedtimeMinutes is 00:30, the earliest bedtime counted as late.
	lateBedtimeMinutes = 30
	// earlyBedtimeHour is the first hour that no longer counts as an early bedtime.
	earlyBedtimeHour = 22
	// morningHour splits the comparable scale: earlier hours belong to the night before.
	morningHour = 12
)

// ErrInvalidFormat is returned when a string is not a valid HH:MM time of day.
var ErrInvalidFormat = errors.New("invalid time format, expected HH:MM")

var pattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Parse parses "H:MM" or "HH:MM" (hour 0-23, minute 00-59).
func Parse(s string) (Clock, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return Clock{Hour: hour, Minute: minute}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for constants and tests.
func MustParse(s string) Clock {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether s parses as a time of day.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// FromMinutes builds a Clock from minutes after midnight, wrapping around the day.
func FromMinutes(minutes int) Clock {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return Clock{Hour: minutes / 60, Minute: minutes % 60}
}

// String formats the clock as zero-padded HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes after midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// ComparableMinutes places times before noon after the evening on a single
// axis, so 23:30 (1410) and 00:15 (1455) sit 45 minutes apart.
// Use it for bedtimes only; wake times compare on the plain scale.
func (c Clock) ComparableMinutes() int {
	m := c.Minutes()
	if c.Hour < morningHour {
		m += MinutesPerDay
	}
	return m
}

// Add shifts the clock by the given number of minutes, wrapping around midnight.
func (c Clock) Add(minutes int) Clock {
	return FromMinutes(c.Minutes() + minutes)
}

// IsLateBedtime reports whether going to bed at c counts as late (00:30 or later).
func (c Clock) IsLateBedtime() bool {
	return c.Hour > 0 || c.Minute >= lateBedtimeMinutes
}

// IsEarlyBedtime reports whether going to bed at c counts as early (before 22:00).
func (c Clock) IsEarlyBedtime() bool {
	return c.Hour < earlyBedtimeHour
}

// Duration returns hours slept between sleep and wake. A wake time at or
// before the bedtime is taken to be on the next day, so the result is in
// (0, 24] and equal times mean a full 24 hours.
func Duration(sleep, wake Clock) float64 {
	diff := wake.Minutes() - sleep.Minutes()
	if diff <= 0 {
		diff += MinutesPerDay
	}
	return float64(diff) / 60
}

// ParseDuration parses both times and returns Duration.
func ParseDuration(sleepTime, wakeTime string) (float64, error) {
	sleep, err := Parse(sleepTime)
	if err != nil {
		return 0, err
	}
	wake, err := Parse(wakeTime)
	if err != nil {
		return 0, err
	}
	return Duration(sleep, wake), nil
}
