package schedule

import (
	"fmt"
	"time"
)

const MinutesPerDay = 24 * 60

// ClockTime is a wall-clock time of day with minute precision, written HH:mm.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a strict two-digit "HH:mm" value.
func ParseClockTime(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return ClockTime{}, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	h, ok := twoDigits(s[0], s[1])
	if !ok {
		return ClockTime{}, fmt.Errorf("invalid time %q: hour is not a number", s)
	}
	m, ok := twoDigits(s[3], s[4])
	if !ok {
		return ClockTime{}, fmt.Errorf("invalid time %q: minute is not a number", s)
	}
	ct := ClockTime{Hour: h, Minute: m}
	if !ct.Valid() {
		return ClockTime{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return ct, nil
}

// MustClockTime is ParseClockTime for literals; it panics on bad input.
func MustClockTime(s string) ClockTime {
	ct, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return ct
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func (c ClockTime) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// Minutes returns minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On anchors the clock time to day's calendar date in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, day.Location())
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(b []byte) error {
	ct, err := ParseClockTime(string(b))
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

// MinuteOfDay truncates t to whole minutes since its local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatMinutes renders minutes since midnight as HH:mm; 1440 renders as 24:00.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
