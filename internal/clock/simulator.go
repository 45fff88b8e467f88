package clock

import (
	"time"

	"github.com/jbonatakis/dayboard/internal/schedule"
)

// SkipBuffer lands a skip strictly inside the next window rather than on its
// start boundary.
const SkipBuffer = time.Minute

// Simulator layers an accumulated offset on top of a real clock. The offset
// only ever grows and is never persisted.
//
// A Simulator is not safe for concurrent use; the scheduler loop owns it.
type Simulator struct {
	clock  Clock
	offset time.Duration
}

func NewSimulator(c Clock) *Simulator {
	if c == nil {
		c = Real{}
	}
	return &Simulator{clock: c}
}

// Tick returns the effective time: real now plus offset.
func (s *Simulator) Tick() time.Time {
	return s.clock.Now().Add(s.offset)
}

func (s *Simulator) Offset() time.Duration {
	return s.offset
}

// SkipTo advances the offset so that the effective time lands one minute past
// next's start. current is the effective time the caller last observed.
// Without an active or next item it does nothing. Returns the new offset.
func (s *Simulator) SkipTo(active, next *schedule.Item, current time.Time) time.Duration {
	if active == nil || next == nil {
		return s.offset
	}
	s.offset += MinutesUntil(current, next.Start) + SkipBuffer
	return s.offset
}

// MinutesUntil is the whole-minute distance from current (seconds truncated)
// to the next occurrence of target. A target at or before current is tomorrow.
func MinutesUntil(current time.Time, target schedule.ClockTime) time.Duration {
	diff := target.Minutes() - schedule.MinuteOfDay(current)
	if diff <= 0 {
		diff += schedule.MinutesPerDay
	}
	return time.Duration(diff) * time.Minute
}
