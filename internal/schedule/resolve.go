package schedule

import "time"

// ResolvedState is the per-tick view of the schedule at one instant.
type ResolvedState struct {
	Active      *Item
	ActiveIndex int
	Next        *Item
	NextIndex   int

	// ElapsedFraction is a percentage in [0, 100].
	ElapsedFraction float64
	Remaining       time.Duration

	WindowStart time.Time
	WindowEnd   time.Time
}

func (s ResolvedState) HasActive() bool {
	return s.Active != nil
}

// Resolve finds the item active at now, its cyclic successor, and the progress
// through the active window. The first matching item in list order wins.
func Resolve(items []Item, now time.Time) ResolvedState {
	state := ResolvedState{ActiveIndex: -1, NextIndex: -1}

	idx := ActiveIndex(items, now)
	if idx < 0 {
		return state
	}
	next := (idx + 1) % len(items)

	state.Active = &items[idx]
	state.ActiveIndex = idx
	state.Next = &items[next]
	state.NextIndex = next
	state.WindowStart, state.WindowEnd = Window(items[idx], now)
	state.ElapsedFraction, state.Remaining = progress(state.WindowStart, state.WindowEnd, now)
	return state
}

// ActiveIndex returns the index of the first item whose window contains now,
// or -1. Seconds are ignored for matching.
func ActiveIndex(items []Item, now time.Time) int {
	minute := MinuteOfDay(now)
	for i, it := range items {
		if it.Contains(minute) {
			return i
		}
	}
	return -1
}

// Window anchors the item's window to concrete instants around now.
// Midnight-crossing windows start yesterday when now is in their morning tail
// and end tomorrow otherwise.
func Window(it Item, now time.Time) (time.Time, time.Time) {
	start := it.Start.On(now)
	end := it.End.On(now)
	switch {
	case it.FullDay():
		if now.Before(start) {
			start = start.AddDate(0, 0, -1)
		}
		end = start.AddDate(0, 0, 1)
	case it.CrossesMidnight():
		if now.Before(start) {
			start = start.AddDate(0, 0, -1)
		} else {
			end = end.AddDate(0, 0, 1)
		}
	}
	return start, end
}

// Progress reports the elapsed percentage and remaining time of the item's window
// as seen from now, without checking that the window is active.
func Progress(it Item, now time.Time) (float64, time.Duration) {
	start, end := Window(it, now)
	return progress(start, end, now)
}

func progress(start, end, now time.Time) (float64, time.Duration) {
	total := end.Sub(start)
	remaining := end.Sub(now)
	if remaining <= 0 || total <= 0 {
		return 100, 0
	}
	fraction := float64(now.Sub(start)) / float64(total) * 100
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 100 {
		fraction = 100
	}
	return fraction, remaining
}
