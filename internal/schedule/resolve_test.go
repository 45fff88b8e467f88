package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, start, end string) Item {
	return Item{ID: id, Title: id, Start: MustClockTime(start), End: MustClockTime(end)}
}

func at(day int, hour, minute, second int) time.Time {
	return time.Date(2025, time.June, day, hour, minute, second, 0, time.Local)
}

func TestResolveOvernightWindow(t *testing.T) {
	items := []Item{item("sleep", "22:00", "06:00")}

	tests := []struct {
		name   string
		now    time.Time
		active bool
	}{
		{name: "late evening", now: at(15, 23, 30, 0), active: true},
		{name: "early morning", now: at(16, 1, 0, 0), active: true},
		{name: "start boundary", now: at(15, 22, 0, 0), active: true},
		{name: "end boundary", now: at(16, 6, 0, 0), active: false},
		{name: "after window", now: at(16, 7, 0, 0), active: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := Resolve(items, tc.now)
			assert.Equal(t, tc.active, state.HasActive())
		})
	}
}

func TestResolveSameDayWindow(t *testing.T) {
	items := []Item{item("work", "09:00", "11:00"), item("break", "11:00", "11:15")}

	state := Resolve(items, at(15, 10, 30, 0))
	require.True(t, state.HasActive())
	assert.Equal(t, "work", state.Active.ID)
	assert.Equal(t, 0, state.ActiveIndex)
	assert.Equal(t, "break", state.Next.ID)
	assert.Equal(t, 1, state.NextIndex)
	assert.InDelta(t, 75.0, state.ElapsedFraction, 1e-9)
	assert.Equal(t, 30*time.Minute, state.Remaining)
	assert.Equal(t, at(15, 9, 0, 0), state.WindowStart)
	assert.Equal(t, at(15, 11, 0, 0), state.WindowEnd)
}

func TestResolveNextWrapsToFirst(t *testing.T) {
	items := []Item{item("a", "06:00", "22:00"), item("b", "22:00", "06:00")}

	state := Resolve(items, at(15, 23, 0, 0))
	require.True(t, state.HasActive())
	assert.Equal(t, "b", state.Active.ID)
	assert.Equal(t, "a", state.Next.ID)
	assert.Equal(t, 0, state.NextIndex)
}

func TestResolveEmptySchedule(t *testing.T) {
	state := Resolve(nil, at(15, 12, 0, 0))
	assert.Nil(t, state.Active)
	assert.Nil(t, state.Next)
	assert.Equal(t, -1, state.ActiveIndex)
	assert.Equal(t, -1, state.NextIndex)
	assert.Zero(t, state.ElapsedFraction)
	assert.Zero(t, state.Remaining)
}

func TestResolveGapHasNoActiveItem(t *testing.T) {
	items := []Item{item("a", "09:00", "10:00"), item("b", "11:00", "12:00")}

	state := Resolve(items, at(15, 10, 30, 0))
	assert.False(t, state.HasActive())
	assert.Nil(t, state.Next)
}

func TestResolveOverlapFirstMatchWins(t *testing.T) {
	items := []Item{item("a", "09:00", "12:00"), item("b", "10:00", "11:00")}

	state := Resolve(items, at(15, 10, 30, 0))
	require.True(t, state.HasActive())
	assert.Equal(t, "a", state.Active.ID)
}

func TestResolveSingleFullDayItem(t *testing.T) {
	items := []Item{item("day", "05:00", "05:00")}

	for _, now := range []time.Time{at(15, 5, 0, 0), at(15, 12, 0, 0), at(16, 4, 59, 59)} {
		state := Resolve(items, now)
		require.True(t, state.HasActive(), "now=%s", now)
		assert.Equal(t, "day", state.Next.ID)
		assert.Equal(t, 24*time.Hour, state.WindowEnd.Sub(state.WindowStart))
		assert.GreaterOrEqual(t, state.ElapsedFraction, 0.0)
		assert.Less(t, state.ElapsedFraction, 100.0)
	}
}

func TestResolveTilingScheduleHasExactlyOneActive(t *testing.T) {
	items := Default().Items
	require.Empty(t, CheckTiling(items))

	day := at(15, 0, 0, 0)
	for minute := 0; minute < MinutesPerDay; minute++ {
		now := day.Add(time.Duration(minute)*time.Minute + 30*time.Second)

		matches := 0
		for _, it := range items {
			if it.Contains(MinuteOfDay(now)) {
				matches++
			}
		}
		require.Equal(t, 1, matches, "minute %d", minute)

		state := Resolve(items, now)
		require.True(t, state.HasActive(), "minute %d", minute)
		assert.Equal(t, (state.ActiveIndex+1)%len(items), state.NextIndex)
		assert.Same(t, &items[state.NextIndex], state.Next)
	}
}

func TestProgressSubMinutePrecision(t *testing.T) {
	it := item("work", "09:00", "09:01")

	fraction, remaining := Progress(it, at(15, 9, 0, 30))
	assert.InDelta(t, 50.0, fraction, 1e-9)
	assert.Equal(t, 30*time.Second, remaining)
}

func TestProgressMonotonicAndCompletes(t *testing.T) {
	for _, it := range []Item{item("day", "09:00", "11:00"), item("night", "22:00", "06:00")} {
		start, end := Window(it, it.Start.On(at(15, 0, 0, 0)))
		prev := -1.0
		for now := start; now.Before(end); now = now.Add(7 * time.Minute) {
			fraction, remaining := Progress(it, now)
			assert.GreaterOrEqual(t, fraction, prev, "%s at %s", it.ID, now)
			assert.GreaterOrEqual(t, fraction, 0.0)
			assert.LessOrEqual(t, fraction, 100.0)
			assert.Positive(t, remaining)
			prev = fraction
		}

		fraction, remaining := Progress(it, end)
		assert.Equal(t, 100.0, fraction, it.ID)
		assert.Zero(t, remaining, it.ID)

		fraction, remaining = Progress(it, end.Add(time.Second))
		assert.Equal(t, 100.0, fraction, it.ID)
		assert.Zero(t, remaining, it.ID)
	}
}

func TestProgressOvernightAnchoring(t *testing.T) {
	it := item("sleep", "22:00", "06:00")

	start, end := Window(it, at(16, 1, 0, 0))
	assert.Equal(t, at(15, 22, 0, 0), start)
	assert.Equal(t, at(16, 6, 0, 0), end)

	start, end = Window(it, at(15, 23, 0, 0))
	assert.Equal(t, at(15, 22, 0, 0), start)
	assert.Equal(t, at(16, 6, 0, 0), end)

	fraction, remaining := Progress(it, at(16, 2, 0, 0))
	assert.InDelta(t, 50.0, fraction, 1e-9)
	assert.Equal(t, 4*time.Hour, remaining)
}

func TestProgressDegenerateWindow(t *testing.T) {
	fraction, remaining := progress(at(15, 9, 0, 0), at(15, 9, 0, 0), at(15, 8, 0, 0))
	assert.Equal(t, 100.0, fraction)
	assert.Zero(t, remaining)

	fraction, remaining = progress(at(15, 10, 0, 0), at(15, 9, 0, 0), at(15, 8, 0, 0))
	assert.Equal(t, 100.0, fraction)
	assert.Zero(t, remaining)
}
