package schedule

const SchemaVersion = 1

// Schedule is the on-disk representation of a day plan.
type Schedule struct {
	SchemaVersion int    `json:"schemaVersion" yaml:"schemaVersion"`
	Items         []Item `json:"items" yaml:"items" validate:"unique=ID,dive"`
}

// Item is one window of the day. Items are immutable once loaded.
type Item struct {
	ID          string    `json:"id" yaml:"id" validate:"required"`
	Start       ClockTime `json:"startTime" yaml:"startTime"`
	End         ClockTime `json:"endTime" yaml:"endTime"`
	Title       string    `json:"title" yaml:"title" validate:"required"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Subtasks    []string  `json:"subtasks,omitempty" yaml:"subtasks,omitempty" validate:"omitempty,dive,required"`
	Image       string    `json:"image,omitempty" yaml:"image,omitempty" validate:"omitempty,url"`
}

// FullDay reports whether the window covers the whole day (start == end).
func (it Item) FullDay() bool {
	return it.Start.Minutes() == it.End.Minutes()
}

// CrossesMidnight reports whether the window wraps past 00:00.
func (it Item) CrossesMidnight() bool {
	return it.End.Minutes() < it.Start.Minutes()
}

// Contains reports whether minute (minutes since local midnight) falls inside
// the item's window.
func (it Item) Contains(minute int) bool {
	start := it.Start.Minutes()
	end := it.End.Minutes()
	switch {
	case start == end:
		return true
	case end > start:
		return start <= minute && minute < end
	default:
		return minute >= start || minute < end
	}
}

// Duration is the nominal length of the window.
func (it Item) Duration() int {
	start := it.Start.Minutes()
	end := it.End.Minutes()
	if end <= start {
		end += MinutesPerDay
	}
	return end - start
}
