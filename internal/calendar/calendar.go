package calendar

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/jbonatakis/dayboard/internal/schedule"
)

const (
	prodID  = "-//dayboard//daily schedule//EN"
	calName = "Dayboard"

	// floatingLayout is a DATE-TIME without a zone: RFC 5545 "floating" local
	// time, which is exactly how schedule windows are defined.
	floatingLayout = "20060102T150405"
)

// uidNamespace seeds deterministic event UIDs so re-exports update the same
// events instead of duplicating them.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jbonatakis/dayboard"))

// Build returns a calendar with one daily-recurring event per item, with the
// first occurrence on day's date. stamp is written as DTSTAMP.
func Build(items []schedule.Item, day time.Time, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText("X-WR-CALNAME", calName)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	for _, it := range items {
		cal.Children = append(cal.Children, newEvent(it, day, stamp).Component)
	}
	return cal
}

func Encode(w io.Writer, items []schedule.Item, day time.Time, stamp time.Time) error {
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(Build(items, day, stamp)); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EventUID is stable for a given item id.
func EventUID(id string) string {
	return uuid.NewSHA1(uidNamespace, []byte(id)).String() + "@dayboard"
}

func newEvent(it schedule.Item, day time.Time, stamp time.Time) *ical.Event {
	start, end := occurrence(it, day)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, EventUID(it.ID))
	event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
	setFloating(event, ical.PropDateTimeStart, start)
	setFloating(event, ical.PropDateTimeEnd, end)
	event.Props.SetText(ical.PropSummary, it.Title)
	if desc := description(it); desc != "" {
		event.Props.SetText(ical.PropDescription, desc)
	}
	// URL and RRULE are set manually: SetText would add VALUE=TEXT.
	if it.Image != "" {
		setRaw(event, ical.PropURL, it.Image)
	}
	setRaw(event, ical.PropRecurrenceRule, "FREQ=DAILY")

	return event
}

// occurrence is the first instance of the window starting on day. Windows that
// cross midnight, or span the full day, end on the following date.
func occurrence(it schedule.Item, day time.Time) (time.Time, time.Time) {
	start := it.Start.On(day)
	end := it.End.On(day)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

func setFloating(event *ical.Event, name string, t time.Time) {
	setRaw(event, name, t.Format(floatingLayout))
}

func setRaw(event *ical.Event, name string, value string) {
	prop := ical.NewProp(name)
	prop.Value = value
	event.Props.Set(prop)
}

func description(it schedule.Item) string {
	var b strings.Builder
	b.WriteString(it.Description)
	for _, task := range it.Subtasks {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(task)
	}
	return b.String()
}
