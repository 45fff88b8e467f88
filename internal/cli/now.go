package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/jbonatakis/dayboard/internal/dashboard"
	"github.com/jbonatakis/dayboard/internal/schedule"
)

// nowFunc is the wall clock used by commands that resolve against "now".
var nowFunc = time.Now

type nowItem struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Title     string `json:"title"`
}

type nowReport struct {
	Now              time.Time `json:"now"`
	Offset           string    `json:"offset,omitempty"`
	Active           *nowItem  `json:"active"`
	Next             *nowItem  `json:"next"`
	ElapsedPercent   float64   `json:"elapsedPercent"`
	RemainingSeconds int64     `json:"remainingSeconds"`
}

func runNow(args []string) error {
	fs := flag.NewFlagSet("now", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	at := fs.String("at", "", "resolve at HH:mm today instead of the current time")
	offsetStr := fs.String("offset", "", "simulated offset added to the time, e.g. 30m")
	asJSON := fs.Bool("json", false, "print JSON")

	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if fs.NArg() != 0 {
		return UsageError{Message: "now takes only flags (no positional args)"}
	}

	base := nowFunc()
	if *at != "" {
		ct, err := schedule.ParseClockTime(*at)
		if err != nil {
			return UsageError{Message: fmt.Sprintf("invalid --at: %v", err)}
		}
		base = ct.On(base)
	}
	var offset time.Duration
	if *offsetStr != "" {
		d, err := time.ParseDuration(*offsetStr)
		if err != nil || d < 0 {
			return UsageError{Message: fmt.Sprintf("invalid --offset %q", *offsetStr)}
		}
		offset = d
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	snap := dashboard.Snapshot{
		Now:    base.Add(offset),
		Offset: offset,
	}
	snap.State = schedule.Resolve(a.schedule.Items, snap.Now)

	if *asJSON {
		return writeNowJSON(os.Stdout, snap)
	}
	writeNowText(os.Stdout, snap)
	return nil
}

func toNowItem(it *schedule.Item) *nowItem {
	if it == nil {
		return nil
	}
	return &nowItem{
		ID:        it.ID,
		StartTime: it.Start.String(),
		EndTime:   it.End.String(),
		Title:     it.Title,
	}
}

func writeNowJSON(w io.Writer, snap dashboard.Snapshot) error {
	report := nowReport{
		Now:              snap.Now,
		Active:           toNowItem(snap.State.Active),
		Next:             toNowItem(snap.State.Next),
		ElapsedPercent:   snap.State.ElapsedFraction,
		RemainingSeconds: int64(snap.State.Remaining / time.Second),
	}
	if snap.Offset > 0 {
		report.Offset = snap.Offset.String()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func writeNowText(w io.Writer, snap dashboard.Snapshot) {
	now := snap.Now.Format("2006-01-02 15:04:05")
	if snap.Offset > 0 {
		now += fmt.Sprintf(" (simulated +%s)", snap.Offset)
	}
	fmt.Fprintf(w, "now:       %s\n", now)

	state := snap.State
	if state.Active == nil {
		fmt.Fprintln(w, "active:    none")
		return
	}
	fmt.Fprintf(w, "active:    %s (%s-%s)\n", state.Active.Title, state.Active.Start, state.Active.End)
	fmt.Fprintf(w, "time left: %s (%s)\n", dashboard.FormatCountdown(state.Remaining), dashboard.FormatPercent(state.ElapsedFraction))
	if state.Next != nil {
		fmt.Fprintf(w, "next:      %s (%s)\n", state.Next.Title, state.Next.Start)
	}
}
