package dashboard

import (
	"context"
	"time"

	"github.com/jbonatakis/dayboard/internal/clock"
	"github.com/jbonatakis/dayboard/internal/schedule"
	"go.uber.org/zap"
)

const DefaultInterval = time.Second

// Snapshot is what one tick publishes to the presentation layer.
type Snapshot struct {
	Now    time.Time
	Offset time.Duration
	State  schedule.ResolvedState
}

// Scheduler drives the tick -> resolve -> publish loop. The item list is
// read-only; the simulator is the only mutable state and is touched from the
// loop's goroutine only.
type Scheduler struct {
	items    []schedule.Item
	sim      *clock.Simulator
	interval time.Duration
	logger   *zap.Logger

	lastActiveID string
	seen         bool
}

func NewScheduler(items []schedule.Item, sim *clock.Simulator, interval time.Duration, logger *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{items: items, sim: sim, interval: interval, logger: logger}
}

func (s *Scheduler) Items() []schedule.Item {
	return s.items
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Step advances the clock and recomputes the resolved state.
func (s *Scheduler) Step() Snapshot {
	now := s.sim.Tick()
	snap := Snapshot{
		Now:    now,
		Offset: s.sim.Offset(),
		State:  schedule.Resolve(s.items, now),
	}
	s.noteTransition(snap)
	return snap
}

// Skip jumps the simulated clock to just past the start of the snapshot's next
// item. The new position shows up on the following Step.
func (s *Scheduler) Skip(snap Snapshot) time.Duration {
	if !snap.State.HasActive() || snap.State.Next == nil {
		s.logger.Debug("skip ignored: no active item")
		return s.sim.Offset()
	}
	offset := s.sim.SkipTo(snap.State.Active, snap.State.Next, snap.Now)
	s.logger.Info("skipped to next item",
		zap.String("from", snap.State.Active.ID),
		zap.String("to", snap.State.Next.ID),
		zap.Duration("offset", offset),
	)
	return offset
}

// Run publishes a snapshot immediately and then once per interval until ctx is
// done. It never returns an error for cancellation.
func (s *Scheduler) Run(ctx context.Context, publish func(Snapshot)) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	publish(s.Step())
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped")
			return nil
		case <-ticker.C:
			publish(s.Step())
		}
	}
}

func (s *Scheduler) noteTransition(snap Snapshot) {
	id := ""
	if snap.State.Active != nil {
		id = snap.State.Active.ID
	}
	if s.seen && id == s.lastActiveID {
		return
	}
	s.seen = true
	s.lastActiveID = id
	if id == "" {
		s.logger.Info("no active item", zap.Time("now", snap.Now))
		return
	}
	s.logger.Info("active item changed",
		zap.String("id", id),
		zap.String("title", snap.State.Active.Title),
		zap.Time("now", snap.Now),
	)
}
