package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jbonatakis/dayboard/internal/clock"
	"github.com/jbonatakis/dayboard/internal/dashboard"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"
)

// barTotal gives the progress bar per-mille resolution.
const barTotal = 1000

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	skipEvery := fs.Int("skip-every", 0, "skip to the next item every N ticks (0 disables)")

	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if fs.NArg() != 0 {
		return UsageError{Message: "watch takes only flags (no positional args)"}
	}
	if *skipEvery < 0 {
		return UsageError{Message: "--skip-every must be >= 0"}
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch(ctx, a.scheduler(clock.Real{}), os.Stdout, *skipEvery, a.logger)
}

// watch renders one progress bar per active item until ctx is done. With
// skipEvery > 0 the scheduler skips to the next item every skipEvery ticks.
func watch(ctx context.Context, s *dashboard.Scheduler, out io.Writer, skipEvery int, logger *zap.Logger) error {
	p := mpb.NewWithContext(ctx, mpb.WithOutput(out), mpb.WithWidth(64))

	var (
		bar    *mpb.Bar
		barID  string
		ticks  int
		skips  int
		runErr error
	)
	runErr = s.Run(ctx, func(snap dashboard.Snapshot) {
		active := snap.State.Active
		id := ""
		if active != nil {
			id = active.ID
		}
		if bar == nil || id != barID {
			finishBar(bar)
			bar = nil
			barID = id
			if active != nil {
				name := fmt.Sprintf("%s-%s %s", active.Start, active.End, active.Title)
				b, err := newItemBar(p, name)
				if err != nil {
					// The container is already shutting down.
					logger.Debug("progress bar not added", zap.Error(err))
				}
				bar = b
			}
		}
		if bar != nil {
			bar.SetCurrent(int64(snap.State.ElapsedFraction / 100 * barTotal))
		}

		ticks++
		if skipEvery > 0 && ticks%skipEvery == 0 {
			if snap.State.HasActive() && snap.State.Next != nil {
				s.Skip(snap)
				skips++
			}
		}
	})
	finishBar(bar)
	p.Wait()

	logger.Info("watch finished", zap.Int("ticks", ticks), zap.Int("skips", skips))
	return runErr
}

func newItemBar(p *mpb.Progress, name string) (*mpb.Bar, error) {
	barStyle := mpb.BarStyle().Lbound("╢").Filler("█").Tip("█").Padding("░").Rbound("╟")
	return p.Add(barTotal,
		barStyle.Build(),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name) + 1, C: decor.DindentRight}),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
}

// finishBar leaves an unfinished bar on screen at its last position.
func finishBar(bar *mpb.Bar) {
	if bar != nil && !bar.Completed() {
		bar.Abort(false)
	}
}
