package cli

import (
	"fmt"
	"time"

	"github.com/jbonatakis/dayboard/internal/clock"
	"github.com/jbonatakis/dayboard/internal/config"
	"github.com/jbonatakis/dayboard/internal/dashboard"
	"github.com/jbonatakis/dayboard/internal/i18n"
	"github.com/jbonatakis/dayboard/internal/logging"
	"github.com/jbonatakis/dayboard/internal/schedule"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const builtinSource = "built-in"

// app holds what every command needs after startup: resolved config, a
// logger, and the loaded schedule.
type app struct {
	cfg      config.ResolvedConfig
	logger   *zap.Logger
	schedule schedule.Schedule
	source   string
}

var appFs = afero.NewOsFs()

func loadApp() (*app, error) {
	cfg, err := config.LoadConfig(projectRoot())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	s, source, err := readSchedule(cfg)
	if err != nil {
		logger.Error("schedule load failed", zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}
	if err := schedule.Check(source, s, cfg.Schedule.StrictTiling); err != nil {
		logger.Error("schedule rejected", zap.String("source", source), zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}

	logger.Info("dayboard started",
		zap.String("schedule", source),
		zap.Int("items", len(s.Items)),
		zap.Int("tickSeconds", cfg.TUI.TickIntervalSeconds),
		zap.String("language", cfg.TUI.Language),
		zap.Bool("strictTiling", cfg.Schedule.StrictTiling),
	)
	return &app{cfg: cfg, logger: logger, schedule: s, source: source}, nil
}

// readSchedule loads the configured schedule file, or the built-in plan when
// no path is configured. Validation is left to the caller.
func readSchedule(cfg config.ResolvedConfig) (schedule.Schedule, string, error) {
	path := cfg.Schedule.Path
	if path == "" {
		return schedule.Default(), builtinSource, nil
	}
	s, err := schedule.Load(appFs, path)
	if err != nil {
		return schedule.Schedule{}, path, fmt.Errorf("load schedule %s: %w", path, err)
	}
	return s, path, nil
}

func (a *app) translator() (*i18n.Translator, error) {
	tr, err := i18n.New(a.cfg.TUI.Language)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	return tr, nil
}

func (a *app) scheduler(c clock.Clock) *dashboard.Scheduler {
	interval := time.Duration(a.cfg.TUI.TickIntervalSeconds) * time.Second
	return dashboard.NewScheduler(a.schedule.Items, clock.NewSimulator(c), interval, a.logger)
}

func (a *app) close() {
	a.logger.Info("dayboard stopped")
	_ = a.logger.Sync()
}
