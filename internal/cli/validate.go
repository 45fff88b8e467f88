package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jbonatakis/dayboard/internal/config"
	"github.com/jbonatakis/dayboard/internal/schedule"
)

// runValidate reports structural problems and window gaps/overlaps. Tiling
// findings fail validation only when strict tiling is configured.
func runValidate() error {
	cfg, err := config.LoadConfig(projectRoot())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s, source, err := readSchedule(cfg)
	if err != nil {
		return err
	}

	errs := schedule.Validate(s)
	tiling := schedule.CheckTiling(s.Items)
	if cfg.Schedule.StrictTiling {
		errs = append(errs, tiling...)
		tiling = nil
	}

	if len(errs) == 0 {
		for _, e := range tiling {
			fmt.Fprintf(os.Stdout, "warning: %s: %s\n", e.Path, e.Message)
		}
		fmt.Fprintln(os.Stdout, "OK")
		return nil
	}

	fmt.Fprintf(os.Stdout, "invalid schedule: %s\n", source)
	for _, e := range errs {
		fmt.Fprintf(os.Stdout, "- %s: %s\n", e.Path, e.Message)
	}
	for _, e := range tiling {
		fmt.Fprintf(os.Stdout, "warning: %s: %s\n", e.Path, e.Message)
	}
	return errors.New("validation failed")
}
