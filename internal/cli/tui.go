package cli

import (
	"github.com/jbonatakis/dayboard/internal/clock"
	"github.com/jbonatakis/dayboard/internal/tui"
)

func runTUI() error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	tr, err := a.translator()
	if err != nil {
		return err
	}
	return tui.Start(a.scheduler(clock.Real{}), tr, a.logger)
}
