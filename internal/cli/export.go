package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jbonatakis/dayboard/internal/calendar"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	out := fs.String("out", "", "write the calendar to a file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if fs.NArg() != 0 {
		return UsageError{Message: "export takes only flags (no positional args)"}
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	now := nowFunc()
	var buf bytes.Buffer
	if err := calendar.Encode(&buf, a.schedule.Items, now, now); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	if *out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := afero.WriteFile(appFs, *out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write calendar %s: %w", *out, err)
	}
	a.logger.Info("calendar exported", zap.String("path", *out), zap.Int("events", len(a.schedule.Items)))
	fmt.Fprintf(os.Stdout, "exported %d events: %s\n", len(a.schedule.Items), *out)
	return nil
}
