package cli

import (
	"fmt"
	"os"
)

type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

func Usage() string {
	return `dayboard: daily schedule dashboard

Usage:
  dayboard [tui]
  dayboard now [--at HH:mm] [--offset <duration>] [--json]
  dayboard watch [--skip-every <ticks>]
  dayboard list
  dayboard validate
  dayboard export [--out <file.ics>]
  dayboard config list
  dayboard config set <key> <value> [--global]
  dayboard config unset <key> [--global]

Keys (c) and (n) in the dashboard skip to the next item.
`
}

func Run(args []string) error {
	if len(args) == 0 {
		return runTUI()
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, Usage())
		return nil
	case "tui":
		if len(args) != 1 {
			return UsageError{Message: "tui takes no arguments"}
		}
		return runTUI()
	case "now":
		return runNow(args[1:])
	case "watch":
		return runWatch(args[1:])
	case "list":
		if len(args) != 1 {
			return UsageError{Message: "list takes no arguments"}
		}
		return runList()
	case "validate":
		if len(args) != 1 {
			return UsageError{Message: "validate takes no arguments"}
		}
		return runValidate()
	case "export":
		return runExport(args[1:])
	case "config":
		return runConfig(args[1:])
	default:
		return UsageError{Message: fmt.Sprintf("unknown command: %q", args[0])}
	}
}

func projectRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
