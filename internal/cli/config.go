package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jbonatakis/dayboard/internal/config"
)

func runConfig(args []string) error {
	if len(args) == 0 {
		return UsageError{Message: "config requires a subcommand: list | set | unset"}
	}

	rest, global := splitGlobalFlag(args[1:])
	switch args[0] {
	case "list":
		if len(rest) != 0 || global {
			return UsageError{Message: "config list takes no arguments"}
		}
		return runConfigList()
	case "set":
		if len(rest) != 2 {
			return UsageError{Message: "config set requires exactly 2 arguments: <key> <value>"}
		}
		return runConfigSet(rest[0], rest[1], global)
	case "unset":
		if len(rest) != 1 {
			return UsageError{Message: "config unset requires exactly 1 argument: <key>"}
		}
		return runConfigUnset(rest[0], global)
	default:
		return UsageError{Message: fmt.Sprintf("unknown config subcommand: %q", args[0])}
	}
}

// splitGlobalFlag pulls --global out of args wherever it appears.
func splitGlobalFlag(args []string) ([]string, bool) {
	rest := make([]string, 0, len(args))
	global := false
	for _, arg := range args {
		if arg == "--global" || arg == "-global" {
			global = true
			continue
		}
		rest = append(rest, arg)
	}
	return rest, global
}

func runConfigList() error {
	root := projectRoot()
	cfg, err := config.LoadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	envValues := config.RawOptionValues(config.LoadEnvConfig(root))
	projectValues, _, err := config.LoadLayerValues(config.ProjectConfigPath(root))
	if err != nil {
		return err
	}
	globalValues, _, err := config.LoadLayerValues(config.GlobalConfigPath())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
	for _, opt := range config.OptionRegistry() {
		source := "default"
		switch {
		case hasValue(envValues, opt.KeyPath):
			source = "env"
		case hasValue(projectValues, opt.KeyPath):
			source = "project"
		case hasValue(globalValues, opt.KeyPath):
			source = "global"
		}
		value := config.ResolvedValue(cfg, opt.KeyPath)
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", opt.KeyPath, value, source)
	}
	return w.Flush()
}

func hasValue(values map[string]config.RawOptionValue, key string) bool {
	_, ok := values[key]
	return ok
}

func runConfigSet(key, text string, global bool) error {
	if _, ok := config.LookupOption(key); !ok {
		return UsageError{Message: fmt.Sprintf("unknown config key %q", key)}
	}
	value, err := config.ParseOptionValue(key, text)
	if err != nil {
		return UsageError{Message: err.Error()}
	}

	path, err := layerPath(global)
	if err != nil {
		return err
	}
	values, _, err := config.LoadLayerValues(path)
	if err != nil {
		return err
	}
	values[key] = value
	if err := config.SaveConfigValues(path, values); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s = %s (%s)\n", key, value.Display(), path)
	return nil
}

func runConfigUnset(key string, global bool) error {
	if _, ok := config.LookupOption(key); !ok {
		return UsageError{Message: fmt.Sprintf("unknown config key %q", key)}
	}

	path, err := layerPath(global)
	if err != nil {
		return err
	}
	values, _, err := config.LoadLayerValues(path)
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		fmt.Fprintf(os.Stdout, "%s is not set (%s)\n", key, path)
		return nil
	}
	delete(values, key)
	if err := config.SaveConfigValues(path, values); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "unset %s (%s)\n", key, path)
	return nil
}

func layerPath(global bool) (string, error) {
	if global {
		path := config.GlobalConfigPath()
		if path == "" {
			return "", errors.New("cannot locate home directory for global config")
		}
		return path, nil
	}
	return config.ProjectConfigPath(projectRoot()), nil
}
