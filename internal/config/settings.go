package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	keyTuiTickIntervalSeconds = "tui.tickIntervalSeconds"
	keyTuiLanguage            = "tui.language"
	keySchedulePath           = "schedule.path"
	keyScheduleStrictTiling   = "schedule.strictTiling"
	keyLogLevel               = "log.level"
	keyLogFile                = "log.file"
)

type RawOptionValue struct {
	Int    *int
	Bool   *bool
	String *string
}

func (v RawOptionValue) set() int {
	n := 0
	if v.Int != nil {
		n++
	}
	if v.Bool != nil {
		n++
	}
	if v.String != nil {
		n++
	}
	return n
}

func (v RawOptionValue) Display() string {
	switch {
	case v.Int != nil:
		return strconv.Itoa(*v.Int)
	case v.Bool != nil:
		return strconv.FormatBool(*v.Bool)
	case v.String != nil:
		return *v.String
	default:
		return ""
	}
}

// LoadLayerValues reads one config file and returns its raw option values.
func LoadLayerValues(path string) (map[string]RawOptionValue, bool, error) {
	if path == "" {
		return map[string]RawOptionValue{}, false, nil
	}
	cfg, present, err := loadConfigFile(path)
	if err != nil {
		return nil, false, err
	}
	return RawOptionValues(cfg), present, nil
}

// RawOptionValues extracts known raw option values from a config layer.
func RawOptionValues(cfg RawConfig) map[string]RawOptionValue {
	values := map[string]RawOptionValue{}

	if cfg.TUI != nil {
		if cfg.TUI.TickIntervalSeconds != nil {
			values[keyTuiTickIntervalSeconds] = RawOptionValue{Int: copyInt(*cfg.TUI.TickIntervalSeconds)}
		}
		if cfg.TUI.Language != nil {
			values[keyTuiLanguage] = RawOptionValue{String: copyString(*cfg.TUI.Language)}
		}
	}
	if cfg.Schedule != nil {
		if cfg.Schedule.Path != nil {
			values[keySchedulePath] = RawOptionValue{String: copyString(*cfg.Schedule.Path)}
		}
		if cfg.Schedule.StrictTiling != nil {
			values[keyScheduleStrictTiling] = RawOptionValue{Bool: copyBool(*cfg.Schedule.StrictTiling)}
		}
	}
	if cfg.Log != nil {
		if cfg.Log.Level != nil {
			values[keyLogLevel] = RawOptionValue{String: copyString(*cfg.Log.Level)}
		}
		if cfg.Log.File != nil {
			values[keyLogFile] = RawOptionValue{String: copyString(*cfg.Log.File)}
		}
	}

	return values
}

// ParseOptionValue converts command-line text into a typed value for keyPath.
// Ints must be within bounds and strings within choices when the option has them.
func ParseOptionValue(keyPath string, text string) (RawOptionValue, error) {
	opt, ok := LookupOption(keyPath)
	if !ok {
		return RawOptionValue{}, fmt.Errorf("unknown config key %q", keyPath)
	}
	text = strings.TrimSpace(text)

	switch opt.Type {
	case OptionTypeInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return RawOptionValue{}, fmt.Errorf("config key %q expects int value, got %q", keyPath, text)
		}
		if opt.Bounds != nil && (n < opt.Bounds.Min || n > opt.Bounds.Max) {
			return RawOptionValue{}, fmt.Errorf("config key %q must be between %d and %d", keyPath, opt.Bounds.Min, opt.Bounds.Max)
		}
		return RawOptionValue{Int: &n}, nil
	case OptionTypeBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return RawOptionValue{}, fmt.Errorf("config key %q expects bool value, got %q", keyPath, text)
		}
		return RawOptionValue{Bool: &b}, nil
	default:
		if len(opt.Choices) > 0 {
			lowered := strings.ToLower(text)
			for _, choice := range opt.Choices {
				if choice == lowered {
					return RawOptionValue{String: &lowered}, nil
				}
			}
			return RawOptionValue{}, fmt.Errorf("config key %q must be one of %s", keyPath, strings.Join(opt.Choices, ", "))
		}
		return RawOptionValue{String: &text}, nil
	}
}

// ResolvedValue renders the applied value of keyPath.
func ResolvedValue(cfg ResolvedConfig, keyPath string) string {
	switch keyPath {
	case keyTuiTickIntervalSeconds:
		return strconv.Itoa(cfg.TUI.TickIntervalSeconds)
	case keyTuiLanguage:
		return cfg.TUI.Language
	case keySchedulePath:
		return cfg.Schedule.Path
	case keyScheduleStrictTiling:
		return strconv.FormatBool(cfg.Schedule.StrictTiling)
	case keyLogLevel:
		return cfg.Log.Level
	case keyLogFile:
		return cfg.Log.File
	default:
		return ""
	}
}

// SaveConfigValues writes the provided raw option values to disk.
// The file includes schemaVersion and only set keys; empty layers remove the file.
func SaveConfigValues(path string, values map[string]RawOptionValue) error {
	if path == "" {
		return errors.New("config path is empty")
	}

	cfg, hasValues, err := buildRawConfig(values)
	if err != nil {
		return err
	}
	if !hasValues {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove config %s: %w", path, err)
		}
		return nil
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := atomicWriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func buildRawConfig(values map[string]RawOptionValue) (RawConfig, bool, error) {
	var cfg RawConfig
	var tui RawTUI
	var sched RawSchedule
	var logCfg RawLog
	var hasTUI, hasSchedule, hasLog bool

	for key, value := range values {
		if value.set() > 1 {
			return RawConfig{}, false, fmt.Errorf("config key %q has more than one value", key)
		}
		if value.set() == 0 {
			continue
		}

		switch key {
		case keyTuiTickIntervalSeconds:
			if value.Int == nil {
				return RawConfig{}, false, fmt.Errorf("config key %q expects int value", key)
			}
			tui.TickIntervalSeconds = copyInt(*value.Int)
			hasTUI = true
		case keyTuiLanguage:
			if value.String == nil {
				return RawConfig{}, false, fmt.Errorf("config key %q expects string value", key)
			}
			tui.Language = copyString(*value.String)
			hasTUI = true
		case keySchedulePath:
			if value.String == nil {
				return RawConfig{}, false, fmt.Errorf("config key %q expects string value", key)
			}
			sched.Path = copyString(*value.String)
			hasSchedule = true
		case keyScheduleStrictTiling:
			if value.Bool == nil {
				return RawConfig{}, false, fmt.Errorf("config key %q expects bool value", key)
			}
			sched.StrictTiling = copyBool(*value.Bool)
			hasSchedule = true
		case keyLogLevel:
			if value.String == nil {
				return RawConfig{}, false, fmt.Errorf("config key %q expects string value", key)
			}
			logCfg.Level = copyString(*value.String)
			hasLog = true
		case keyLogFile:
			if value.String == nil {
				return RawConfig{}, false, fmt.Errorf("config key %q expects string value", key)
			}
			logCfg.File = copyString(*value.String)
			hasLog = true
		default:
			return RawConfig{}, false, fmt.Errorf("unknown config key %q", key)
		}
	}

	if !hasTUI && !hasSchedule && !hasLog {
		return RawConfig{}, false, nil
	}

	if hasTUI {
		cfg.TUI = &tui
	}
	if hasSchedule {
		cfg.Schedule = &sched
	}
	if hasLog {
		cfg.Log = &logCfg
	}
	version := SchemaVersion
	cfg.SchemaVersion = &version

	return cfg, true, nil
}

func copyInt(v int) *int {
	return &v
}

func copyBool(v bool) *bool {
	return &v
}

func copyString(v string) *string {
	return &v
}
