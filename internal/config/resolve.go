package config

import "strings"

// ResolveConfig merges config layers with built-in defaults. Layers are given
// highest precedence first; the first layer that sets a valid value for a key
// wins, then intervals are clamped to bounds.
func ResolveConfig(layers ...RawConfig) ResolvedConfig {
	defaults := DefaultResolvedConfig()

	tickInterval := resolveIntWithBounds(
		pickInt(layers, func(cfg RawConfig) *int {
			if cfg.TUI == nil {
				return nil
			}
			return cfg.TUI.TickIntervalSeconds
		}),
		defaults.TUI.TickIntervalSeconds,
		MinTickIntervalSeconds,
		MaxTickIntervalSeconds,
	)
	language := resolveEnum(
		pickStrings(layers, func(cfg RawConfig) *string {
			if cfg.TUI == nil {
				return nil
			}
			return cfg.TUI.Language
		}),
		defaults.TUI.Language,
		normalizeLanguage,
	)
	schedulePath := resolveString(
		pickStrings(layers, func(cfg RawConfig) *string {
			if cfg.Schedule == nil {
				return nil
			}
			return cfg.Schedule.Path
		}),
		defaults.Schedule.Path,
	)
	strictTiling := resolveBool(
		pickBool(layers, func(cfg RawConfig) *bool {
			if cfg.Schedule == nil {
				return nil
			}
			return cfg.Schedule.StrictTiling
		}),
		defaults.Schedule.StrictTiling,
	)
	logLevel := resolveEnum(
		pickStrings(layers, func(cfg RawConfig) *string {
			if cfg.Log == nil {
				return nil
			}
			return cfg.Log.Level
		}),
		defaults.Log.Level,
		normalizeLogLevel,
	)
	logFile := resolveString(
		pickStrings(layers, func(cfg RawConfig) *string {
			if cfg.Log == nil {
				return nil
			}
			return cfg.Log.File
		}),
		defaults.Log.File,
	)

	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		TUI: ResolvedTUI{
			TickIntervalSeconds: tickInterval,
			Language:            language,
		},
		Schedule: ResolvedSchedule{
			Path:         schedulePath,
			StrictTiling: strictTiling,
		},
		Log: ResolvedLog{
			Level: logLevel,
			File:  logFile,
		},
	}
}

func pickInt(layers []RawConfig, pick func(RawConfig) *int) *int {
	for _, layer := range layers {
		if v := pick(layer); v != nil {
			return v
		}
	}
	return nil
}

func pickBool(layers []RawConfig, pick func(RawConfig) *bool) *bool {
	for _, layer := range layers {
		if v := pick(layer); v != nil {
			return v
		}
	}
	return nil
}

// pickStrings keeps every layer's value in precedence order so invalid values
// can fall through to the next layer.
func pickStrings(layers []RawConfig, pick func(RawConfig) *string) []*string {
	var values []*string
	for _, layer := range layers {
		if v := pick(layer); v != nil {
			values = append(values, v)
		}
	}
	return values
}

func resolveIntWithBounds(value *int, defaultVal int, min int, max int) int {
	if value != nil {
		return clampInt(*value, min, max)
	}
	return clampInt(defaultVal, min, max)
}

func clampInt(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func resolveBool(value *bool, defaultVal bool) bool {
	if value != nil {
		return *value
	}
	return defaultVal
}

func resolveString(values []*string, defaultVal string) string {
	for _, v := range values {
		if s := normalizeString(v); s != "" {
			return s
		}
	}
	return defaultVal
}

func resolveEnum(values []*string, defaultVal string, normalize func(*string) (string, bool)) string {
	for _, v := range values {
		if s, ok := normalize(v); ok {
			return s
		}
	}
	return defaultVal
}

func normalizeLanguage(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	lang := strings.ToLower(strings.TrimSpace(*value))
	switch lang {
	case LanguageEnglish, LanguageRussian:
		return lang, true
	default:
		return "", false
	}
}

func normalizeLogLevel(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	level := strings.ToLower(strings.TrimSpace(*value))
	switch level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return level, true
	default:
		return "", false
	}
}

func normalizeString(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
