package config

type OptionType string

const (
	OptionTypeBool   OptionType = "bool"
	OptionTypeInt    OptionType = "int"
	OptionTypeString OptionType = "string"
)

type IntBounds struct {
	Min int
	Max int
}

type OptionMetadata struct {
	KeyPath       string
	DisplayName   string
	Type          OptionType
	DefaultInt    int
	DefaultBool   bool
	DefaultString string
	Bounds        *IntBounds
	Choices       []string
	Description   string
}

// OptionRegistry returns the known config options in display order.
func OptionRegistry() []OptionMetadata {
	defaults := DefaultResolvedConfig()

	return []OptionMetadata{
		newIntOption(
			keyTuiTickIntervalSeconds,
			"TUI Tick (seconds)",
			defaults.TUI.TickIntervalSeconds,
			MinTickIntervalSeconds,
			MaxTickIntervalSeconds,
			"Clock tick and recompute interval in seconds",
		),
		newStringOption(
			keyTuiLanguage,
			"TUI Language",
			defaults.TUI.Language,
			[]string{LanguageEnglish, LanguageRussian},
			"Language for dashboard labels",
		),
		newStringOption(
			keySchedulePath,
			"Schedule File",
			defaults.Schedule.Path,
			nil,
			"Path to a JSON or YAML schedule (empty uses the built-in day plan)",
		),
		newBoolOption(
			keyScheduleStrictTiling,
			"Schedule Strict Tiling",
			defaults.Schedule.StrictTiling,
			"Refuse schedules whose windows leave gaps or overlap",
		),
		newStringOption(
			keyLogLevel,
			"Log Level",
			defaults.Log.Level,
			[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError},
			"Minimum level written to the log file",
		),
		newStringOption(
			keyLogFile,
			"Log File",
			defaults.Log.File,
			nil,
			"Log file path (empty uses ~/.dayboard/dayboard.log)",
		),
	}
}

// LookupOption returns metadata for keyPath.
func LookupOption(keyPath string) (OptionMetadata, bool) {
	for _, opt := range OptionRegistry() {
		if opt.KeyPath == keyPath {
			return opt, true
		}
	}
	return OptionMetadata{}, false
}

func newIntOption(keyPath, displayName string, defaultValue, min, max int, description string) OptionMetadata {
	return OptionMetadata{
		KeyPath:     keyPath,
		DisplayName: displayName,
		Type:        OptionTypeInt,
		DefaultInt:  defaultValue,
		Bounds:      &IntBounds{Min: min, Max: max},
		Description: description,
	}
}

func newBoolOption(keyPath, displayName string, defaultValue bool, description string) OptionMetadata {
	return OptionMetadata{
		KeyPath:     keyPath,
		DisplayName: displayName,
		Type:        OptionTypeBool,
		DefaultBool: defaultValue,
		Description: description,
	}
}

func newStringOption(keyPath, displayName, defaultValue string, choices []string, description string) OptionMetadata {
	return OptionMetadata{
		KeyPath:       keyPath,
		DisplayName:   displayName,
		Type:          OptionTypeString,
		DefaultString: defaultValue,
		Choices:       choices,
		Description:   description,
	}
}
