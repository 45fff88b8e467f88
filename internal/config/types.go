package config

const (
	SchemaVersion = 1

	DefaultTickIntervalSeconds = 1
	DefaultLanguage            = LanguageEnglish
	DefaultStrictTiling        = false
	DefaultLogLevel            = LogLevelInfo

	MinTickIntervalSeconds = 1
	MaxTickIntervalSeconds = 60

	LanguageEnglish = "en"
	LanguageRussian = "ru"

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

type RawConfig struct {
	SchemaVersion *int         `json:"schemaVersion,omitempty"`
	TUI           *RawTUI      `json:"tui,omitempty"`
	Schedule      *RawSchedule `json:"schedule,omitempty"`
	Log           *RawLog      `json:"log,omitempty"`
}

type RawTUI struct {
	TickIntervalSeconds *int    `json:"tickIntervalSeconds,omitempty"`
	Language            *string `json:"language,omitempty"`
}

type RawSchedule struct {
	Path         *string `json:"path,omitempty"`
	StrictTiling *bool   `json:"strictTiling,omitempty"`
}

type RawLog struct {
	Level *string `json:"level,omitempty"`
	File  *string `json:"file,omitempty"`
}

type ResolvedConfig struct {
	SchemaVersion int              `json:"schemaVersion"`
	TUI           ResolvedTUI      `json:"tui"`
	Schedule      ResolvedSchedule `json:"schedule"`
	Log           ResolvedLog      `json:"log"`
}

type ResolvedTUI struct {
	TickIntervalSeconds int    `json:"tickIntervalSeconds"`
	Language            string `json:"language"`
}

// ResolvedSchedule.Path is empty when the built-in schedule should be used.
type ResolvedSchedule struct {
	Path         string `json:"path"`
	StrictTiling bool   `json:"strictTiling"`
}

// ResolvedLog.File is empty when the default location under the home
// directory should be used.
type ResolvedLog struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

func DefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		SchemaVersion: SchemaVersion,
		TUI: ResolvedTUI{
			TickIntervalSeconds: DefaultTickIntervalSeconds,
			Language:            DefaultLanguage,
		},
		Schedule: ResolvedSchedule{
			StrictTiling: DefaultStrictTiling,
		},
		Log: ResolvedLog{
			Level: DefaultLogLevel,
		},
	}
}
