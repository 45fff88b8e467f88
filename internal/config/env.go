package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvSchedule     = "DAYBOARD_SCHEDULE"
	EnvStrictTiling = "DAYBOARD_STRICT_TILING"
	EnvLanguage     = "DAYBOARD_LANGUAGE"
	EnvTickSeconds  = "DAYBOARD_TICK_SECONDS"
	EnvLogLevel     = "DAYBOARD_LOG_LEVEL"
	EnvLogFile      = "DAYBOARD_LOG_FILE"
)

var lookupEnv = os.LookupEnv

// LoadEnvConfig builds a config layer from DAYBOARD_* variables. A .env file in
// projectRoot is loaded first; variables already set in the process win.
// Unparseable numeric or boolean values are ignored.
func LoadEnvConfig(projectRoot string) RawConfig {
	if projectRoot != "" {
		_ = godotenv.Load(filepath.Join(projectRoot, ".env"))
	}

	var cfg RawConfig
	if v, ok := envString(EnvSchedule); ok {
		ensureSchedule(&cfg).Path = &v
	}
	if v, ok := envString(EnvStrictTiling); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			ensureSchedule(&cfg).StrictTiling = &b
		}
	}
	if v, ok := envString(EnvLanguage); ok {
		ensureTUI(&cfg).Language = &v
	}
	if v, ok := envString(EnvTickSeconds); ok {
		if n, err := strconv.Atoi(v); err == nil {
			ensureTUI(&cfg).TickIntervalSeconds = &n
		}
	}
	if v, ok := envString(EnvLogLevel); ok {
		ensureLog(&cfg).Level = &v
	}
	if v, ok := envString(EnvLogFile); ok {
		ensureLog(&cfg).File = &v
	}
	return cfg
}

func envString(key string) (string, bool) {
	v, ok := lookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func ensureTUI(cfg *RawConfig) *RawTUI {
	if cfg.TUI == nil {
		cfg.TUI = &RawTUI{}
	}
	return cfg.TUI
}

func ensureSchedule(cfg *RawConfig) *RawSchedule {
	if cfg.Schedule == nil {
		cfg.Schedule = &RawSchedule{}
	}
	return cfg.Schedule
}

func ensureLog(cfg *RawConfig) *RawLog {
	if cfg.Log == nil {
		cfg.Log = &RawLog{}
	}
	return cfg.Log
}
