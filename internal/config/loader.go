package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const dirName = ".dayboard"

var userHomeDir = os.UserHomeDir

// GlobalConfigPath returns ~/.dayboard/config.json, or "" without a home dir.
func GlobalConfigPath() string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, dirName, "config.json")
}

func ProjectConfigPath(projectRoot string) string {
	if projectRoot == "" {
		return ""
	}
	return filepath.Join(projectRoot, dirName, "config.json")
}

// DefaultLogPath returns ~/.dayboard/dayboard.log, or "" without a home dir.
func DefaultLogPath() string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, dirName, "dayboard.log")
}

func LoadGlobalConfig() (RawConfig, bool, error) {
	path := GlobalConfigPath()
	if path == "" {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(path)
}

func LoadProjectConfig(projectRoot string) (RawConfig, bool, error) {
	path := ProjectConfigPath(projectRoot)
	if path == "" {
		return RawConfig{}, false, nil
	}
	return loadConfigFile(path)
}

// LoadConfig reads the environment, project and global layers and returns the
// resolved config. Precedence per key: env > project > global > defaults.
func LoadConfig(projectRoot string) (ResolvedConfig, error) {
	globalCfg, _, err := LoadGlobalConfig()
	if err != nil {
		return ResolvedConfig{}, err
	}
	projectCfg, _, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return ResolvedConfig{}, err
	}
	envCfg := LoadEnvConfig(projectRoot)
	return ResolveConfig(envCfg, projectCfg, globalCfg), nil
}

// loadConfigFile skips files that are not valid JSON or carry an unsupported
// schema version; only read failures are errors.
func loadConfigFile(path string) (RawConfig, bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))

	var cfg RawConfig
	if err := dec.Decode(&cfg); err != nil {
		return RawConfig{}, false, nil
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return RawConfig{}, false, nil
	}
	if !isSupportedSchemaVersion(cfg.SchemaVersion) {
		return RawConfig{}, false, nil
	}

	return cfg, true, nil
}

func isSupportedSchemaVersion(version *int) bool {
	if version == nil {
		return true
	}
	return *version == SchemaVersion
}
