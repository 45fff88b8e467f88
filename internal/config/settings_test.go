package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveConfigValuesWritesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dayboard", "config.json")

	err := SaveConfigValues(path, map[string]RawOptionValue{
		keyTuiLanguage:          {String: strPtr("ru")},
		keyScheduleStrictTiling: {Bool: boolPtr(true)},
		keyLogLevel:             {},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["log"]; ok {
		t.Fatalf("expected no log section, got %s", b)
	}

	values, present, err := LoadLayerValues(path)
	if err != nil || !present {
		t.Fatalf("reload: present=%v err=%v", present, err)
	}
	if got := values[keyTuiLanguage].Display(); got != "ru" {
		t.Fatalf("language = %q, want ru", got)
	}
	if got := values[keyScheduleStrictTiling].Display(); got != "true" {
		t.Fatalf("strictTiling = %q, want true", got)
	}
}

func TestSaveConfigValuesEmptyRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, `{"schemaVersion":1}`)

	if err := SaveConfigValues(path, map[string]RawOptionValue{}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file to be removed, stat err=%v", err)
	}
	if err := SaveConfigValues(path, nil); err != nil {
		t.Fatalf("save on missing file: %v", err)
	}
}

func TestSaveConfigValuesRejectsMismatchedTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cases := []map[string]RawOptionValue{
		{keyTuiTickIntervalSeconds: {Bool: boolPtr(true)}},
		{keyScheduleStrictTiling: {Int: intPtr(1)}},
		{keyTuiLanguage: {Int: intPtr(1), String: strPtr("en")}},
		{"bogus.key": {Int: intPtr(1)}},
	}
	for i, values := range cases {
		if err := SaveConfigValues(path, values); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
	if err := SaveConfigValues("", nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestParseOptionValue(t *testing.T) {
	v, err := ParseOptionValue(keyTuiTickIntervalSeconds, " 5 ")
	if err != nil || v.Int == nil || *v.Int != 5 {
		t.Fatalf("tick: %#v %v", v, err)
	}
	if _, err := ParseOptionValue(keyTuiTickIntervalSeconds, "0"); err == nil {
		t.Fatalf("expected out-of-range error")
	}
	if _, err := ParseOptionValue(keyScheduleStrictTiling, "maybe"); err == nil {
		t.Fatalf("expected bool parse error")
	}
	v, err = ParseOptionValue(keyTuiLanguage, "RU")
	if err != nil || v.String == nil || *v.String != "ru" {
		t.Fatalf("language: %#v %v", v, err)
	}
	if _, err := ParseOptionValue(keyLogLevel, "verbose"); err == nil || !strings.Contains(err.Error(), "debug, info, warn, error") {
		t.Fatalf("expected choices error, got %v", err)
	}
	v, err = ParseOptionValue(keySchedulePath, "~/plans/day.yaml")
	if err != nil || v.Display() != "~/plans/day.yaml" {
		t.Fatalf("path: %#v %v", v, err)
	}
	if _, err := ParseOptionValue("nope", "1"); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestResolvedValueCoversRegistry(t *testing.T) {
	cfg := DefaultResolvedConfig()
	cfg.Schedule.Path = "day.json"
	cfg.Log.File = "/tmp/d.log"
	for _, opt := range OptionRegistry() {
		got := ResolvedValue(cfg, opt.KeyPath)
		switch opt.Type {
		case OptionTypeInt, OptionTypeBool:
			if got == "" {
				t.Fatalf("%s: empty resolved value", opt.KeyPath)
			}
		}
	}
	if ResolvedValue(cfg, keySchedulePath) != "day.json" {
		t.Fatalf("unexpected schedule path")
	}
}

func TestOptionRegistryKeysAreUniqueAndKnown(t *testing.T) {
	seen := map[string]bool{}
	for _, opt := range OptionRegistry() {
		if opt.KeyPath == "" || seen[opt.KeyPath] {
			t.Fatalf("bad or duplicate key %q", opt.KeyPath)
		}
		seen[opt.KeyPath] = true
		if _, ok := LookupOption(opt.KeyPath); !ok {
			t.Fatalf("lookup failed for %q", opt.KeyPath)
		}
	}
	if len(seen) != 6 {
		t.Fatalf("options count = %d, want 6", len(seen))
	}
	tick, _ := LookupOption(keyTuiTickIntervalSeconds)
	if tick.Bounds == nil || tick.Bounds.Min != MinTickIntervalSeconds || tick.Bounds.Max != MaxTickIntervalSeconds {
		t.Fatalf("tick bounds = %#v", tick.Bounds)
	}
}
