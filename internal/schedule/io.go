package schedule

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var ErrScheduleNotFound = errors.New("schedule file not found")

//go:embed default.json
var defaultScheduleJSON []byte

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder from the file extension; anything that is
// not .yaml/.yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Default returns the built-in day plan.
func Default() Schedule {
	s, err := Parse(defaultScheduleJSON, FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("built-in schedule: %v", err))
	}
	return s
}

func Load(fs afero.Fs, path string) (Schedule, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Schedule{}, ErrScheduleNotFound
		}
		return Schedule{}, fmt.Errorf("read schedule file %s: %w", path, err)
	}
	s, err := Parse(b, FormatForPath(path))
	if err != nil {
		return Schedule{}, fmt.Errorf("parse schedule file %s: %w", path, err)
	}
	return s, nil
}

func Parse(b []byte, format Format) (Schedule, error) {
	switch format {
	case FormatYAML:
		return parseYAML(b)
	case FormatJSON:
		return parseJSON(b)
	default:
		return Schedule{}, fmt.Errorf("unsupported schedule format %q", format)
	}
}

func parseJSON(b []byte) (Schedule, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var s Schedule
	if err := dec.Decode(&s); err != nil {
		return Schedule{}, err
	}
	// Ensure there's nothing but whitespace after the object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Schedule{}, errors.New("trailing JSON values")
		}
		return Schedule{}, fmt.Errorf("trailing data: %w", err)
	}
	return s, nil
}

func parseYAML(b []byte) (Schedule, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var s Schedule
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Schedule{}, errors.New("empty document")
		}
		return Schedule{}, err
	}
	return s, nil
}

func Encode(s Schedule, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported schedule format %q", format)
	}
}
