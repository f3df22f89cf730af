// Package config resolves the OpenDART API key and runtime settings.
//
// Historically the key was read either from the DART_API_KEY environment
// variable or from a JSON key file, depending on the caller. Both
// conventions are kept, unified behind KeySource: sources are tried in a
// defined order and the first hit wins.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"gopkg.in/yaml.v2"
)

const (
	// EnvKeyName is the environment variable checked first.
	EnvKeyName = "DART_API_KEY"

	// DefaultKeyFilePath is the legacy JSON key file location.
	DefaultKeyFilePath = "src/config/api_keys.json"

	// DefaultCorpCodePath is where the CORPCODE.xml reference file lives.
	DefaultCorpCodePath = "data/corp_codes/CORPCODE.xml"

	// DefaultLookbackDays is the report discovery window.
	DefaultLookbackDays = 900
)

// ErrNoAPIKey is returned when no configured source yields a key.
var ErrNoAPIKey = errors.New("config: no DART API key found in any source")

// KeySource yields an API key from one configuration location.
type KeySource interface {
	// Name identifies the source in logs and error messages.
	Name() string
	// Lookup returns the key and whether this source has one.
	Lookup() (string, bool)
}

// EnvSource reads the key from an environment variable.
type EnvSource struct {
	Var string
}

func (s EnvSource) Name() string { return "env:" + s.Var }

func (s EnvSource) Lookup() (string, bool) {
	key := os.Getenv(s.Var)
	return key, key != ""
}

// KeyFileSource reads the key from a JSON file shaped as a list of
// objects, taking the DART_API_KEY field of the first element:
//
//	[{"DART_API_KEY": "..."}]
//
// The file is hand-maintained, so a strict parse failure is retried
// through json-repair before giving up. A missing or unusable file is a
// miss, not an error.
type KeyFileSource struct {
	Path string
}

func (s KeyFileSource) Name() string { return "file:" + s.Path }

func (s KeyFileSource) Lookup() (string, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", false
	}

	var entries []map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		repaired, repairErr := jsonrepair.RepairJSON(string(data))
		if repairErr != nil {
			return "", false
		}
		if err := json.Unmarshal([]byte(repaired), &entries); err != nil {
			return "", false
		}
	}

	if len(entries) == 0 {
		return "", false
	}
	key := entries[0][EnvKeyName]
	return key, key != ""
}

// DefaultSources returns the resolution order: environment first, then
// the legacy key file.
func DefaultSources() []KeySource {
	return []KeySource{
		EnvSource{Var: EnvKeyName},
		KeyFileSource{Path: DefaultKeyFilePath},
	}
}

// ResolveAPIKey tries each source in order and returns the first key
// found. With no arguments it uses DefaultSources.
func ResolveAPIKey(sources ...KeySource) (string, error) {
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	for _, src := range sources {
		if key, ok := src.Lookup(); ok {
			return key, nil
		}
	}
	return "", ErrNoAPIKey
}

// Settings holds the runtime knobs of the fetch pipeline.
type Settings struct {
	CorpCodePath string `yaml:"corpcode_path"`
	KeyFilePath  string `yaml:"key_file_path"`
	LookbackDays int    `yaml:"lookback_days"`
	OutputDir    string `yaml:"output_dir"`
}

// DefaultSettings returns the settings used when no settings file is
// present.
func DefaultSettings() Settings {
	return Settings{
		CorpCodePath: DefaultCorpCodePath,
		KeyFilePath:  DefaultKeyFilePath,
		LookbackDays: DefaultLookbackDays,
		OutputDir:    "out",
	}
}

// LoadSettings reads a YAML settings file, filling unset fields with
// defaults. A missing file yields DefaultSettings; a malformed file is
// an error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("config: parse %s: %w", path, err)
	}

	if settings.CorpCodePath == "" {
		settings.CorpCodePath = DefaultCorpCodePath
	}
	if settings.KeyFilePath == "" {
		settings.KeyFilePath = DefaultKeyFilePath
	}
	if settings.LookbackDays <= 0 {
		settings.LookbackDays = DefaultLookbackDays
	}
	if settings.OutputDir == "" {
		settings.OutputDir = "out"
	}

	return settings, nil
}
