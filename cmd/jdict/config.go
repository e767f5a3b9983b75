// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-jdict"
	"github.com/ianlewis/go-jdict/query"
)

// Config is the jdict configuration. Values are read from a YAML file and
// overridden by environment variables.
type Config struct {
	// DataDirs are the directories searched for dictionaries.
	DataDirs []string `yaml:"data_dirs" env:"JDICT_DATA_DIRS" env-separator:":"`

	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`

	// NoColor disables highlighting of matches on terminals.
	NoColor bool `yaml:"no_color" env:"JDICT_NO_COLOR"`
}

// SearchConfig holds default search settings. Options that are on by default
// are negated since env-default values replace zero values read from the
// file.
type SearchConfig struct {
	NoKana    bool `yaml:"no_kana"    env:"JDICT_NO_KANA"`
	NoRomaji  bool `yaml:"no_romaji"  env:"JDICT_NO_ROMAJI"`
	Exact     bool `yaml:"exact"      env:"JDICT_EXACT"`
	MaxHigh   int  `yaml:"max_high"   env:"JDICT_MAX_HIGH"   env-default:"200"`
	MaxMedium int  `yaml:"max_medium" env:"JDICT_MAX_MEDIUM" env-default:"100"`
	MaxLow    int  `yaml:"max_low"    env:"JDICT_MAX_LOW"    env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"JDICT_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"JDICT_LOG_FORMAT" env-default:"text"`
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Search.MaxHigh < 0 || c.Search.MaxMedium < 0 || c.Search.MaxLow < 0 {
		return fmt.Errorf("%w: result limits must not be negative", ErrJdict)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrJdict, c.Log.Format)
	}
	return nil
}

// SearchOptions returns the search options for the configuration.
func (c *Config) SearchOptions(log *slog.Logger) *jdict.Options {
	return &jdict.Options{
		Query: query.Options{
			ConvertKana:   !c.Search.NoKana,
			ConvertRomaji: !c.Search.NoRomaji,
			Exact:         c.Search.Exact,
		},
		MaxHigh:   c.Search.MaxHigh,
		MaxMedium: c.Search.MaxMedium,
		MaxLow:    c.Search.MaxLow,
		Logger:    log,
	}
}

// defaultConfigPath returns the path of the user's configuration file.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "jdict", "config.yaml")
}

// loadConfig reads the configuration from path and environment variables.
// If path is empty the user's configuration file is read if it exists.
func loadConfig(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = defaultConfigPath()
	}

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: reading config %s: %w", ErrJdict, path, err)
		}
	case explicitPath:
		return nil, fmt.Errorf("%w: config file %s: %w", ErrJdict, path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%w: reading env: %w", ErrJdict, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: validating config: %w", ErrJdict, err)
	}

	return &cfg, nil
}

// newLogger creates a logger writing to w and sets it as the default logger.
func newLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
