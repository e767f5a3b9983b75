// Copyright 2025 Ian Lewis
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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-jdict"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeQueryError is the exit code for an invalid query.
	ExitCodeQueryError

	// ExitCodeNoDictionaries is the exit code when no dictionary could be
	// searched.
	ExitCodeNoDictionaries

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrJdict is a parent error for all command errors.
var ErrJdict = errors.New("jdict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrJdict)

// ErrNoDictionaries indicates that no dictionaries were found.
var ErrNoDictionaries = fmt.Errorf("%w: no dictionaries", ErrJdict)

// configKey is the key of the loaded configuration in the app metadata.
const configKey = "config"

var copyrightNames = []string{
	"2021 Google LLC",
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `jdict --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, jdict.ErrQueryCompile):
		return ExitCodeQueryError
	case errors.Is(err, ErrNoDictionaries):
		return ExitCodeNoDictionaries
	default:
		return ExitCodeUnknownError
	}
}

// appConfig returns the configuration loaded by the app's Before hook. If the
// hook did not run the configuration is loaded now.
func appConfig(c *cli.Context) (*Config, error) {
	if cfg, ok := c.App.Metadata[configKey].(*Config); ok {
		return cfg, nil
	}
	return loadConfig(c.String("config"))
}

// dataDirs returns the directories to search for dictionaries. The
// --data-dir flag takes precedence over the configuration file.
func dataDirs(c *cli.Context, cfg *Config) []string {
	if c.IsSet("data-dir") {
		return c.StringSlice("data-dir")
	}
	if len(cfg.DataDirs) > 0 {
		return cfg.DataDirs
	}
	return dictLocations()
}

// openDictionaries opens all dictionaries in dirs. Directories that do not
// exist are skipped.
func openDictionaries(log *slog.Logger, dirs []string) ([]*jdict.Dictionary, []error) {
	var dicts []*jdict.Dictionary
	var errs []error

	for _, path := range dirs {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			log.Debug("skipping missing data directory", "path", path)
			continue
		}

		openDicts, openErrs := jdict.OpenAll(path)

		dicts = append(dicts, openDicts...)
		errs = append(errs, openErrs...)
	}

	return dicts, errs
}

func newJdictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search Japanese-English dictionaries.",
		Description: strings.Join([]string{
			"Japanese-English dictionary search utility written in Go.",
			"http://github.com/ianlewis/go-jdict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "data-dir",
				Usage:       "include dictionaries in `DIR`",
				Aliases:     []string{"d"},
				DefaultText: strings.Join(dictLocations(), ", "),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				EnvVars: []string{"JDICT_CONFIG"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Metadata:        map[string]interface{}{},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c.String("config"))
			if err != nil {
				return err
			}
			c.App.Metadata[configKey] = cfg
			newLogger(cfg.Log, c.App.ErrWriter)
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			queryCommand,
		},
	}
}
