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
	"log/slog"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "list dictionaries",
	ArgsUsage: " ",
	Action: func(c *cli.Context) error {
		if c.NArg() > 0 {
			return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
		}

		cfg, err := appConfig(c)
		if err != nil {
			return err
		}

		dicts, errs := openDictionaries(slog.Default(), dataDirs(c, cfg))
		for _, err := range errs {
			fmt.Fprintln(c.App.ErrWriter, err)
		}
		if len(dicts) == 0 {
			return ErrNoDictionaries
		}

		tbl := table.New("Name", "Format", "Encoding", "Lines", "Path").WithWriter(c.App.Writer)
		for _, d := range dicts {
			tbl.AddRow(d.Name(), d.Format(), d.Encoding(), d.LineCount(), d.Path())
		}
		tbl.Print()

		return nil
	},
}
