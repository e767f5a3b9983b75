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
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-jdict"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "search dictionaries",
	ArgsUsage: "QUERY",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "dict",
			Usage:   "search only the dictionary named `NAME`",
			Aliases: []string{"n"},
		},
		&cli.BoolFlag{
			Name:  "exact",
			Usage: "show only the most relevant results",
		},
		&cli.BoolFlag{
			Name:  "no-kana",
			Usage: "do not convert between hiragana and katakana",
		},
		&cli.BoolFlag{
			Name:  "no-romaji",
			Usage: "do not convert romaji to kana",
		},
	},
	Action: func(c *cli.Context) error {
		raw := strings.Join(c.Args().Slice(), " ")
		if strings.TrimSpace(raw) == "" {
			return fmt.Errorf("%w: missing query", ErrFlagParse)
		}

		cfg, err := appConfig(c)
		if err != nil {
			return err
		}
		log := slog.Default()
		opts := cfg.SearchOptions(log)
		if c.IsSet("exact") {
			opts.Query.Exact = c.Bool("exact")
		}
		if c.Bool("no-kana") {
			opts.Query.ConvertKana = false
		}
		if c.Bool("no-romaji") {
			opts.Query.ConvertRomaji = false
		}

		dicts, errs := openDictionaries(log, dataDirs(c, cfg))
		for _, err := range errs {
			fmt.Fprintln(c.App.ErrWriter, err)
		}

		selected, missing := jdict.NewCatalog(dicts).Select(c.StringSlice("dict"))
		for _, name := range missing {
			fmt.Fprintf(c.App.ErrWriter, "%s: no dictionary named %q\n", c.App.Name, name)
		}

		var reqs []*jdict.Request
		defer func() {
			for _, r := range reqs {
				_ = r.Close()
			}
		}()
		for _, d := range selected {
			r, err := jdict.NewRequest(d, raw, opts)
			if errors.Is(err, jdict.ErrQueryCompile) {
				return err
			}
			if err != nil {
				fmt.Fprintln(c.App.ErrWriter, err)
				continue
			}
			reqs = append(reqs, r)
		}
		if len(reqs) == 0 {
			return ErrNoDictionaries
		}

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
		defer stop()

		color := !cfg.NoColor && isTerminal(c.App.Writer)
		bufs := make([]bytes.Buffer, len(reqs))

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, r := range reqs {
			g.Go(func() error {
				_, err := r.Run(ctx, newTextOutput(&bufs[i], color))
				return err
			})
		}
		err = g.Wait()

		for i, r := range reqs {
			fmt.Fprintf(c.App.Writer, "== %s ==\n", r.Dictionary().Name())
			if _, werr := bufs[i].WriteTo(c.App.Writer); werr != nil {
				return fmt.Errorf("writing results: %w", werr)
			}
		}

		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}
		return nil
	},
}
