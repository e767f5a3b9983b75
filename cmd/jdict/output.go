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
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ianlewis/go-jdict"
	"github.com/ianlewis/go-jdict/query"
	"github.com/ianlewis/go-jdict/record"
)

const (
	moreRelevantHeader = "--- more relevant ---"
	lessRelevantHeader = "--- less relevant ---"
	noResults          = "no results"

	highlightStart = "\x1b[1;31m"
	highlightEnd   = "\x1b[0m"
)

// textOutput writes search results as plain text.
type textOutput struct {
	w     io.Writer
	color bool

	q          *query.Query
	moreHeader bool
}

var _ jdict.Output = (*textOutput)(nil)

func newTextOutput(w io.Writer, color bool) *textOutput {
	return &textOutput{
		w:     w,
		color: color,
	}
}

// isTerminal returns true if w writes to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (o *textOutput) SearchBegin(r *jdict.Request) {
	o.q = r.Query()
	o.moreHeader = false
}

func (o *textOutput) WordResult(rec *record.Record) {
	var b strings.Builder
	b.WriteString(rec.Headword)
	if rec.Reading != "" {
		fmt.Fprintf(&b, " [%s]", rec.Reading)
	}
	if len(rec.Classes) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(rec.Classes, ","))
	}
	if len(rec.Definitions) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(rec.Definitions, "; "))
	}
	if rec.Important {
		b.WriteString(" (P)")
	}
	o.println(b.String())
}

func (o *textOutput) CharacterResult(rec *record.Record) {
	if rec.Format == record.FormatRadical {
		o.println(rec.Character + ": " + strings.Join(rec.Radicals, " "))
		return
	}

	fields := []string{rec.Character}
	for _, f := range []struct {
		tag string
		n   int
	}{
		{"S", rec.Strokes},
		{"G", rec.Grade},
		{"F", rec.Frequency},
		{"J", rec.JLPT},
	} {
		if f.n > 0 {
			fields = append(fields, fmt.Sprintf("%s%d", f.tag, f.n))
		}
	}
	if readings := rec.Readings[record.General]; len(readings) > 0 {
		fields = append(fields, strings.Join(readings, " "))
	}
	if len(rec.Meanings) > 0 {
		fields = append(fields, strings.Join(rec.Meanings, ", "))
	}
	o.println(strings.Join(fields, "  "))
}

func (o *textOutput) ExampleResult(rec *record.Record) {
	o.println(rec.Sentence)
	if rec.Translation != "" {
		o.println("  " + rec.Translation)
	}
}

func (o *textOutput) UnknownResult(rec *record.Record) {
	o.println(rec.Raw)
}

func (o *textOutput) MoreRelevantHeader() {
	// The header is repeated at the end of the scan. Only print it once.
	if o.moreHeader {
		return
	}
	o.moreHeader = true
	fmt.Fprintln(o.w, moreRelevantHeader)
}

func (o *textOutput) LessRelevantHeader() {
	fmt.Fprintln(o.w, lessRelevantHeader)
}

func (o *textOutput) SearchEnd(s *jdict.Summary) {
	if s.Emitted == 0 && !s.Cancelled {
		fmt.Fprintln(o.w, noResults)
	}
	if s.Cancelled {
		fmt.Fprintln(o.w, "canceled")
	}
}

func (o *textOutput) println(line string) {
	fmt.Fprintln(o.w, o.highlight(line))
}

// highlight marks the parts of line matched by the query.
func (o *textOutput) highlight(line string) string {
	if !o.color || o.q == nil {
		return line
	}
	spans := o.q.Locate(line)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(line[last:span[0]])
		b.WriteString(highlightStart)
		b.WriteString(line[span[0]:span[1]])
		b.WriteString(highlightEnd)
		last = span[1]
	}
	b.WriteString(line[last:])
	return b.String()
}
