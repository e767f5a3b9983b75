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

package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ianlewis/go-jdict/record"
)

// FilterKind is the numeric character field a filter restricts.
type FilterKind byte

const (
	// Strokes filters on the stroke count.
	Strokes = FilterKind('S')

	// Grade filters on the school grade.
	Grade = FilterKind('G')

	// Frequency filters on the frequency rank.
	Frequency = FilterKind('F')

	// JLPT filters on the JLPT level.
	JLPT = FilterKind('J')
)

// filterRegex matches filter tokens such as "S7" or "F1-500".
var filterRegex = regexp.MustCompile(`^([SGFJ])(\d{1,4})(?:-(\d{1,4}))?$`)

// NumericFilter requires a numeric character field to lie within an
// inclusive range.
type NumericFilter struct {
	Kind FilterKind
	Min  int
	Max  int
}

// Match reports whether rec satisfies the filter. Records without a value for
// the filtered field never match.
func (f *NumericFilter) Match(rec *record.Record) bool {
	var v int
	switch f.Kind {
	case Strokes:
		v = rec.Strokes
	case Grade:
		v = rec.Grade
	case Frequency:
		v = rec.Frequency
	case JLPT:
		v = rec.JLPT
	}
	return v != 0 && f.Min <= v && v <= f.Max
}

// String implements [fmt.Stringer].
func (f *NumericFilter) String() string {
	if f.Min == f.Max {
		return fmt.Sprintf("%c%d", f.Kind, f.Min)
	}
	return fmt.Sprintf("%c%d-%d", f.Kind, f.Min, f.Max)
}

func parseFilter(tok string) (*NumericFilter, bool) {
	m := filterRegex.FindStringSubmatch(tok)
	if m == nil {
		return nil, false
	}
	lo, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, false
	}
	hi := lo
	if m[3] != "" {
		hi, err = strconv.Atoi(m[3])
		if err != nil {
			return nil, false
		}
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return &NumericFilter{
		Kind: FilterKind(m[1][0]),
		Min:  lo,
		Max:  hi,
	}, true
}

// extractFilters removes filter tokens from text and returns them as Filter
// atoms along with the remaining text.
func extractFilters(text string) ([]*Atom, string) {
	var atoms []*Atom
	var rest []string
	for _, tok := range strings.Fields(text) {
		if f, ok := parseFilter(tok); ok {
			atoms = append(atoms, &Atom{
				Text:   tok,
				Class:  Filter,
				Filter: f,
			})
			continue
		}
		rest = append(rest, tok)
	}
	return atoms, strings.Join(rest, " ")
}
