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

// Package query compiles search queries.
//
// A query is split on '&' into atoms which must all match a dictionary
// record. Each atom is classified by the script it is written in and compiled
// into one or more sibling [Matcher]s: the atom as written plus its
// conversions to other scripts, so that "nihon" also finds にほん and ニホン.
// Every matcher holds one regular expression per relevance [Tier].
package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-jdict/internal/folding"
	"github.com/ianlewis/go-jdict/record"
	"github.com/ianlewis/go-jdict/script"
)

// ErrCompile indicates that a query is empty or malformed.
var ErrCompile = errors.New("invalid query")

// DefaultMaxAtoms is the default maximum number of atoms in a query.
const DefaultMaxAtoms = 20

// Class is the semantic class of an atom. It also names the record fields a
// matcher is tested against.
type Class int

const (
	// Generic atoms are tested against every field.
	Generic Class = iota

	// Kanji atoms are tested against headwords and characters.
	Kanji

	// Furigana atoms are tested against readings.
	Furigana

	// Romaji atoms are tested against English text.
	Romaji

	// Filter atoms restrict numeric character fields.
	Filter
)

// String implements [fmt.Stringer].
func (c Class) String() string {
	switch c {
	case Kanji:
		return "kanji"
	case Furigana:
		return "furigana"
	case Romaji:
		return "romaji"
	case Filter:
		return "filter"
	default:
		return "generic"
	}
}

// Options are options for compiling a query.
type Options struct {
	// ConvertKana adds katakana siblings to hiragana atoms and vice versa.
	ConvertKana bool

	// ConvertRomaji adds kana siblings to romaji atoms.
	ConvertRomaji bool

	// Exact reports only the most relevant results.
	Exact bool

	// MaxAtoms is the maximum number of atoms. Defaults to DefaultMaxAtoms.
	MaxAtoms int
}

// DefaultOptions are the default query options.
var DefaultOptions = &Options{
	ConvertKana:   true,
	ConvertRomaji: true,
	MaxAtoms:      DefaultMaxAtoms,
}

// Atom is a single AND-combined part of a query.
type Atom struct {
	// Text is the atom as it appeared in the normalized query.
	Text string

	// Class is the atom's class.
	Class Class

	// Matchers are the atom's sibling matchers. The atom matches when any of
	// them matches. Empty for Filter atoms.
	Matchers []*Matcher

	// Filter is set for Filter atoms.
	Filter *NumericFilter
}

// Group is the set of atoms of a single class.
type Group struct {
	Class Class
	Atoms []*Atom
}

// Query is a compiled query. It is immutable and safe for concurrent use.
type Query struct {
	raw    string
	format record.Format
	opts   Options
	atoms  []*Atom
	groups []Group
}

// Compile compiles raw for searching a dictionary of the given format.
func Compile(raw string, format record.Format, opts *Options) (*Query, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	maxAtoms := opts.MaxAtoms
	if maxAtoms <= 0 {
		maxAtoms = DefaultMaxAtoms
	}

	folded, err := folding.String(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	var texts []string
	for _, text := range strings.Split(folded, string(folding.Separator)) {
		if text = strings.TrimSpace(text); text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) > maxAtoms {
		return nil, fmt.Errorf("%w: too many atoms: %d > %d", ErrCompile, len(texts), maxAtoms)
	}

	q := &Query{
		raw:    raw,
		format: format,
		opts:   *opts,
	}
	for _, text := range texts {
		if format == record.FormatCharacter {
			var filters []*Atom
			filters, text = extractFilters(text)
			q.atoms = append(q.atoms, filters...)
			if text == "" {
				continue
			}
		}

		atom, err := compileAtom(text, opts)
		if err != nil {
			return nil, err
		}
		q.atoms = append(q.atoms, atom)
	}

	if len(q.atoms) == 0 {
		return nil, fmt.Errorf("%w: empty query %q", ErrCompile, raw)
	}
	if len(q.atoms) > maxAtoms {
		return nil, fmt.Errorf("%w: too many atoms: %d > %d", ErrCompile, len(q.atoms), maxAtoms)
	}

	q.group()
	return q, nil
}

func compileAtom(text string, opts *Options) (*Atom, error) {
	atom := &Atom{Text: text}
	add := func(t string, s script.Script, target Class) error {
		m, err := newMatcher(t, s, target)
		if err != nil {
			return err
		}
		atom.Matchers = append(atom.Matchers, m)
		return nil
	}

	s := script.Classify(text)
	switch {
	case s == script.Kanji:
		atom.Class = Kanji
		return atom, add(text, s, Kanji)

	case script.IsKana(text):
		atom.Class = Furigana
		if err := add(text, s, Furigana); err != nil {
			return nil, err
		}
		if !opts.ConvertKana {
			return atom, nil
		}
		switch s {
		case script.Hiragana:
			return atom, add(script.HiraganaToKatakana(text), script.Katakana, Furigana)
		case script.Katakana:
			return atom, add(script.KatakanaToHiragana(text), script.Hiragana, Furigana)
		}
		return atom, nil

	case s == script.Romaji:
		atom.Class = Romaji
		if err := add(text, s, Romaji); err != nil {
			return nil, err
		}
		if !opts.ConvertRomaji {
			return atom, nil
		}
		kana, ok := script.RomajiToKana(text)
		if !ok {
			return atom, nil
		}
		if err := add(kana, script.Hiragana, Furigana); err != nil {
			return nil, err
		}
		if opts.ConvertKana {
			return atom, add(script.HiraganaToKatakana(kana), script.Katakana, Furigana)
		}
		return atom, nil

	default:
		atom.Class = Generic
		return atom, add(text, s, Generic)
	}
}

// group collects text atoms by class in the order classes first appear.
func (q *Query) group() {
	for _, a := range q.atoms {
		if a.Class == Filter {
			continue
		}
		i := slices.IndexFunc(q.groups, func(g Group) bool { return g.Class == a.Class })
		if i < 0 {
			q.groups = append(q.groups, Group{Class: a.Class})
			i = len(q.groups) - 1
		}
		q.groups[i].Atoms = append(q.groups[i].Atoms, a)
	}
}

// Raw returns the query as given to Compile.
func (q *Query) Raw() string {
	return q.raw
}

// Format returns the dictionary format the query was compiled for.
func (q *Query) Format() record.Format {
	return q.format
}

// Options returns the options the query was compiled with.
func (q *Query) Options() Options {
	return q.opts
}

// Atoms returns all atoms in query order.
func (q *Query) Atoms() []*Atom {
	return q.atoms
}

// TextAtoms returns the atoms that are not filters.
func (q *Query) TextAtoms() []*Atom {
	var atoms []*Atom
	for _, a := range q.atoms {
		if a.Class != Filter {
			atoms = append(atoms, a)
		}
	}
	return atoms
}

// Groups returns the text atoms grouped by class.
func (q *Query) Groups() []Group {
	return q.groups
}

// Filters returns the Filter atoms.
func (q *Query) Filters() []*NumericFilter {
	var filters []*NumericFilter
	for _, a := range q.atoms {
		if a.Filter != nil {
			filters = append(filters, a.Filter)
		}
	}
	return filters
}

// Locate returns the byte ranges of s matched by any matcher of the query,
// sorted and with overlapping ranges merged.
func (q *Query) Locate(s string) [][]int {
	var spans [][]int
	for _, a := range q.atoms {
		for _, m := range a.Matchers {
			spans = append(spans, m.tiers[Locate].FindAllStringIndex(s, -1)...)
		}
	}
	if len(spans) == 0 {
		return nil
	}

	slices.SortFunc(spans, func(a, b []int) int {
		return a[0] - b[0]
	})
	merged := [][]int{spans[0]}
	for _, span := range spans[1:] {
		last := merged[len(merged)-1]
		if span[0] <= last[1] {
			last[1] = max(last[1], span[1])
			continue
		}
		merged = append(merged, span)
	}
	return merged
}

// String returns a readable representation of the compiled query.
func (q *Query) String() string {
	parts := make([]string, 0, len(q.atoms))
	for _, a := range q.atoms {
		if a.Filter != nil {
			parts = append(parts, a.Filter.String())
			continue
		}
		texts := make([]string, 0, len(a.Matchers))
		for _, m := range a.Matchers {
			texts = append(texts, m.Text)
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", a.Class, strings.Join(texts, "|")))
	}
	return strings.Join(parts, " & ")
}
