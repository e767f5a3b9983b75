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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-jdict/record"
)

type testAtom struct {
	Class Class
	Texts []string
}

func summarize(q *Query) []testAtom {
	var atoms []testAtom
	for _, a := range q.TextAtoms() {
		ta := testAtom{Class: a.Class}
		for _, m := range a.Matchers {
			ta.Texts = append(ta.Texts, m.Text)
		}
		atoms = append(atoms, ta)
	}
	return atoms
}

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		opts     *Options
		expected []testAtom
	}{
		{
			name:     "kanji",
			raw:      "日本",
			expected: []testAtom{{Class: Kanji, Texts: []string{"日本"}}},
		},
		{
			name:     "okurigana",
			raw:      "食べる",
			expected: []testAtom{{Class: Kanji, Texts: []string{"食べる"}}},
		},
		{
			name:     "hiragana",
			raw:      "にほん",
			expected: []testAtom{{Class: Furigana, Texts: []string{"にほん", "ニホン"}}},
		},
		{
			name:     "katakana",
			raw:      "ニホン",
			expected: []testAtom{{Class: Furigana, Texts: []string{"ニホン", "にほん"}}},
		},
		{
			name:     "romaji",
			raw:      "nihon",
			expected: []testAtom{{Class: Romaji, Texts: []string{"nihon", "にほん", "ニホン"}}},
		},
		{
			name:     "english",
			raw:      "cat",
			expected: []testAtom{{Class: Romaji, Texts: []string{"cat"}}},
		},
		{
			name:     "full width",
			raw:      "ｎｉｈｏｎ",
			expected: []testAtom{{Class: Romaji, Texts: []string{"nihon", "にほん", "ニホン"}}},
		},
		{
			name:     "mixed",
			raw:      "日本go",
			expected: []testAtom{{Class: Generic, Texts: []string{"日本go"}}},
		},
		{
			name: "conjunction",
			raw:  " cats ＆ dogs ",
			expected: []testAtom{
				{Class: Romaji, Texts: []string{"cats"}},
				{Class: Romaji, Texts: []string{"dogs"}},
			},
		},
		{
			name: "empty atoms skipped",
			raw:  "日本&&にほん&",
			expected: []testAtom{
				{Class: Kanji, Texts: []string{"日本"}},
				{Class: Furigana, Texts: []string{"にほん", "ニホン"}},
			},
		},
		{
			name:     "no kana conversion",
			raw:      "nihon",
			opts:     &Options{ConvertRomaji: true},
			expected: []testAtom{{Class: Romaji, Texts: []string{"nihon", "にほん"}}},
		},
		{
			name:     "no romaji conversion",
			raw:      "nihon",
			opts:     &Options{ConvertKana: true},
			expected: []testAtom{{Class: Romaji, Texts: []string{"nihon"}}},
		},
		{
			name:     "no conversion",
			raw:      "にほん",
			opts:     &Options{},
			expected: []testAtom{{Class: Furigana, Texts: []string{"にほん"}}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			q, err := Compile(test.raw, record.FormatWord, test.opts)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if diff := cmp.Diff(test.expected, summarize(q)); diff != "" {
				t.Fatalf("Compile (-want, +got):\n%s", diff)
			}
			if got, want := q.Raw(), test.raw; got != want {
				t.Errorf("Raw: want: %q, got: %q", want, got)
			}
		})
	}
}

func TestCompile_error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		opts *Options
	}{
		{name: "empty", raw: ""},
		{name: "whitespace", raw: " 　 "},
		{name: "separators only", raw: "&&"},
		{name: "bad regexp", raw: "("},
		{name: "bad regexp in second atom", raw: "日本&[a"},
		{name: "too many atoms", raw: strings.Repeat("a&", 21) + "a"},
		{name: "max atoms option", raw: "a&b&c", opts: &Options{MaxAtoms: 2}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Compile(test.raw, record.FormatWord, test.opts)
			if diff := cmp.Diff(ErrCompile, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Compile error (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestCompile_filters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		format   record.Format
		filters  []*NumericFilter
		expected []testAtom
	}{
		{
			name:    "strokes only",
			raw:     "S7",
			format:  record.FormatCharacter,
			filters: []*NumericFilter{{Kind: Strokes, Min: 7, Max: 7}},
		},
		{
			name:     "character and strokes",
			raw:      "日 S4",
			format:   record.FormatCharacter,
			filters:  []*NumericFilter{{Kind: Strokes, Min: 4, Max: 4}},
			expected: []testAtom{{Class: Kanji, Texts: []string{"日"}}},
		},
		{
			name:   "ranges",
			raw:    "G2-3 & F1-500 J2",
			format: record.FormatCharacter,
			filters: []*NumericFilter{
				{Kind: Grade, Min: 2, Max: 3},
				{Kind: Frequency, Min: 1, Max: 500},
				{Kind: JLPT, Min: 2, Max: 2},
			},
		},
		{
			name:    "reversed range",
			raw:     "S12-9",
			format:  record.FormatCharacter,
			filters: []*NumericFilter{{Kind: Strokes, Min: 9, Max: 12}},
		},
		{
			name:     "too many digits",
			raw:      "S12345",
			format:   record.FormatCharacter,
			expected: []testAtom{{Class: Romaji, Texts: []string{"S12345"}}},
		},
		{
			name:     "word dictionary",
			raw:      "S7",
			format:   record.FormatWord,
			expected: []testAtom{{Class: Romaji, Texts: []string{"S7"}}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			q, err := Compile(test.raw, test.format, nil)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if diff := cmp.Diff(test.filters, q.Filters()); diff != "" {
				t.Errorf("Filters (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expected, summarize(q)); diff != "" {
				t.Errorf("TextAtoms (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNumericFilter_Match(t *testing.T) {
	t.Parallel()

	f := &NumericFilter{Kind: Strokes, Min: 4, Max: 7}
	tests := []struct {
		strokes  int
		expected bool
	}{
		{strokes: 0, expected: false},
		{strokes: 3, expected: false},
		{strokes: 4, expected: true},
		{strokes: 7, expected: true},
		{strokes: 8, expected: false},
	}
	for _, test := range tests {
		if got := f.Match(&record.Record{Strokes: test.strokes}); got != test.expected {
			t.Errorf("Match(S%d): want: %v, got: %v", test.strokes, test.expected, got)
		}
	}
}

func TestMatcher_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		target Class
		field  string
		// expected holds the result of each tier.
		expected [numTiers]bool
	}{
		{
			name:     "whole headword",
			text:     "日本",
			target:   Kanji,
			field:    "日本",
			expected: [numTiers]bool{true, true, true, true},
		},
		{
			name:     "headword prefix",
			text:     "日本",
			target:   Kanji,
			field:    "日本語",
			expected: [numTiers]bool{true, true, true, false},
		},
		{
			name:     "headword infix",
			text:     "日本",
			target:   Kanji,
			field:    "大日本",
			expected: [numTiers]bool{true, true, false, false},
		},
		{
			name:     "second alternative",
			text:     "日本",
			target:   Kanji,
			field:    "大和;日本",
			expected: [numTiers]bool{true, true, true, true},
		},
		{
			name:     "okurigana",
			text:     "つ",
			target:   Furigana,
			field:    "つ.ぐ",
			expected: [numTiers]bool{true, true, true, true},
		},
		{
			name:     "affix markers",
			text:     "あ",
			target:   Furigana,
			field:    "-あ-",
			expected: [numTiers]bool{true, true, true, true},
		},
		{
			name:     "infinitive",
			text:     "eat",
			target:   Romaji,
			field:    "(v1) to eat",
			expected: [numTiers]bool{true, true, true, true},
		},
		{
			name:     "trailing note",
			text:     "japan",
			target:   Romaji,
			field:    "Japan (country)",
			expected: [numTiers]bool{true, true, true, true},
		},
		{
			name:     "word in definition",
			text:     "eat",
			target:   Romaji,
			field:    "to eat up",
			expected: [numTiers]bool{true, true, true, false},
		},
		{
			name:     "inside a word",
			text:     "eat",
			target:   Romaji,
			field:    "great",
			expected: [numTiers]bool{true, true, false, false},
		},
		{
			name:     "no match",
			text:     "dog",
			target:   Romaji,
			field:    "cat",
			expected: [numTiers]bool{false, false, false, false},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m, err := newMatcher(test.text, 0, test.target)
			if err != nil {
				t.Fatalf("newMatcher: %v", err)
			}
			var got [numTiers]bool
			for tier := range numTiers {
				got[tier] = m.Match(tier, test.field)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Match(%q) (-want, +got):\n%s", test.field, diff)
			}
		})
	}
}

func TestQuery_Locate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		s        string
		expected [][]int
	}{
		{
			name:     "separate",
			raw:      "日本&ほん",
			s:        "日本のほん",
			expected: [][]int{{0, 6}, {9, 15}},
		},
		{
			name:     "overlapping",
			raw:      "日本&本語",
			s:        "日本語",
			expected: [][]int{{0, 9}},
		},
		{
			name:     "sibling",
			raw:      "ほん",
			s:        "ホン",
			expected: [][]int{{0, 6}},
		},
		{
			name:     "case insensitive",
			raw:      "japan",
			s:        "Japan, JAPAN",
			expected: [][]int{{0, 5}, {7, 12}},
		},
		{
			name: "none",
			raw:  "cat",
			s:    "dog",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			q, err := Compile(test.raw, record.FormatWord, nil)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if diff := cmp.Diff(test.expected, q.Locate(test.s)); diff != "" {
				t.Fatalf("Locate (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestQuery_Groups(t *testing.T) {
	t.Parallel()

	q, err := Compile("cat & 日本 & dog", record.FormatWord, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var got [][]string
	for _, g := range q.Groups() {
		texts := []string{g.Class.String()}
		for _, a := range g.Atoms {
			texts = append(texts, a.Text)
		}
		got = append(got, texts)
	}
	expected := [][]string{
		{"romaji", "cat", "dog"},
		{"kanji", "日本"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Groups (-want, +got):\n%s", diff)
	}
}

func TestQuery_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		format   record.Format
		expected string
	}{
		{
			raw:      "nihon & 日本",
			format:   record.FormatWord,
			expected: "romaji(nihon|にほん|ニホン) & kanji(日本)",
		},
		{
			raw:      "日 S4-7",
			format:   record.FormatCharacter,
			expected: "S4-7 & kanji(日)",
		},
	}

	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			t.Parallel()

			q, err := Compile(test.raw, test.format, nil)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			if diff := cmp.Diff(test.expected, q.String()); diff != "" {
				t.Fatalf("String (-want, +got):\n%s", diff)
			}
		})
	}
}
