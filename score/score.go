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

// Package score rates how relevant a dictionary record is to a query.
//
// Atoms of a query are grouped by class. A group is satisfied when every one
// of its atoms matches, and a record matches when any group is satisfied. An
// atom matches when any of its sibling matchers matches any record field of
// the matcher's target class. Which fields belong to a target, and which tier
// decides each relevance, depends on the dictionary format.
package score

import (
	"slices"
	"strings"

	"github.com/ianlewis/go-jdict/query"
	"github.com/ianlewis/go-jdict/record"
)

// matchFunc reports whether a single matcher matches a record.
type matchFunc func(m *query.Matcher) bool

// Score returns the relevance of rec to q.
func Score(rec *record.Record, q *query.Query) record.Relevance {
	switch rec.Format {
	case record.FormatWord:
		return scoreWord(rec, q)
	case record.FormatCharacter:
		return scoreCharacter(rec, q)
	case record.FormatRadical:
		return scoreRadical(rec, q)
	case record.FormatExample:
		return scoreExample(rec, q)
	default:
		return scoreUnknown(rec, q)
	}
}

// satisfied reports whether any group of q has all of its atoms matched.
func satisfied(q *query.Query, match matchFunc) bool {
	for _, g := range q.Groups() {
		if groupMatches(g, match) {
			return true
		}
	}
	return false
}

func groupMatches(g query.Group, match matchFunc) bool {
	for _, a := range g.Atoms {
		if !slices.ContainsFunc(a.Matchers, match) {
			return false
		}
	}
	return len(g.Atoms) > 0
}

func matchAny(m *query.Matcher, t query.Tier, fields ...string) bool {
	for _, f := range fields {
		if f != "" && m.Match(t, f) {
			return true
		}
	}
	return false
}

func scoreUnknown(rec *record.Record, q *query.Query) record.Relevance {
	if satisfied(q, func(m *query.Matcher) bool {
		return m.Match(query.Existence, rec.Raw)
	}) {
		return record.High
	}
	return record.None
}

func scoreWord(rec *record.Record, q *query.Query) record.Relevance {
	switch {
	case !satisfied(q, wordMatch(rec, query.Existence)):
		return record.None
	case satisfied(q, wordMatch(rec, query.High)):
		return record.High
	case satisfied(q, wordMatch(rec, query.Medium)):
		return record.Medium
	default:
		return record.Low
	}
}

func wordMatch(rec *record.Record, t query.Tier) matchFunc {
	reading := rec.Reading
	if reading == "" {
		reading = rec.Headword
	}
	return func(m *query.Matcher) bool {
		switch m.Target {
		case query.Kanji:
			return matchAny(m, t, rec.Headword)
		case query.Furigana:
			return matchAny(m, t, reading)
		case query.Romaji:
			return matchDefinitions(m, t, rec)
		default:
			return matchAny(m, t, rec.Headword, rec.Reading) || matchDefinitions(m, t, rec)
		}
	}
}

// matchDefinitions matches the definitions and classification tags of a word.
// Definitions made only of digits never match at the High tier.
func matchDefinitions(m *query.Matcher, t query.Tier, rec *record.Record) bool {
	for _, d := range rec.Definitions {
		if t == query.High && isNumeric(d) {
			continue
		}
		if m.Match(t, d) {
			return true
		}
	}
	for _, c := range rec.Classes {
		for item := range strings.SplitSeq(c, ",") {
			if item != "" && m.Match(t, item) {
				return true
			}
		}
	}
	return false
}

func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func scoreCharacter(rec *record.Record, q *query.Query) record.Relevance {
	for _, f := range q.Filters() {
		if !f.Match(rec) {
			return record.None
		}
	}
	if len(q.Groups()) == 0 {
		// Filters only.
		return record.High
	}

	switch {
	case satisfied(q, characterMatch(rec, query.High, false)):
		return record.High
	case satisfied(q, characterMatch(rec, query.Medium, true)):
		return record.Medium
	case satisfied(q, characterMatch(rec, query.Existence, true)):
		return record.Low
	default:
		return record.None
	}
}

// characterMatch matches the fields of a character record at tier t. The
// radicals are only searched if radicals is true.
func characterMatch(rec *record.Record, t query.Tier, radicals bool) matchFunc {
	return func(m *query.Matcher) bool {
		switch m.Target {
		case query.Kanji:
			return matchCharacter(m, rec, t, radicals)
		case query.Furigana:
			return matchReadings(m, rec, t)
		case query.Romaji:
			return matchAny(m, t, rec.Meanings...)
		default:
			return matchCharacter(m, rec, t, radicals) ||
				matchReadings(m, rec, t) ||
				matchAny(m, t, rec.Meanings...)
		}
	}
}

func matchCharacter(m *query.Matcher, rec *record.Record, t query.Tier, radicals bool) bool {
	if matchAny(m, t, rec.Character) {
		return true
	}
	return radicals && matchAny(m, t, rec.Radicals...)
}

// matchReadings matches all reading groups. Readings with okurigana such as
// "つ.ぐ" are also tried without the dot.
func matchReadings(m *query.Matcher, rec *record.Record, t query.Tier) bool {
	for _, group := range rec.Readings {
		for _, r := range group {
			if m.Match(t, r) {
				return true
			}
			if strings.Contains(r, ".") && m.Match(t, strings.ReplaceAll(r, ".", "")) {
				return true
			}
		}
	}
	return false
}

func scoreRadical(rec *record.Record, q *query.Query) record.Relevance {
	match := func(radicals bool) matchFunc {
		return func(m *query.Matcher) bool {
			switch m.Target {
			case query.Kanji, query.Generic:
				return matchCharacter(m, rec, query.Existence, radicals)
			default:
				return false
			}
		}
	}

	switch {
	case satisfied(q, match(false)):
		return record.High
	case satisfied(q, match(true)):
		return record.Medium
	default:
		return record.None
	}
}

func scoreExample(rec *record.Record, q *query.Query) record.Relevance {
	stems := indexStems(rec.Index)

	existence := func(m *query.Matcher) bool {
		switch m.Target {
		case query.Romaji:
			return matchAny(m, query.Existence, rec.Translation)
		case query.Generic:
			return matchAny(m, query.Existence, rec.Sentence, rec.Translation) ||
				matchAny(m, query.Existence, stems...)
		default:
			return matchAny(m, query.Existence, rec.Sentence) ||
				matchAny(m, query.Existence, stems...)
		}
	}
	high := func(m *query.Matcher) bool {
		switch m.Target {
		case query.Romaji:
			return matchAny(m, query.Medium, rec.Translation)
		case query.Generic:
			return matchAny(m, query.High, stems...) ||
				matchAny(m, query.Medium, rec.Translation)
		default:
			return matchAny(m, query.High, stems...)
		}
	}
	medium := func(m *query.Matcher) bool {
		if m.Target == query.Romaji {
			return false
		}
		return matchAny(m, query.Medium, stems...)
	}

	switch {
	case !satisfied(q, existence):
		return record.None
	case satisfied(q, high):
		return record.High
	case satisfied(q, medium):
		return record.Medium
	default:
		return record.Low
	}
}

// indexStems returns the dictionary forms of the index words of an example.
// Each index word may be followed by a reading in parentheses, a sense number
// in brackets, the form used in the sentence in braces, or a '~' marking a
// verified sense.
func indexStems(index string) []string {
	if index == "" {
		return nil
	}
	words := strings.Fields(index)
	for i, w := range words {
		if j := strings.IndexAny(w, "([{~"); j >= 0 {
			words[i] = w[:j]
		}
	}
	return words
}
