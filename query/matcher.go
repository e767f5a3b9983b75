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

	"github.com/ianlewis/go-jdict/script"
)

// Tier is a relevance tier of a matcher.
type Tier int

const (
	// Existence decides whether a field matches at all.
	Existence Tier = iota

	// Locate finds the positions of matches for highlighting. It uses
	// leftmost-longest matching.
	Locate

	// Medium matches on a word boundary in English text, or at the start of
	// a field or field alternative in Japanese text.
	Medium

	// High matches a whole field or field alternative.
	High

	numTiers
)

// String implements [fmt.Stringer].
func (t Tier) String() string {
	switch t {
	case Existence:
		return "existence"
	case Locate:
		return "locate"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Tier patterns for fields written in Japanese. Fields may hold several
// alternatives separated by ';' (EDICT2), and KANJIDIC readings may carry a
// '.' before the okurigana and '-' affix markers.
var japanesePatterns = [numTiers]string{
	Existence: `(?i)(?:%s)`,
	Locate:    `(?i)(?:%s)`,
	Medium:    `(?i)(?:^|;)-?(?:%s)`,
	High:      `(?i)(?:^|;)-?(?:%s)(?:\.[^;]*)?(?:\([^)]*\))?-?(?:;|$)`,
}

// Tier patterns for English text. A whole definition may start with
// parenthesized tags or sense numbers, an infinitive "to", and end with
// parenthesized notes.
var englishPatterns = [numTiers]string{
	Existence: `(?i)(?:%s)`,
	Locate:    `(?i)(?:%s)`,
	Medium:    `(?i)(?:^|[^\pL\pN])(?:%s)(?:[^\pL\pN]|$)`,
	High:      `(?i)^(?:\([^)]*\)\s*)*(?:to\s+)?(?:%s)(?:\s*\([^)]*\))*$`,
}

// Matcher matches a single spelling of an atom against record fields.
type Matcher struct {
	// Text is the regular expression source in the matcher's script.
	Text string

	// Script is the script of Text.
	Script script.Script

	// Target is the class of record fields the matcher is tested against.
	Target Class

	tiers [numTiers]*regexp.Regexp
}

func newMatcher(text string, s script.Script, target Class) (*Matcher, error) {
	// Compile the fragment on its own first so that errors refer to the text
	// the user wrote rather than to a tier pattern.
	if _, err := regexp.Compile(text); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	patterns := &japanesePatterns
	if target == Romaji {
		patterns = &englishPatterns
	}

	m := &Matcher{
		Text:   text,
		Script: s,
		Target: target,
	}
	for t, p := range patterns {
		re, err := regexp.Compile(fmt.Sprintf(p, text))
		if err != nil {
			return nil, fmt.Errorf("%w: %s pattern: %w", ErrCompile, Tier(t), err)
		}
		if Tier(t) == Locate {
			re.Longest()
		}
		m.tiers[t] = re
	}
	return m, nil
}

// Match reports whether s matches the matcher at tier t.
func (m *Matcher) Match(t Tier, s string) bool {
	return m.tiers[t].MatchString(s)
}

// Pattern returns the regular expression used for tier t.
func (m *Matcher) Pattern(t Tier) string {
	return m.tiers[t].String()
}
