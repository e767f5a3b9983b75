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

package script

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected Script
	}{
		{name: "kanji", text: "日本", expected: Kanji},
		{name: "kanji with okurigana", text: "食べる", expected: Kanji},
		{name: "kanji with iteration mark", text: "人々", expected: Kanji},
		{name: "hiragana", text: "にほん", expected: Hiragana},
		{name: "katakana", text: "コーヒー", expected: Katakana},
		{name: "romaji", text: "nihon", expected: Romaji},
		{name: "romaji with digits", text: "mp3", expected: Romaji},
		{name: "regexp syntax is neutral", text: "^にほ.*$", expected: Hiragana},
		{name: "spaces are neutral", text: "to eat", expected: Romaji},
		{name: "hiragana and katakana", text: "ひらカタ", expected: Mixed},
		{name: "kana and latin", text: "Tシャツ", expected: Mixed},
		{name: "digits only", text: "1234", expected: Mixed},
		{name: "punctuation only", text: "...", expected: Mixed},
		{name: "empty", text: "", expected: Mixed},
		{name: "hangul", text: "한국", expected: Mixed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Classify(test.text)); diff != "" {
				t.Fatalf("Classify(%q) (-want, +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestIsKana(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		expected bool
	}{
		{text: "にほん", expected: true},
		{text: "ひらカタ", expected: true},
		{text: "コーヒー", expected: true},
		{text: "日本", expected: false},
		{text: "nihon", expected: false},
		{text: "ー", expected: false},
		{text: "", expected: false},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			if got := IsKana(test.text); got != test.expected {
				t.Fatalf("IsKana(%q); want: %v, got: %v", test.text, test.expected, got)
			}
		})
	}
}

func TestHiraganaToKatakana(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		expected string
	}{
		{text: "にほん", expected: "ニホン"},
		{text: "ちぇっく", expected: "チェック"},
		{text: "こーひー", expected: "コーヒー"},
		{text: "日本ご", expected: "日本ゴ"},
		{text: "abc", expected: "abc"},
		{text: "ゔ", expected: "ヴ"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, HiraganaToKatakana(test.text)); diff != "" {
				t.Fatalf("HiraganaToKatakana(%q) (-want, +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestKatakanaToHiragana(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		expected string
	}{
		{text: "ニホン", expected: "にほん"},
		{text: "コーヒー", expected: "こーひー"},
		{text: "ヷ", expected: "ヷ"},
		{text: "漢字カナ", expected: "漢字かな"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, KatakanaToHiragana(test.text)); diff != "" {
				t.Fatalf("KatakanaToHiragana(%q) (-want, +got):\n%s", test.text, diff)
			}
		})
	}
}

func TestKanaShiftRoundTrip(t *testing.T) {
	t.Parallel()

	for r := rune(hiraganaFirst); r <= hiraganaLast; r++ {
		s := string(r)
		if got := KatakanaToHiragana(HiraganaToKatakana(s)); got != s {
			t.Errorf("round trip of %q; got: %q", s, got)
		}
	}
}
