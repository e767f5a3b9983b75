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

// Package script classifies Japanese text by writing system and converts
// between romaji, hiragana, and katakana.
package script

import (
	"unicode"
)

// Script is the writing system a piece of text is written in.
type Script int

const (
	// Mixed is text that does not belong to a single script.
	Mixed Script = iota

	// Kanji is text containing kanji and otherwise only kana. Words written
	// with okurigana such as 食べる are Kanji.
	Kanji

	// Hiragana is text written only in hiragana.
	Hiragana

	// Katakana is text written only in katakana.
	Katakana

	// Romaji is text written only in Latin letters and digits.
	Romaji
)

// String implements [fmt.Stringer].
func (s Script) String() string {
	switch s {
	case Kanji:
		return "kanji"
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Romaji:
		return "romaji"
	default:
		return "mixed"
	}
}

const (
	hiraganaFirst = 0x3041
	hiraganaLast  = 0x3096
	katakanaFirst = 0x30a1
	katakanaLast  = 0x30f6

	// kanaShift is the distance between a hiragana code point and its
	// katakana counterpart.
	kanaShift = katakanaFirst - hiraganaFirst

	prolongedSoundMark = 'ー'
)

// counts holds the number of runes of each class seen in some text.
type counts struct {
	han, hiragana, katakana, latin, digit, other int
}

func count(s string) counts {
	var c counts
	for _, r := range s {
		switch {
		case isNeutral(r):
		case IsKanji(r):
			c.han++
		case IsHiragana(r):
			c.hiragana++
		case IsKatakana(r):
			c.katakana++
		case r == prolongedSoundMark:
			// Counted with whatever kana surrounds it.
		case r < unicode.MaxASCII && unicode.IsDigit(r):
			c.digit++
		case unicode.Is(unicode.Latin, r):
			c.latin++
		default:
			c.other++
		}
	}
	return c
}

// isNeutral reports whether r carries no script information. Whitespace and
// ASCII punctuation are neutral so that regular expression syntax in a
// query does not change its classification.
func isNeutral(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	return r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// Classify returns the script s is written in.
func Classify(s string) Script {
	c := count(s)
	japanese := c.han + c.hiragana + c.katakana
	switch {
	case c.other > 0:
		return Mixed
	case c.han > 0 && c.latin == 0 && c.digit == 0:
		return Kanji
	case japanese > 0:
		if c.latin > 0 || c.digit > 0 {
			return Mixed
		}
		if c.katakana == 0 {
			return Hiragana
		}
		if c.hiragana == 0 {
			return Katakana
		}
		return Mixed
	case c.latin > 0:
		return Romaji
	default:
		return Mixed
	}
}

// IsKana reports whether s contains kana and nothing but kana and neutral
// runes. Text mixing hiragana and katakana is kana.
func IsKana(s string) bool {
	c := count(s)
	return c.hiragana+c.katakana > 0 && c.han+c.latin+c.digit+c.other == 0
}

// IsKanji reports whether r is a CJK ideograph, including the iteration
// mark 々 and 〆.
func IsKanji(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// IsHiragana reports whether r is a hiragana letter.
func IsHiragana(r rune) bool {
	return hiraganaFirst <= r && r <= hiraganaLast
}

// IsKatakana reports whether r is a katakana letter. The prolonged sound
// mark is not included.
func IsKatakana(r rune) bool {
	return katakanaFirst <= r && r <= katakanaLast
}

// IsKanaRune reports whether r is hiragana, katakana, or the prolonged sound
// mark.
func IsKanaRune(r rune) bool {
	return IsHiragana(r) || IsKatakana(r) || r == prolongedSoundMark
}

// HiraganaToKatakana returns s with every hiragana letter replaced by its
// katakana counterpart.
func HiraganaToKatakana(s string) string {
	return shift(s, hiraganaFirst, hiraganaLast, kanaShift)
}

// KatakanaToHiragana returns s with every katakana letter replaced by its
// hiragana counterpart. Katakana without a hiragana counterpart, such as ヷ,
// is left unchanged.
func KatakanaToHiragana(s string) string {
	return shift(s, katakanaFirst, katakanaLast, -kanaShift)
}

func shift(s string, first, last, offset rune) string {
	rs := []rune(s)
	for i, r := range rs {
		if first <= r && r <= last {
			rs[i] = r + offset
		}
	}
	return string(rs)
}
