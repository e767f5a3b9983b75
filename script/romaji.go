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
	"strings"
	"unicode/utf8"
)

// maxSyllable is the length in bytes of the longest romaji syllable.
const maxSyllable = 3

// syllables maps romaji syllables to hiragana. It covers Hepburn,
// Kunrei-shiki, and the spellings commonly accepted by input methods.
var syllables = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",

	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"sa": "さ", "si": "し", "shi": "し", "su": "す", "se": "せ", "so": "そ",
	"za": "ざ", "zi": "じ", "ji": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"ta": "た", "ti": "ち", "chi": "ち", "tu": "つ", "tsu": "つ", "te": "て", "to": "と",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"la": "ら", "li": "り", "lu": "る", "le": "れ", "lo": "ろ",
	"wa": "わ", "wi": "ゐ", "we": "ゑ", "wo": "を",
	"vu": "ゔ",

	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ", "she": "しぇ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ", "je": "じぇ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"zya": "じゃ", "zyu": "じゅ", "zyo": "じょ",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ", "che": "ちぇ",
	"cya": "ちゃ", "cyu": "ちゅ", "cyo": "ちょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"dya": "ぢゃ", "dyu": "ぢゅ", "dyo": "ぢょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",

	"fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",
	"va": "ゔぁ", "vi": "ゔぃ", "ve": "ゔぇ", "vo": "ゔぉ",
	"thi": "てぃ", "dhi": "でぃ", "twu": "とぅ", "dwu": "どぅ",

	"xa": "ぁ", "xi": "ぃ", "xu": "ぅ", "xe": "ぇ", "xo": "ぉ",
	"xya": "ゃ", "xyu": "ゅ", "xyo": "ょ", "xtu": "っ", "xwa": "ゎ",
	"ltu": "っ", "lya": "ゃ", "lyu": "ゅ", "lyo": "ょ",
}

// longVowels spells vowels written with a macron or circumflex the way they
// are written in kana.
var longVowels = strings.NewReplacer(
	"ā", "aa", "â", "aa",
	"ī", "ii", "î", "ii",
	"ū", "uu", "û", "uu",
	"ē", "ei", "ê", "ei",
	"ō", "ou", "ô", "ou",
)

func isVowel(b byte) bool {
	switch b {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}

func isConsonant(b byte) bool {
	return 'a' <= b && b <= 'z' && !isVowel(b)
}

// RomajiToKana converts romaji to hiragana one syllable at a time from the
// front of s. It returns false if any part of s cannot be converted; partial
// conversions are never returned.
func RomajiToKana(s string) (string, bool) {
	s = longVowels.Replace(strings.ToLower(s))
	if s == "" {
		return "", false
	}

	var b strings.Builder
	for len(s) > 0 {
		c := s[0]
		if c >= utf8.RuneSelf {
			return "", false
		}

		switch {
		case c == '-':
			b.WriteRune(prolongedSoundMark)
			s = s[1:]
			continue

		case c == 'n' && (len(s) == 1 || s[1] == '\''):
			b.WriteString("ん")
			s = s[1:]
			if len(s) > 0 {
				s = s[1:]
			}
			continue

		case c == 'n' && s[1] == 'n' && (len(s) == 2 || !isVowel(s[2]) && s[2] != 'y'):
			b.WriteString("ん")
			s = s[2:]
			continue

		case c == 'n' && isConsonant(s[1]) && s[1] != 'y':
			b.WriteString("ん")
			s = s[1:]
			continue

		case c == 't' && strings.HasPrefix(s, "tch"):
			b.WriteString("っ")
			s = s[1:]
			continue

		case isConsonant(c) && c != 'n' && len(s) > 1 && s[1] == c:
			b.WriteString("っ")
			s = s[1:]
			continue
		}

		matched := false
		for n := min(maxSyllable, len(s)); n > 0; n-- {
			if kana, ok := syllables[s[:n]]; ok {
				b.WriteString(kana)
				s = s[n:]
				matched = true
				break
			}
		}
		if !matched {
			return "", false
		}
	}

	return b.String(), true
}
