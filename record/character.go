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

package record

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	nanoriMarker      = "T1"
	radicalNameMarker = "T2"

	// maxFieldDigits bounds the width of numeric field tokens so that codes
	// like "F1509" match but longer codes do not.
	maxFieldDigits = 4
)

// ParseCharacter parses a KANJIDIC line:
//
//	亜 [RADICALS...] 3021 U4e9c B1 G8 S7 F1509 J1 ... ア つ.ぐ T1 や {Asia} {rank next}
//
// The first token is the character. A run of non-ASCII tokens other than
// kana directly after it are the character's radicals. The single letter tagged numeric fields
// G (grade), S (strokes), F (frequency), and J (JLPT level) may appear
// anywhere before the meanings. Kana tokens are readings; the T1 and T2
// markers start the nanori and radical name reading groups. Meanings are the
// brace enclosed groups from the first '{'.
func ParseCharacter(rec *Record, line string) error {
	rec.Reset()
	line = trimEOL(line)
	rec.Raw = line
	rec.Format = FormatCharacter

	char, rest := nextToken(line)
	if utf8.RuneCountInString(char) != 1 || char[0] < utf8.RuneSelf {
		return mismatch(FormatCharacter, line)
	}
	rec.Character = char

	for {
		tok, next := nextToken(rest)
		if tok == "" || tok[0] < utf8.RuneSelf || isReading(tok) {
			break
		}
		rec.Radicals = append(rec.Radicals, tok)
		rest = next
	}

	if i := strings.IndexByte(rest, '{'); i >= 0 {
		rec.parseMeanings(rest[i:])
		rest = rest[:i]
	}

	group := General
	for rest != "" {
		var tok string
		tok, rest = nextToken(rest)
		switch {
		case tok == "":
		case tok == nanoriMarker:
			group = Nanori
		case tok == radicalNameMarker:
			group = RadicalName
		case isReading(tok):
			rec.Readings[group] = append(rec.Readings[group], tok)
		default:
			rec.parseNumericField(tok)
		}
	}

	return nil
}

func (r *Record) parseMeanings(s string) {
	for {
		start := strings.IndexByte(s, '{')
		if start < 0 {
			return
		}
		s = s[start+1:]
		end := strings.IndexByte(s, '}')
		if end < 0 {
			if m := strings.TrimSpace(s); m != "" {
				r.Meanings = append(r.Meanings, m)
			}
			return
		}
		if m := strings.TrimSpace(s[:end]); m != "" {
			r.Meanings = append(r.Meanings, m)
		}
		s = s[end+1:]
	}
}

// parseNumericField sets the field tagged by tok. Only the first occurrence
// of each tag is used.
func (r *Record) parseNumericField(tok string) {
	if len(tok) < 2 || len(tok) > maxFieldDigits+1 || !isDigits(tok[1:]) {
		return
	}
	var field *int
	switch tok[0] {
	case 'G':
		field = &r.Grade
	case 'S':
		field = &r.Strokes
	case 'F':
		field = &r.Frequency
	case 'J':
		field = &r.JLPT
	default:
		return
	}
	if *field != 0 {
		return
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return
	}
	*field = n
}

// isReading reports whether tok is a kana reading, optionally with a leading
// '-' marking a suffix reading.
func isReading(tok string) bool {
	tok = strings.TrimPrefix(tok, "-")
	r, _ := utf8.DecodeRuneInString(tok)
	return (0x3041 <= r && r <= 0x3096) || (0x30a1 <= r && r <= 0x30fc)
}
