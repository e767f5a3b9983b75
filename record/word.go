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
	"strings"
)

const (
	importantMarker = "(P)"
	sequencePrefix  = "EntL"
)

// ParseWord parses an EDICT or EDICT2 line:
//
//	KANJI [KANA] /(classes) (1) definition/(2) definition/(P)/EntL123X/
//
// The reading is optional. Lines without a slash do not match.
func ParseWord(rec *Record, line string) error {
	rec.Reset()
	line = trimEOL(line)
	rec.Raw = line
	rec.Format = FormatWord

	slash := strings.IndexByte(line, '/')
	if slash < 0 {
		return mismatch(FormatWord, line)
	}

	headword, rest := nextToken(line[:slash])
	if headword == "" {
		return mismatch(FormatWord, line)
	}
	rec.Headword = headword

	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "[") {
		if end := strings.IndexByte(rest, ']'); end > 0 {
			rec.Reading = rest[1:end]
		}
	}

	body := line[slash+1:]
	first := true
	for body != "" {
		var item string
		item, body, _ = strings.Cut(body, "/")
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if item == importantMarker {
			rec.Important = true
			continue
		}
		if strings.HasPrefix(item, sequencePrefix) {
			rec.Sequence = item
			continue
		}

		if first {
			item = rec.parseClasses(item)
			first = false
		}
		item = stripSenseNumber(item)
		if trimmed, ok := strings.CutSuffix(item, importantMarker); ok {
			rec.Important = true
			item = strings.TrimSpace(trimmed)
		}
		if item == "" {
			continue
		}
		rec.Definitions = append(rec.Definitions, item)
	}

	return nil
}

// parseClasses consumes the leading parenthesized tags of the first
// definition. A numeric tag is the first sense number and ends the
// classification.
func (r *Record) parseClasses(item string) string {
	for strings.HasPrefix(item, "(") {
		end := strings.IndexByte(item, ')')
		if end < 0 {
			break
		}
		tag := item[1:end]
		if isDigits(tag) {
			break
		}
		r.Classes = append(r.Classes, tag)
		item = strings.TrimLeft(item[end+1:], " ")
	}
	return item
}

// stripSenseNumber removes a leading "(N)" sense number.
func stripSenseNumber(item string) string {
	if !strings.HasPrefix(item, "(") {
		return item
	}
	end := strings.IndexByte(item, ')')
	if end < 0 || !isDigits(item[1:end]) {
		return item
	}
	return strings.TrimLeft(item[end+1:], " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
