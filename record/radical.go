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

// ParseRadical parses a line listing the radicals of a kanji:
//
//	品:口
func ParseRadical(rec *Record, line string) error {
	rec.Reset()
	line = trimEOL(line)
	rec.Raw = line
	rec.Format = FormatRadical

	char, radicals, ok := strings.Cut(line, ":")
	char = strings.TrimSpace(char)
	if !ok || char == "" {
		return mismatch(FormatRadical, line)
	}
	rec.Character = char

	for radicals != "" {
		var tok string
		tok, radicals = nextToken(radicals)
		if tok != "" {
			rec.Radicals = append(rec.Radicals, tok)
		}
	}

	return nil
}
