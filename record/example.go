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
	// SentenceTag starts the first line of an example.
	SentenceTag = "A:"

	// IndexTag starts the second line of an example.
	IndexTag = "B:"

	idMarker = "#ID="
)

// ParseExample parses a Tanaka corpus example. The example's two physical
// lines are joined by a newline:
//
//	A: 日本へ行く。<TAB>I go to Japan.#ID=1234_5678
//	B: 日本 へ 行く{行く}
//
// The B line is optional.
func ParseExample(rec *Record, line string) error {
	rec.Reset()
	line = trimEOL(line)
	rec.Raw = line
	rec.Format = FormatExample

	a, b, _ := strings.Cut(line, "\n")
	body, ok := strings.CutPrefix(trimEOL(a), SentenceTag)
	if !ok {
		return mismatch(FormatExample, line)
	}

	sentence, translation, _ := strings.Cut(body, "\t")
	rec.Sentence = strings.TrimSpace(sentence)
	if t, id, ok := strings.Cut(translation, idMarker); ok {
		translation = t
		rec.ID = strings.TrimSpace(id)
	}
	rec.Translation = strings.TrimSpace(translation)

	if index, ok := strings.CutPrefix(trimEOL(b), IndexTag); ok {
		rec.Index = strings.TrimSpace(index)
	}

	return nil
}
