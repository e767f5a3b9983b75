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

package jdict

import (
	"github.com/ianlewis/go-jdict/record"
)

// Output receives the results of a search. Methods are called from the
// goroutine running the search, one at a time.
//
// Records passed to the result methods are only valid for the duration of the
// call. Implementations must use [record.Record.Clone] to keep them.
type Output interface {
	// SearchBegin is called once before the dictionary is scanned.
	SearchBegin(r *Request)

	// WordResult is called for each word dictionary result.
	WordResult(rec *record.Record)

	// CharacterResult is called for each character or radical dictionary
	// result.
	CharacterResult(rec *record.Record)

	// ExampleResult is called for each example sentence result.
	ExampleResult(rec *record.Record)

	// UnknownResult is called for each result from a dictionary of unknown
	// format, and for lines that do not match their dictionary's format.
	UnknownResult(rec *record.Record)

	// MoreRelevantHeader is called before the first highly relevant word
	// result, and once more after the scan if any were found.
	MoreRelevantHeader()

	// LessRelevantHeader is called once before less relevant results are
	// reported.
	LessRelevantHeader()

	// SearchEnd is called once when the search finishes, including when it
	// was canceled or failed.
	SearchEnd(s *Summary)
}

// ProgressReporter is an optional interface implemented by an Output to be
// notified of the progress of a scan.
type ProgressReporter interface {
	// Progress is called periodically with the number of lines scanned and
	// the approximate total number of lines in the dictionary.
	Progress(lines, total int)
}

// emit reports rec to the result method for its format.
func emit(out Output, rec *record.Record) {
	switch rec.Format {
	case record.FormatWord:
		out.WordResult(rec)
	case record.FormatCharacter, record.FormatRadical:
		out.CharacterResult(rec)
	case record.FormatExample:
		out.ExampleResult(rec)
	default:
		out.UnknownResult(rec)
	}
}
