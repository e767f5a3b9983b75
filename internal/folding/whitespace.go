// Copyright 2025 Ian Lewis
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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Separator is the rune that separates query atoms. Whitespace next to a
// separator is dropped.
const Separator = '&'

// WhitespaceFolder folds whitespace in a query. It removes whitespace from
// the beginning and end of the input and around separators, and replaces all
// other whitespace spans with a single ASCII space rune.
type WhitespaceFolder struct {
	// notStart is true after encountering the first non-whitespace rune.
	notStart bool

	// wsSpan is true if the transformer is currently handling a whitespace
	// span.
	wsSpan bool

	// afterSep is true if the last rune emitted was a separator.
	afterSep bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			nSrc += size
			if w.notStart && !w.afterSep {
				w.wsSpan = true
			}
			continue
		}

		// A whitespace span is only emitted when it separates two
		// non-separator runes.
		if w.wsSpan && c != Separator {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
		}

		// NOTE: size cannot be used here because c could be utf8.RuneError
		// in which case size would be 1 but the length of utf8.RuneError is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			// Keep wsSpan so the space is emitted again on the next call.
			if w.wsSpan && c != Separator {
				nDst--
			}
			return nDst, nSrc, transform.ErrShortDst
		}
		w.wsSpan = false
		w.notStart = true
		w.afterSep = c == Separator
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
