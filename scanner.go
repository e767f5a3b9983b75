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
	"bufio"
	"bytes"
	"io"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 1024 * 1024
)

// Scanner scans a dictionary line by line. A line that was scanned can be
// pushed back to be returned again by the next call to Scan. Lines longer
// than the maximum line size are skipped.
type Scanner struct {
	s       *bufio.Scanner
	line    string
	unread  bool
	lines   int
	skipped int

	// skipping is true while the rest of an overlong line is discarded.
	skipping bool
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)
	s.s.Split(s.splitLine)
	return s
}

// Scan advances to the next line. It returns false if the scan stops either by
// reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if s.unread {
		s.unread = false
		return true
	}
	if !s.s.Scan() {
		return false
	}
	s.line = s.s.Text()
	s.lines++
	return true
}

// Text returns the current line without its line terminator.
func (s *Scanner) Text() string {
	return s.line
}

// Unread pushes back the current line.
func (s *Scanner) Unread() {
	s.unread = true
}

// Lines returns the number of physical lines read so far, including skipped
// lines. Pushed back lines are counted once.
func (s *Scanner) Lines() int {
	return s.lines
}

// Skipped returns the number of overlong lines skipped so far.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// splitLine splits the input into lines terminated by "\n" or "\r\n". Once
// a line fills the buffer it is discarded up to the next "\n".
func (s *Scanner) splitLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexByte(data, '\n')

	if s.skipping {
		if i < 0 {
			return len(data), nil, nil
		}
		s.skipping = false
		return i + 1, nil, nil
	}

	if i >= 0 {
		// Found a full line.
		return i + 1, bytes.TrimSuffix(data[:i], []byte{'\r'}), nil
	}

	if atEOF {
		return len(data), bytes.TrimSuffix(data, []byte{'\r'}), nil
	}

	if len(data) >= maxLineSize {
		s.skipping = true
		s.skipped++
		s.lines++
		return len(data), nil, nil
	}

	// Request more data.
	return 0, nil, nil
}
