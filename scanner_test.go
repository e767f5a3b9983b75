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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "lf",
			input:    "a\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "crlf",
			input:    "a\r\nb\r\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "no final newline",
			input:    "a\n\nb",
			expected: []string{"a", "", "b"},
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := NewScanner(strings.NewReader(test.input))
			var got []string
			for s.Scan() {
				got = append(got, s.Text())
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Scan (-want, +got):\n%s", diff)
			}
			if got, want := s.Lines(), len(test.expected); got != want {
				t.Fatalf("Lines: want: %d, got: %d", want, got)
			}
		})
	}
}

func TestScanner_Unread(t *testing.T) {
	t.Parallel()

	s := NewScanner(strings.NewReader("a\nb\n"))
	var got []string
	unread := false
	for s.Scan() {
		got = append(got, s.Text())
		if s.Text() == "b" && !unread {
			s.Unread()
			unread = true
		}
	}

	if diff := cmp.Diff([]string{"a", "b", "b"}, got); diff != "" {
		t.Fatalf("Scan (-want, +got):\n%s", diff)
	}
	if got, want := s.Lines(), 2; got != want {
		t.Fatalf("Lines: want: %d, got: %d", want, got)
	}
}

func TestScanner_overlong(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", maxLineSize+1)

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "middle",
			input:    "a\n" + long + "\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "crlf",
			input:    "a\r\n" + long + long + "\r\nb\r\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "last line",
			input:    "a\n" + long,
			expected: []string{"a"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := NewScanner(strings.NewReader(test.input))
			var got []string
			for s.Scan() {
				got = append(got, s.Text())
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Scan (-want, +got):\n%s", diff)
			}
			if got, want := s.Skipped(), 1; got != want {
				t.Errorf("Skipped: want: %d, got: %d", want, got)
			}
			if got, want := s.Lines(), len(test.expected)+1; got != want {
				t.Errorf("Lines: want: %d, got: %d", want, got)
			}
		})
	}
}
