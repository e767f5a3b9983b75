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

package folding

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "already folded",
			query:    "日本",
			expected: "日本",
		},
		{
			name:     "trim",
			query:    "  nihon\t",
			expected: "nihon",
		},
		{
			name:     "internal whitespace",
			query:    "to   eat",
			expected: "to eat",
		},
		{
			name:     "whitespace around separator",
			query:    "cats  &  dogs",
			expected: "cats&dogs",
		},
		{
			name:     "full width ascii",
			query:    "ｎｉｈｏｎ",
			expected: "nihon",
		},
		{
			name:     "full width separator",
			query:    "日本＆にほん",
			expected: "日本&にほん",
		},
		{
			name:     "ideographic space",
			query:    "日本　語",
			expected: "日本 語",
		},
		{
			name:     "half width katakana",
			query:    "ﾆﾎﾝ",
			expected: "ニホン",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := String(test.query)
			if err != nil {
				t.Fatalf("String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("String(%q) (-want, +got):\n%s", test.query, diff)
			}
		})
	}
}

func TestWhitespaceFolder_shortBuffers(t *testing.T) {
	t.Parallel()

	query := strings.Repeat("にほん  ご & ", 200)
	expected, _, err := transform.String(&WhitespaceFolder{}, query)
	if err != nil {
		t.Fatalf("transform.String: %v", err)
	}

	// Reading in small chunks must produce the same output.
	var b strings.Builder
	r := transform.NewReader(strings.NewReader(query), &WhitespaceFolder{})
	buf := make([]byte, 7)
	for {
		n, err := r.Read(buf)
		b.Write(buf[:n])
		if err != nil {
			break
		}
	}

	if diff := cmp.Diff(expected, b.String()); diff != "" {
		t.Fatalf("reader output (-want, +got):\n%s", diff)
	}
	if strings.Contains(expected, " &") || strings.Contains(expected, "& ") {
		t.Fatalf("whitespace left around separator: %q", expected)
	}
}
