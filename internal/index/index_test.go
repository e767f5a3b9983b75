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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type dict struct {
	Name string
	ID   int
}

func dictName(d dict) string {
	return strings.ToLower(d.Name)
}

var testDicts = []dict{
	{Name: "edict", ID: 1},
	{Name: "kanjidic", ID: 2},
	{Name: "EDICT", ID: 3},
	{Name: "edict2", ID: 4},
	{Name: "examples", ID: 5},
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected []dict
	}{
		{
			name:     "single result",
			query:    "kanjidic",
			expected: []dict{{Name: "kanjidic", ID: 2}},
		},
		{
			name:  "multiple results in original order",
			query: "edict",
			expected: []dict{
				{Name: "edict", ID: 1},
				{Name: "EDICT", ID: 3},
			},
		},
		{
			name:     "no results",
			query:    "none",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(testDicts, dictName, strings.Compare)

			if diff := cmp.Diff(test.expected, index.Search(test.query)); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_SearchPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		expected []dict
	}{
		{
			name:   "prefix",
			prefix: "ed",
			expected: []dict{
				{Name: "edict", ID: 1},
				{Name: "EDICT", ID: 3},
				{Name: "edict2", ID: 4},
			},
		},
		{
			name:   "all",
			prefix: "",
			expected: []dict{
				{Name: "edict", ID: 1},
				{Name: "EDICT", ID: 3},
				{Name: "edict2", ID: 4},
				{Name: "examples", ID: 5},
				{Name: "kanjidic", ID: 2},
			},
		},
		{
			name:     "past the end",
			prefix:   "z",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(testDicts, dictName, strings.Compare)

			if diff := cmp.Diff(test.expected, index.SearchPrefix(test.prefix)); diff != "" {
				t.Fatalf("SearchPrefix (-want, +got):\n%s", diff)
			}
			if got, want := index.Len(), len(testDicts); got != want {
				t.Fatalf("Len: want: %d, got: %d", want, got)
			}
		})
	}
}
