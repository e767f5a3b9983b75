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

// Package index implements a generic sorted array index over string keys.
package index

import (
	"slices"
	"sort"
	"strings"
)

type entry[V any] struct {
	key   string
	value V
}

// Index is a generic sorted array index.
type Index[V any] struct {
	// entries sorted by key. Entries with equal keys keep their original
	// order.
	entries []entry[V]

	cmp func(string, string) int
}

// NewIndex creates an index of values keyed by the key function. cmp(a, b)
// should return a negative number when a < b, a positive number when a > b
// and zero when a == b or a and b are incomparable in the sense of a strict
// weak ordering.
func NewIndex[V any](values []V, key func(V) string, cmp func(string, string) int) *Index[V] {
	entries := make([]entry[V], len(values))
	for i, v := range values {
		entries[i] = entry[V]{key: key(v), value: v}
	}
	slices.SortStableFunc(entries, func(a, b entry[V]) int {
		return cmp(a.key, b.key)
	})

	return &Index[V]{
		entries: entries,
		cmp:     cmp,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.entries)
}

// Search performs a binary search over the index and returns the values whose
// key compares equal to query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return idx.cmp(query, idx.entries[i].key)
	})

	if !found {
		return nil
	}

	var values []V
	for j := i; j < len(idx.entries) && idx.cmp(query, idx.entries[j].key) == 0; j++ {
		values = append(values, idx.entries[j].value)
	}
	return values
}

// SearchPrefix returns the values whose key starts with prefix. It requires
// an index ordered by byte-wise comparison such as [strings.Compare].
func (idx *Index[V]) SearchPrefix(prefix string) []V {
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.cmp(idx.entries[i].key, prefix) >= 0
	})

	var values []V
	for j := i; j < len(idx.entries) && strings.HasPrefix(idx.entries[j].key, prefix); j++ {
		values = append(values, idx.entries[j].value)
	}
	return values
}
