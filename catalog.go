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

	"golang.org/x/text/cases"

	"github.com/ianlewis/go-jdict/internal/index"
)

// Catalog is a set of dictionaries that can be looked up by name. Names are
// compared case-insensitively.
type Catalog struct {
	dicts []*Dictionary
	index *index.Index[*Dictionary]
}

// NewCatalog returns a catalog of the given dictionaries. The order of
// dictionaries is preserved by [Catalog.Dictionaries].
func NewCatalog(dicts []*Dictionary) *Catalog {
	return &Catalog{
		dicts: dicts,
		index: index.NewIndex(dicts, func(d *Dictionary) string {
			return foldName(d.Name())
		}, strings.Compare),
	}
}

// Dictionaries returns all dictionaries in the catalog.
func (c *Catalog) Dictionaries() []*Dictionary {
	return c.dicts
}

// Lookup returns the dictionaries with the given name. If there are none the
// dictionaries whose name starts with name are returned.
func (c *Catalog) Lookup(name string) []*Dictionary {
	name = foldName(name)
	if dicts := c.index.Search(name); len(dicts) > 0 {
		return dicts
	}
	if name == "" {
		return nil
	}
	return c.index.SearchPrefix(name)
}

// Select returns the dictionaries with any of the given names in catalog
// order. If no names are given all dictionaries are returned. Names that
// match no dictionary are returned as missing.
func (c *Catalog) Select(names []string) ([]*Dictionary, []string) {
	if len(names) == 0 {
		return c.dicts, nil
	}

	selected := make(map[*Dictionary]bool)
	var missing []string
	for _, name := range names {
		found := c.Lookup(name)
		if len(found) == 0 {
			missing = append(missing, name)
		}
		for _, d := range found {
			selected[d] = true
		}
	}

	var dicts []*Dictionary
	for _, d := range c.dicts {
		if selected[d] {
			dicts = append(dicts, d)
		}
	}
	return dicts, missing
}

func foldName(name string) string {
	// A Caser is stateful and may not be shared.
	return cases.Fold().String(strings.TrimSpace(name))
}
