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
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ianlewis/go-jdict/record"
)

// sniffLines is the number of content lines examined to detect a format.
const sniffLines = 20

// namePatterns maps well known dictionary file names to their format. Order
// matters: "kanjidic" must be tested before "edict".
var namePatterns = []struct {
	substr string
	format record.Format
}{
	{"kanjidic", record.FormatCharacter},
	{"kanjd212", record.FormatCharacter},
	{"edict", record.FormatWord},
	{"enamdict", record.FormatWord},
	{"compdic", record.FormatWord},
	{"kradfile", record.FormatRadical},
	{"radk", record.FormatRadical},
	{"radicals", record.FormatRadical},
	{"examples", record.FormatExample},
	{"tanaka", record.FormatExample},
}

func formatFromName(name string) (record.Format, bool) {
	name = strings.ToLower(name)
	for _, p := range namePatterns {
		if strings.Contains(name, p.substr) {
			return p.format, true
		}
	}
	return record.FormatUnknown, false
}

type linePattern struct {
	re     *regexp.Regexp
	format record.Format
}

// linePatterns recognize a single line of each format. They are compiled the
// first time a dictionary's contents are sniffed.
var linePatterns = sync.OnceValue(func() []linePattern {
	return []linePattern{
		{regexp.MustCompile(`^A: .*\t`), record.FormatExample},
		{regexp.MustCompile(`^[^\x00-\x7f]:[^\x00-\x7f ]+(?: [^\x00-\x7f ]+)*$`), record.FormatRadical},
		{regexp.MustCompile(`^\S+ (?:\[[^\]]*\] )?/.*/$`), record.FormatWord},
		{regexp.MustCompile(`^[^\x00-\x7f] .*(?:\{|\bS\d{1,2}\b|\b[0-9a-fA-F]{4}\b)`), record.FormatCharacter},
	}
})

// sniffFormat detects the format from the first lines of the dictionary. A
// format is chosen if more than half of the examined lines match it.
func (d *Dictionary) sniffFormat() (record.Format, error) {
	rc, err := d.OpenStream()
	if err != nil {
		return record.FormatUnknown, err
	}
	defer rc.Close()

	patterns := linePatterns()
	votes := make(map[record.Format]int)
	lines := 0
	s := NewScanner(rc)
	for lines < sniffLines && s.Scan() {
		line := s.Text()
		if skipLine(line) || strings.HasPrefix(line, record.IndexTag) {
			continue
		}
		lines++
		for _, p := range patterns {
			if p.re.MatchString(line) {
				votes[p.format]++
				break
			}
		}
	}
	if err := s.Err(); err != nil {
		return record.FormatUnknown, fmt.Errorf("%w: reading %q: %w", ErrDictionaryUnavailable, d.path, err)
	}

	best, bestVotes := record.FormatUnknown, 0
	for f, n := range votes {
		if n > bestVotes {
			best, bestVotes = f, n
		}
	}
	if bestVotes*2 <= lines {
		return record.FormatUnknown, nil
	}
	return best, nil
}

// skipLine reports whether a line is a comment or blank.
func skipLine(line string) bool {
	return strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#")
}
