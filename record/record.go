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

// Package record implements parsing of dictionary file lines.
//
// Each supported dictionary format has its own parse function which fills a
// [Record]. Parse functions never copy line data: every field of a Record is
// a sub-slice of its Raw line. Records are meant to be reused between lines;
// each parse function resets the record before writing to it.
//
// Supported formats are:
//  1. Word dictionaries in the EDICT or EDICT2 format.
//  2. Character dictionaries in the KANJIDIC format, optionally with the
//     character's radicals listed directly after the character.
//  3. Radical dictionaries with one "kanji:radical radical..." entry per line.
//  4. Example sentence dictionaries in the Tanaka corpus format.
//
// Lines of any other dictionary are kept verbatim.
package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFormatMismatch indicates that a line could not be parsed in the
// requested format.
var ErrFormatMismatch = errors.New("format mismatch")

// ErrUnknownFormat indicates that a format name is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// Format is a dictionary format.
type Format int

const (
	// FormatUnknown is any line oriented text file.
	FormatUnknown Format = iota

	// FormatWord is the EDICT word dictionary format.
	FormatWord

	// FormatCharacter is the KANJIDIC character dictionary format.
	FormatCharacter

	// FormatRadical is the kanji to radicals format.
	FormatRadical

	// FormatExample is the Tanaka corpus example sentence format.
	FormatExample
)

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case FormatWord:
		return "word"
	case FormatCharacter:
		return "character"
	case FormatRadical:
		return "radical"
	case FormatExample:
		return "example"
	default:
		return "unknown"
	}
}

// ParseFormat returns the Format for a format name. Both the generic names
// returned by [Format.String] and common dictionary names are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "word", "edict", "edict2":
		return FormatWord, nil
	case "character", "kanji", "kanjidic":
		return FormatCharacter, nil
	case "radical", "radicals", "radkfile", "kradfile":
		return FormatRadical, nil
	case "example", "examples", "tanaka":
		return FormatExample, nil
	case "unknown", "text":
		return FormatUnknown, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Relevance is how relevant a record is to a query.
type Relevance int

const (
	// None means the record does not match.
	None Relevance = iota

	// Low means the record matches loosely.
	Low

	// Medium means part of a field matches on a word or prefix boundary.
	Medium

	// High means a whole field matches.
	High
)

// String implements [fmt.Stringer].
func (r Relevance) String() string {
	switch r {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return "none"
	}
}

// ReadingGroup is a group of readings of a character.
type ReadingGroup int

const (
	// General are the on and kun readings.
	General ReadingGroup = iota

	// Nanori are readings used in names, listed after the T1 marker.
	Nanori

	// RadicalName are names of the character when used as a radical, listed
	// after the T2 marker.
	RadicalName

	// NumReadingGroups is the number of reading groups.
	NumReadingGroups
)

// Record is a parsed dictionary line.
type Record struct {
	// Raw is the line without its line terminator. Example records hold both
	// physical lines separated by a newline.
	Raw string

	// Format is the format the line was parsed as.
	Format Format

	// Relevance is set by the search engine.
	Relevance Relevance

	// Important is set for word entries marked as common with (P).
	Important bool

	// Headword is the word as written.
	Headword string

	// Reading is the kana reading of the headword. It is empty for words
	// written in kana.
	Reading string

	// Classes are the parenthesized part-of-speech and usage tags of the first
	// definition, e.g. "n,adj-no".
	Classes []string

	// Definitions are the English definitions with sense numbers removed.
	Definitions []string

	// Sequence is the EDICT2 entry sequence id, e.g. "EntL1582710X".
	Sequence string

	// Character is the character of a character or radical entry.
	Character string

	// Radicals are the radicals the character is composed of.
	Radicals []string

	// Strokes is the stroke count. Zero when missing.
	Strokes int

	// Grade is the school grade. Zero when missing.
	Grade int

	// Frequency is the frequency rank. Zero when missing.
	Frequency int

	// JLPT is the JLPT level. Zero when missing.
	JLPT int

	// Readings are the character's readings per group.
	Readings [NumReadingGroups][]string

	// Meanings are the character's English meanings.
	Meanings []string

	// Sentence is the Japanese example sentence.
	Sentence string

	// Translation is the English translation of the sentence.
	Translation string

	// ID is the example's corpus id.
	ID string

	// Index holds the index words of the example sentence (the B line).
	Index string
}

// Reset clears all fields while keeping the capacity of slices so a reused
// record does not reallocate.
func (r *Record) Reset() {
	var readings [NumReadingGroups][]string
	for i := range readings {
		readings[i] = r.Readings[i][:0]
	}
	*r = Record{
		Classes:     r.Classes[:0],
		Definitions: r.Definitions[:0],
		Radicals:    r.Radicals[:0],
		Readings:    readings,
		Meanings:    r.Meanings[:0],
	}
}

// Clone returns a deep copy of r that shares no slices with it.
func (r *Record) Clone() *Record {
	c := *r
	c.Classes = clone(r.Classes)
	c.Definitions = clone(r.Definitions)
	c.Radicals = clone(r.Radicals)
	c.Meanings = clone(r.Meanings)
	for i := range c.Readings {
		c.Readings[i] = clone(r.Readings[i])
	}
	return &c
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

// Classification returns the word's classification tags joined by commas.
func (r *Record) Classification() string {
	return strings.Join(r.Classes, ",")
}

// Parse parses line as format f into rec. Lines that cannot be parsed return
// an error wrapping [ErrFormatMismatch]; rec is then left in an unspecified
// state and should be re-parsed with [ParseUnknown].
func Parse(rec *Record, line string, f Format) error {
	switch f {
	case FormatWord:
		return ParseWord(rec, line)
	case FormatCharacter:
		return ParseCharacter(rec, line)
	case FormatRadical:
		return ParseRadical(rec, line)
	case FormatExample:
		return ParseExample(rec, line)
	default:
		return ParseUnknown(rec, line)
	}
}

// ParseUnknown stores line verbatim. It never fails.
func ParseUnknown(rec *Record, line string) error {
	rec.Reset()
	rec.Raw = trimEOL(line)
	rec.Format = FormatUnknown
	return nil
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// nextToken returns the first space delimited token of s and the rest of s.
func nextToken(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func mismatch(f Format, line string) error {
	return fmt.Errorf("%w: not a %s line: %q", ErrFormatMismatch, f, line)
}
