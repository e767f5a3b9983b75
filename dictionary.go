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
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-jdict/record"
)

// sampleSize is the number of bytes read to detect a dictionary's encoding.
const sampleSize = 64 * 1024

// Encoding is the character encoding of a dictionary file.
type Encoding int

const (
	// EncodingAuto detects the encoding from the start of the file.
	EncodingAuto Encoding = iota

	// EncodingUTF8 is UTF-8.
	EncodingUTF8

	// EncodingEUCJP is EUC-JP, the traditional encoding of EDICT and
	// KANJIDIC.
	EncodingEUCJP
)

// String implements [fmt.Stringer].
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingEUCJP:
		return "euc-jp"
	default:
		return "auto"
	}
}

// ParseEncoding returns the Encoding for an encoding name.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "euc-jp", "eucjp", "euc":
		return EncodingEUCJP, nil
	default:
		return EncodingAuto, fmt.Errorf("unknown encoding: %q", name)
	}
}

type compression int

const (
	compressionNone compression = iota
	compressionGzip
	compressionDictZip
)

// DictionaryOptions are options for opening a dictionary.
type DictionaryOptions struct {
	// Name is the dictionary's name. Defaults to the file name without
	// extensions.
	Name string

	// Format is the name of the dictionary format as accepted by
	// [record.ParseFormat]. If empty the format is detected from the file
	// name and contents.
	Format string

	// Encoding is the file's character encoding.
	Encoding Encoding
}

// Dictionary is a dictionary file.
type Dictionary struct {
	path        string
	name        string
	format      record.Format
	encoding    Encoding
	compression compression

	lineCount func() int
}

// OpenAll opens all dictionaries under a directory. Hidden files are skipped.
// This function will return all successfully opened dictionaries along with
// any errors that occurred.
func OpenAll(dir string) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(dir, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if path != dir && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Type().IsRegular() {
			d, err := Open(path, nil)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, d)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens the dictionary file at the given path and detects its format and
// encoding. Errors wrap [ErrDictionaryUnavailable].
func Open(path string, opts *DictionaryOptions) (*Dictionary, error) {
	if opts == nil {
		opts = &DictionaryOptions{}
	}

	d := &Dictionary{
		path:        path,
		name:        opts.Name,
		encoding:    opts.Encoding,
		compression: compressionOf(path),
	}
	if d.name == "" {
		d.name = baseName(path)
	}
	d.lineCount = sync.OnceValue(d.countLines)

	if d.encoding == EncodingAuto {
		enc, err := d.detectEncoding()
		if err != nil {
			return nil, err
		}
		d.encoding = enc
	}

	var err error
	switch {
	case opts.Format != "":
		d.format, err = record.ParseFormat(opts.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrDictionaryUnavailable, path, err)
		}
	default:
		var ok bool
		d.format, ok = formatFromName(d.name)
		if !ok {
			d.format, err = d.sniffFormat()
			if err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	return d.name
}

// String implements [fmt.Stringer]. It returns the dictionary name.
func (d *Dictionary) String() string {
	return d.name
}

// Path returns the path of the dictionary file.
func (d *Dictionary) Path() string {
	return d.path
}

// Format returns the dictionary format.
func (d *Dictionary) Format() record.Format {
	return d.format
}

// Encoding returns the character encoding of the dictionary file.
func (d *Dictionary) Encoding() Encoding {
	return d.encoding
}

// LineCount returns the number of lines in the dictionary. The file is read
// the first time LineCount is called. The count is a hint and is zero if the
// file could not be read.
func (d *Dictionary) LineCount() int {
	return d.lineCount()
}

// OpenStream opens the dictionary's contents decoded as UTF-8. The caller must
// close the returned reader.
func (d *Dictionary) OpenStream() (io.ReadCloser, error) {
	rc, err := d.openRaw()
	if err != nil {
		return nil, err
	}
	if d.encoding != EncodingEUCJP {
		return rc, nil
	}
	return &stream{
		Reader:  transform.NewReader(rc, japanese.EUCJP.NewDecoder()),
		closers: []io.Closer{rc},
	}, nil
}

// openRaw opens the decompressed but not decoded file contents.
func (d *Dictionary) openRaw() (io.ReadCloser, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}

	switch d.compression {
	case compressionGzip:
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: reading %q: %w", ErrDictionaryUnavailable, d.path, err)
		}
		return &stream{
			Reader:  z,
			closers: []io.Closer{z, f},
		}, nil
	case compressionDictZip:
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: reading %q: %w", ErrDictionaryUnavailable, d.path, err)
		}
		return &stream{
			Reader:  z,
			closers: []io.Closer{z, f},
		}, nil
	default:
		return f, nil
	}
}

func (d *Dictionary) detectEncoding() (Encoding, error) {
	rc, err := d.openRaw()
	if err != nil {
		return EncodingAuto, err
	}
	defer rc.Close()

	b := make([]byte, sampleSize)
	n, err := io.ReadFull(rc, b)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return EncodingAuto, fmt.Errorf("%w: reading %q: %w", ErrDictionaryUnavailable, d.path, err)
	}
	b = b[:n]

	if bytes.IndexByte(b, 0) >= 0 {
		return EncodingAuto, fmt.Errorf("%w: %q: binary file", ErrDictionaryUnavailable, d.path)
	}
	if validUTF8Prefix(b, n == sampleSize) {
		return EncodingUTF8, nil
	}
	return EncodingEUCJP, nil
}

// validUTF8Prefix reports whether b is valid UTF-8. If b was cut from a longer
// input a truncated rune at its end is allowed.
func validUTF8Prefix(b []byte, truncated bool) bool {
	if utf8.Valid(b) {
		return true
	}
	if !truncated {
		return false
	}
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.Valid(b[:len(b)-i]) {
			return true
		}
	}
	return false
}

func (d *Dictionary) countLines() int {
	rc, err := d.openRaw()
	if err != nil {
		return 0
	}
	defer rc.Close()

	// '\n' never occurs inside a multibyte character in either supported
	// encoding so the undecoded contents can be counted.
	buf := make([]byte, 32*1024)
	count := 0
	var last byte
	for {
		n, err := rc.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err != nil {
			break
		}
	}
	if last != 0 && last != '\n' {
		count++
	}
	return count
}

func compressionOf(path string) compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return compressionGzip
	case ".dz":
		return compressionDictZip
	default:
		return compressionNone
	}
}

// baseName returns the file name without its compression and file
// extensions.
func baseName(path string) string {
	name := filepath.Base(path)
	if compressionOf(name) != compressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if ext := filepath.Ext(name); ext != "" && ext != name {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// stream is a reader which closes several underlying readers.
type stream struct {
	io.Reader
	closers []io.Closer
}

// Close closes all underlying readers and returns the first error.
func (s *stream) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
