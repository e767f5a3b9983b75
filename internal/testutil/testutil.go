// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil writes dictionary files for tests.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/encoding/japanese"
)

// Compression is the compression of a test dictionary file.
type Compression int

const (
	// None writes the dictionary uncompressed.
	None Compression = iota

	// Gzip compresses the dictionary with gzip. The file name should end in
	// ".gz".
	Gzip

	// DictZip compresses the dictionary with dictzip. The file name should
	// end in ".dz".
	DictZip
)

// DictOptions are options for writing a test dictionary.
type DictOptions struct {
	// Compression is the file's compression.
	Compression Compression

	// EUCJP encodes the file in EUC-JP instead of UTF-8.
	EUCJP bool

	// CRLF terminates lines with "\r\n".
	CRLF bool
}

// WriteDict writes the lines to a file with the given name in dir and returns
// its path. If dir is empty a new temporary directory is used.
func WriteDict(t *testing.T, dir, name string, lines []string, opts *DictOptions) string {
	t.Helper()
	if opts == nil {
		opts = &DictOptions{}
	}
	if dir == "" {
		dir = t.TempDir()
	}

	eol := "\n"
	if opts.CRLF {
		eol = "\r\n"
	}
	content := strings.Join(lines, eol) + eol
	if opts.EUCJP {
		var err error
		content, err = japanese.EUCJP.NewEncoder().String(content)
		if err != nil {
			t.Fatalf("encoding EUC-JP: %v", err)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	switch opts.Compression {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.WriteString(content); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
