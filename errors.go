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
	"errors"

	"github.com/ianlewis/go-jdict/query"
	"github.com/ianlewis/go-jdict/record"
)

var (
	// ErrQueryCompile indicates that a query is empty or could not be
	// compiled.
	ErrQueryCompile = query.ErrCompile

	// ErrDictionaryUnavailable indicates that a dictionary file could not be
	// opened or read.
	ErrDictionaryUnavailable = errors.New("dictionary unavailable")

	// ErrFormatMismatch indicates that a line does not match the dictionary
	// format. The search engine handles it by treating the line as unknown
	// text; it is never returned from a search.
	ErrFormatMismatch = record.ErrFormatMismatch

	// ErrBusy indicates that a request is already running.
	ErrBusy = errors.New("search already running")
)
