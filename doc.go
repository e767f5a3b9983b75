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

// Package jdict implements searching Japanese-English dictionaries in pure Go.
//
// Dictionaries are line oriented text files, optionally compressed with gzip
// or dictzip and encoded in either UTF-8 or EUC-JP. Supported formats are:
//  1. Word dictionaries in the EDICT or EDICT2 format.
//  2. Character dictionaries in the KANJIDIC format.
//  3. Radical dictionaries mapping kanji to their radicals.
//  4. Example sentence dictionaries in the Tanaka corpus format.
//
// Any other text file can be searched line by line.
//
// A search is performed by a [Request]. The query is split on '&' into atoms
// which are compiled into regular expressions for several relevance tiers.
// Romaji and kana atoms are also converted to the other scripts so that
// "nihon" finds 日本 [にほん]. The dictionary is scanned from start to end and
// every matching line is reported to an [Output] with its relevance. The most
// relevant results are reported as soon as they are found. Less relevant
// results are reported after the scan.
//
//	d, err := jdict.Open("/usr/share/edict/edict.gz", nil)
//	if err != nil {
//		return err
//	}
//	req, err := jdict.NewRequest(d, "nihon", nil)
//	if err != nil {
//		return err
//	}
//	summary, err := req.Run(ctx, out)
package jdict
