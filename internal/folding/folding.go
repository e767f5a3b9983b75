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

// Package folding normalizes query text before it is compiled.
package folding

import (
	"fmt"

	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Query returns a [transform.Transformer] that normalizes a raw query. Full
// width ASCII (including the ideographic space and ＆) is folded to ASCII,
// half width katakana is widened, and whitespace is folded by
// [WhitespaceFolder].
func Query() transform.Transformer {
	return transform.Chain(width.Fold, &WhitespaceFolder{})
}

// String applies the [Query] transformer to s.
func String(s string) (string, error) {
	folded, _, err := transform.String(Query(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}
