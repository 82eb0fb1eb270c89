// Copyright 2024 The javafmt Authors
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

package gen

// EstimateWidth approximates the printed column width of s by
// collapsing every run of whitespace (spaces, tabs, newlines) to one
// notional column. It is deliberately approximate - the true column is
// only known once internal/breaker has resolved surrounding soft
// breaks - and it is used only for the generation-time decision that
// changes the *shape* of the emitted IR rather than just its spacing:
// method-chain break-before-dot (spec.md 4.4), where the breaker's
// generic group-fit mechanism can't apply because the two outcomes
// aren't the same tokens with different line breaks.
//
// EstimateWidth must be monotonic: appending more content to a
// candidate string must never decrease the estimate. If it did, a
// handler could wrap a construct on pass 1 (the input was long) and
// unwrap it on pass 2 (the wrapped text's estimate came out shorter),
// breaking idempotence (spec.md 8 property 1, spec.md 9). A tab counts
// as one column here even when UseTabs is set - a known, documented
// imprecision (spec.md 9's open question), not a bug.
func EstimateWidth(s string) int {
	width := 0
	inRun := false
	for _, r := range s {
		if isEstimatorSpace(r) {
			if !inRun {
				width++
				inRun = true
			}
			continue
		}
		inRun = false
		width++
	}
	return width
}

func isEstimatorSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// FitsWithin reports whether text, starting at column startCol, stays
// at or under limit once estimated. Used by the generation-time
// decisions described above; ordinary group/soft-newline fitting goes
// through internal/breaker instead, which measures exact (not
// estimated) width.
func FitsWithin(startCol int, text string, limit int) bool {
	return startCol+EstimateWidth(text) <= limit
}
