// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import "fmt"

// Span represents a contiguous slice of the original text.  Rather than
// holding the characters themselves, a span retains the physical byte offsets
// so that enclosing lines and columns can be recovered when reporting errors.
type Span struct {
	// Offset of the first byte covered by this span.
	start int
	// One past the offset of the final byte covered by this span.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end || start < 0 {
		panic(fmt.Sprintf("invalid span %d-%d", start, end))
	}

	return Span{start, end}
}

// Start returns the starting offset of this span in the original text.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last offset of this span in the original text.
func (p Span) End() int {
	return p.end
}

// Length returns the number of bytes covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Join returns the smallest span enclosing both this span and another.
func (p Span) Join(other Span) Span {
	return Span{min(p.start, other.start), max(p.end, other.end)}
}

func (p Span) String() string {
	return fmt.Sprintf("%d-%d", p.start, p.end)
}
