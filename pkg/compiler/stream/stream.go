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
package stream

// Stream delivers the characters of a source one chunk at a time, without the
// consumer caring whether they come from a string or a file.
type Stream interface {
	// Name identifies the source (e.g. a filename) for diagnostics.
	Name() string
	// Next returns the next chunk of the source, or false once the source has
	// been fully delivered.  Exhaustion is final: every later call also returns
	// false.  A returned chunk always holds at least one character, and is never
	// shared with any other call.
	Next() (*Chunk, bool)
	// More checks whether a subsequent call to Next would deliver a chunk.  This
	// does not consume anything.
	More() bool
	// Err returns the read error (if any) which ended this stream early.
	Err() error
}

// StringStream delivers the contents of a string.
type StringStream struct {
	name     string
	text     string
	capacity uint
	// Index of the first undelivered character of text.
	index uint
}

// NewStringStream constructs a stream over a given string which delivers chunks
// of the given capacity (or DEFAULT_CHUNK_SIZE, if this is zero).
func NewStringStream(name string, text string, capacity uint) *StringStream {
	if capacity == 0 {
		capacity = DEFAULT_CHUNK_SIZE
	}
	//
	return &StringStream{name, text, capacity, 0}
}

// Name implementation for Stream interface.
func (p *StringStream) Name() string {
	return p.name
}

// Next implementation for Stream interface.
func (p *StringStream) Next() (*Chunk, bool) {
	if !p.More() {
		return nil, false
	}
	//
	end := min(p.index+p.capacity, uint(len(p.text)))
	chunk := NewChunk(p.capacity, p.index, []byte(p.text[p.index:end]))
	p.index = end
	//
	return chunk, true
}

// More implementation for Stream interface.
func (p *StringStream) More() bool {
	return p.index < uint(len(p.text))
}

// Err implementation for Stream interface.  Strings cannot fail to read.
func (p *StringStream) Err() error {
	return nil
}
