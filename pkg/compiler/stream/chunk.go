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

// DEFAULT_CHUNK_SIZE determines the capacity of a chunk when none is given.
const DEFAULT_CHUNK_SIZE uint = 4096

// Chunk is one bounded block of source characters delivered by a stream.  A
// chunk has a fixed capacity, a count of valid characters (which never exceeds
// the capacity) and a read cursor.  Once the cursor reaches the count, the
// chunk is exhausted and is never revisited.
type Chunk struct {
	// Backing array, whose length is the capacity of this chunk.
	data []byte
	// Number of valid characters in data.
	count uint
	// Index of the next character to be read.
	cursor uint
	// Offset of data[0] within the complete source.
	offset uint
}

// NewChunk constructs a chunk of a given capacity which takes a copy of the
// given characters.  The characters must fit within the capacity.
func NewChunk(capacity uint, offset uint, chars []byte) *Chunk {
	if uint(len(chars)) > capacity {
		panic("chunk overflow")
	}
	//
	data := make([]byte, capacity)
	n := copy(data, chars)
	//
	return &Chunk{data, uint(n), 0, offset}
}

// Capacity returns the maximum number of characters this chunk can hold.
func (p *Chunk) Capacity() uint {
	return uint(len(p.data))
}

// Len returns the number of valid characters in this chunk.
func (p *Chunk) Len() uint {
	return p.count
}

// Offset returns the position of the first character of this chunk within the
// complete source.
func (p *Chunk) Offset() uint {
	return p.offset
}

// Bytes returns the valid region of this chunk.
func (p *Chunk) Bytes() []byte {
	return p.data[:p.count]
}

// Cursor returns the index (relative to this chunk) of the next character to
// be read.
func (p *Chunk) Cursor() uint {
	return p.cursor
}

// Position returns the offset within the complete source of the next character
// to be read.
func (p *Chunk) Position() uint {
	return p.offset + p.cursor
}

// Exhausted checks whether every valid character has been read.
func (p *Chunk) Exhausted() bool {
	return p.cursor >= p.count
}

// Peek returns the next character without consuming it.  The chunk must not be
// exhausted.
func (p *Chunk) Peek() byte {
	if p.cursor >= p.count {
		panic("peek beyond end of chunk")
	}
	//
	return p.data[p.cursor]
}

// Advance consumes the next character.
func (p *Chunk) Advance() {
	if p.cursor < p.count {
		p.cursor++
	}
}
