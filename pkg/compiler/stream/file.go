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

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// FileStream delivers the contents of a reader (typically an open file).  Each
// chunk is read on demand, so the source is never held in memory as a whole.
type FileStream struct {
	name     string
	reader   *bufio.Reader
	closer   io.Closer
	capacity uint
	// Offset of the next chunk within the source.
	offset uint
	// Set once the reader has been drained (or failed).
	done bool
	err  error
}

// NewFileStream constructs a stream over a given reader which delivers chunks
// of the given capacity (or DEFAULT_CHUNK_SIZE, if this is zero).
func NewFileStream(name string, reader io.Reader, capacity uint) *FileStream {
	if capacity == 0 {
		capacity = DEFAULT_CHUNK_SIZE
	}
	//
	return &FileStream{
		name:     name,
		reader:   bufio.NewReaderSize(reader, int(capacity)),
		capacity: capacity,
	}
}

// OpenFile opens a given file and constructs a stream over its contents.  The
// stream owns the file, which is released by Close.
func OpenFile(filename string, capacity uint) (*FileStream, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "OpenFile")
	}
	//
	stream := NewFileStream(filename, file, capacity)
	stream.closer = file
	//
	return stream, nil
}

// Name implementation for Stream interface.
func (p *FileStream) Name() string {
	return p.name
}

// Next implementation for Stream interface.
func (p *FileStream) Next() (*Chunk, bool) {
	if p.done {
		return nil, false
	}
	//
	chunk := &Chunk{data: make([]byte, p.capacity), offset: p.offset}
	n, err := io.ReadFull(p.reader, chunk.data)
	//
	switch {
	case err == io.EOF:
		p.done = true
		return nil, false
	case err == io.ErrUnexpectedEOF:
		// Final partial chunk
		p.done = true
	case err != nil:
		p.done = true
		p.err = errors.Wrapf(err, "reading %s at offset %d", p.name, p.offset)
		//
		return nil, false
	}
	//
	chunk.count = uint(n)
	p.offset += uint(n)
	//
	return chunk, true
}

// More implementation for Stream interface.
func (p *FileStream) More() bool {
	if p.done {
		return false
	}
	//
	_, err := p.reader.Peek(1)
	//
	return err == nil
}

// Err implementation for Stream interface.
func (p *FileStream) Err() error {
	return p.err
}

// Close releases the underlying file (if this stream owns one).
func (p *FileStream) Close() error {
	if p.closer == nil {
		return nil
	}
	//
	err := p.closer.Close()
	p.closer = nil
	//
	return err
}
