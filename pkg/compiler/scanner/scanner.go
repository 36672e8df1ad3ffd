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
package scanner

import (
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// Scanner turns the characters delivered by a stream into tokens, one token
// per call to Next.  A scanner holds at most one chunk at a time and only ever
// requests a chunk when it holds none.  When the held chunk is exhausted the
// scanner reports the end of input, even if the stream could deliver another
// chunk.  Whether this happened is reported by Truncated.
type Scanner struct {
	stream stream.Stream
	// The chunk currently being scanned (or nil if none requested yet).
	chunk *stream.Chunk
	// Position just past the last character seen, used for end of input.
	position uint
	// Records whether characters were left undelivered by the stream.
	truncated bool
}

// New constructs a scanner which pulls characters from the given stream.
func New(input stream.Stream) *Scanner {
	return &Scanner{stream: input}
}

// Truncated checks whether the scanner reported end of input whilst its stream
// still held characters beyond the first chunk.
func (p *Scanner) Truncated() bool {
	return p.truncated
}

// Next scans the next token.  Whitespace between tokens is skipped.  Once the
// end of input has been reported, every later call reports it again.  An
// unknown character produces a lexical error, after which the scanner should
// not be used any further.
func (p *Scanner) Next() (Token, *source.SyntaxError) {
	if p.chunk == nil {
		chunk, ok := p.stream.Next()
		if !ok {
			return p.endOf(), nil
		}
		//
		log.Debugf("scanner acquired chunk of %d characters from %s", chunk.Len(), p.stream.Name())
		p.chunk = chunk
	}
	//
	for !p.chunk.Exhausted() {
		c := p.chunk.Peek()
		//
		switch {
		case isDigit(c):
			return p.scanNumber()
		case isWhitespace(c):
			p.chunk.Advance()
		default:
			kind, ok := operatorKind(c)
			start := p.chunk.Position()
			//
			if !ok {
				span := source.NewSpan(int(start), int(start)+1)
				return Token{}, source.NewSyntaxError(source.LEXICAL_ERROR, span, "unknown character")
			}
			//
			p.chunk.Advance()
			//
			return p.token(kind, start, 0), nil
		}
	}
	//
	if !p.truncated && p.stream.More() {
		log.Debugf("scanner reached end of chunk with input remaining in %s", p.stream.Name())
		p.truncated = true
	}
	//
	return p.endOf(), nil
}

// Scan the maximal run of digits starting at the cursor.
func (p *Scanner) scanNumber() (Token, *source.SyntaxError) {
	var (
		start    = p.chunk.Position()
		value    int64
		overflow bool
	)
	//
	for !p.chunk.Exhausted() && isDigit(p.chunk.Peek()) {
		digit := int64(p.chunk.Peek() - '0')
		//
		if value > (math.MaxInt64-digit)/10 {
			overflow = true
		} else {
			value = (value * 10) + digit
		}
		//
		p.chunk.Advance()
	}
	//
	if overflow {
		span := source.NewSpan(int(start), int(p.chunk.Position()))
		return Token{}, source.NewSyntaxError(source.LEXICAL_ERROR, span, "integer literal out of range")
	}
	//
	return p.token(NUMBER, start, value), nil
}

func (p *Scanner) token(kind uint, start uint, value int64) Token {
	end := p.chunk.Position()
	p.position = end
	token := Token{kind, source.NewSpan(int(start), int(end)), value}
	//
	log.Debugf("scanned %s at %s", token.String(), token.Span.String())
	//
	return token
}

// The end of input is reported just after the last character of the held
// chunk (or at the start, if no chunk was ever delivered).
func (p *Scanner) endOf() Token {
	if p.chunk != nil {
		p.position = p.chunk.Offset() + p.chunk.Len()
	}
	//
	return Token{END_OF, source.NewSpan(int(p.position), int(p.position)), 0}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ASCII whitespace: space, tab, newline, form feed and carriage return.  Vertical
// tab is not whitespace.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}
