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
package lex

import "github.com/xiaguan/tiny-c-compiler/pkg/util/source"

// Token associates a kind with a given range of items in the sequence being
// lexed.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of items with a given kind.
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a new lexing rule which maps matching items to a given kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer provides a top-level construct for tokenising a given input sequence.
// Rules are tried in order at each position, and the first to match determines
// the next token.  Tokens whose kind has been discarded are matched but never
// returned.
type Lexer[T any] struct {
	items   []T
	index   int
	rules   []LexRule[T]
	discard []uint
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Discard ensures tokens of the given kinds (e.g. whitespace) are not returned.
func (p *Lexer[T]) Discard(kinds ...uint) *Lexer[T] {
	p.discard = append(p.discard, kinds...)
	return p
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many items from the original sequence were left
// unmatched.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Next attempts to match the next (non-discarded) token, returning false when
// either the input is exhausted or no rule matches at the current position.
func (p *Lexer[T]) Next() (Token, bool) {
	for p.index < len(p.items) {
		token, ok := p.scan()
		//
		if !ok {
			return token, false
		}
		//
		p.index = token.Span.End()
		//
		if !p.discarded(token.Kind) {
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect is a convenience function which lexes all remaining tokens in one
// go.  When this leaves items unmatched, the returned span identifies the
// first item which no rule accepted.
func (p *Lexer[T]) Collect() ([]Token, *source.Span) {
	var tokens []Token
	//
	for {
		token, ok := p.Next()
		if !ok {
			break
		}
		//
		tokens = append(tokens, token)
	}
	//
	if p.Remaining() != 0 {
		span := source.NewSpan(p.index, p.index+1)
		return tokens, &span
	}
	//
	return tokens, nil
}

func (p *Lexer[T]) scan() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			return Token{r.kind, source.NewSpan(p.index, end)}, true
		}
	}
	//
	return Token{}, false
}

func (p *Lexer[T]) discarded(kind uint) bool {
	for _, k := range p.discard {
		if k == kind {
			return true
		}
	}
	//
	return false
}
