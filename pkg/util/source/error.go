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

// ErrorKind classifies the syntax errors which can arise when translating an
// expression.  Every kind is fatal for the input being translated.
type ErrorKind uint

// LEXICAL_ERROR signals a character which cannot begin any token.
const LEXICAL_ERROR ErrorKind = 0

// UNEXPECTED_TOKEN signals a token which cannot appear at its position.
const UNEXPECTED_TOKEN ErrorKind = 1

// UNBALANCED_PARENTHESES signals a "(" without its matching ")".
const UNBALANCED_PARENTHESES ErrorKind = 2

// UNEXPECTED_END_OF_INPUT signals that the input ended where a number or "("
// was still required.
const UNEXPECTED_END_OF_INPUT ErrorKind = 3

var errorKindNames = []string{
	"lexical error",
	"unexpected token",
	"unbalanced parentheses",
	"unexpected end of input",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	//
	return fmt.Sprintf("error(%d)", uint(k))
}

// ParseErrorKind converts the name of an error kind (as returned by String)
// back into that kind.
func ParseErrorKind(name string) (ErrorKind, bool) {
	for i, n := range errorKindNames {
		if n == name {
			return ErrorKind(i), true
		}
	}
	//
	return 0, false
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with its kind and a message.
type SyntaxError struct {
	kind ErrorKind
	// Byte span of the text being parsed where the error arose.
	span Span
	// Error message being reported
	msg string
}

// NewSyntaxError constructs a syntax error of a given kind over a given span.
func NewSyntaxError(kind ErrorKind, span Span, msg string) *SyntaxError {
	return &SyntaxError{kind, span, msg}
}

// Kind returns the classification of this error.
func (p *SyntaxError) Kind() ErrorKind {
	return p.kind
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}
