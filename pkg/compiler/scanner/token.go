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
	"fmt"

	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// END_OF signals "end of input"
const END_OF uint = 0

// NUMBER signals a non-negative decimal integer
const NUMBER uint = 1

// ADD signals "+"
const ADD uint = 2

// SUB signals "-"
const SUB uint = 3

// MUL signals "*"
const MUL uint = 4

// DIV signals "/"
const DIV uint = 5

// LBRACE signals "("
const LBRACE uint = 6

// RBRACE signals ")"
const RBRACE uint = 7

// Token associates a kind with the range of characters it was scanned from.
// Number tokens additionally carry their value.
type Token struct {
	Kind uint
	Span source.Span
	// Value of a NUMBER token (zero otherwise).
	Value int64
}

// IsOperator checks whether this token is one of the fixed operator symbols.
func (t Token) IsOperator() bool {
	return t.Kind >= ADD && t.Kind <= RBRACE
}

func (t Token) String() string {
	switch t.Kind {
	case END_OF:
		return "end of input"
	case NUMBER:
		return fmt.Sprintf("%d", t.Value)
	default:
		return fmt.Sprintf("\"%c\"", OperatorSymbol(t.Kind))
	}
}

// operator symbols indexed by token kind.
var symbols = [...]byte{ADD: '+', SUB: '-', MUL: '*', DIV: '/', LBRACE: '(', RBRACE: ')'}

// OperatorSymbol returns the character for a given operator kind.
func OperatorSymbol(kind uint) byte {
	if kind < ADD || kind > RBRACE {
		panic(fmt.Sprintf("not an operator (%d)", kind))
	}
	//
	return symbols[kind]
}

// operatorKind determines the token kind for a given character, or returns
// false if this is not an operator symbol.
func operatorKind(c byte) (uint, bool) {
	switch c {
	case '+':
		return ADD, true
	case '-':
		return SUB, true
	case '*':
		return MUL, true
	case '/':
		return DIV, true
	case '(':
		return LBRACE, true
	case ')':
		return RBRACE, true
	}
	//
	return END_OF, false
}
