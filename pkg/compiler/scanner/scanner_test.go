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
	"testing"

	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/assert"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

func Test_Scanner_01(t *testing.T) {
	checkTokens(t, "")
}

func Test_Scanner_02(t *testing.T) {
	checkTokens(t, "42", number(42, 0, 2))
}

func Test_Scanner_03(t *testing.T) {
	checkTokens(t, "1+2",
		number(1, 0, 1),
		operator(ADD, 1),
		number(2, 2, 3))
}

func Test_Scanner_04(t *testing.T) {
	checkTokens(t, "(3-4)*5/6",
		operator(LBRACE, 0),
		number(3, 1, 2),
		operator(SUB, 2),
		number(4, 3, 4),
		operator(RBRACE, 4),
		operator(MUL, 5),
		number(5, 6, 7),
		operator(DIV, 7),
		number(6, 8, 9))
}

func Test_Scanner_05(t *testing.T) {
	checkTokens(t, " \t12\n+\r\f 34 ",
		number(12, 2, 4),
		operator(ADD, 5),
		number(34, 9, 11))
}

func Test_Scanner_06(t *testing.T) {
	// Leading zeros are simply decimal digits
	checkTokens(t, "007", number(7, 0, 3))
}

func Test_Scanner_07(t *testing.T) {
	checkTokens(t, "9223372036854775807", number(9223372036854775807, 0, 19))
}

func Test_Scanner_08(t *testing.T) {
	checkError(t, "9223372036854775808", source.LEXICAL_ERROR, source.NewSpan(0, 19))
}

func Test_Scanner_09(t *testing.T) {
	checkError(t, "1 + x", source.LEXICAL_ERROR, source.NewSpan(4, 5))
}

func Test_Scanner_10(t *testing.T) {
	checkError(t, "1%2", source.LEXICAL_ERROR, source.NewSpan(1, 2))
}

func Test_Scanner_11(t *testing.T) {
	// End of input is reported after the last character of the chunk
	s := New(stream.NewStringStream("test", "7  ", 0))
	//
	token, err := s.Next()
	assert.True(t, err == nil)
	assert.Equal(t, number(7, 0, 1), token)
	//
	for i := 0; i < 3; i++ {
		token, err = s.Next()
		assert.True(t, err == nil)
		assert.Equal(t, Token{END_OF, source.NewSpan(3, 3), 0}, token)
	}
}

func Test_Scanner_12(t *testing.T) {
	// Only the first chunk is ever scanned
	s := New(stream.NewStringStream("test", "12+34", 3))
	//
	checkNext(t, s, number(12, 0, 2))
	checkNext(t, s, operator(ADD, 2))
	assert.False(t, s.Truncated())
	checkNext(t, s, Token{END_OF, source.NewSpan(3, 3), 0})
	assert.True(t, s.Truncated())
	checkNext(t, s, Token{END_OF, source.NewSpan(3, 3), 0})
}

func Test_Scanner_13(t *testing.T) {
	// A number split across chunks is cut short
	s := New(stream.NewStringStream("test", "12345", 3))
	//
	checkNext(t, s, number(123, 0, 3))
	checkNext(t, s, Token{END_OF, source.NewSpan(3, 3), 0})
	assert.True(t, s.Truncated())
}

func Test_Scanner_14(t *testing.T) {
	s := New(stream.NewStringStream("test", "1+2", 3))
	//
	checkNext(t, s, number(1, 0, 1))
	checkNext(t, s, operator(ADD, 1))
	checkNext(t, s, number(2, 2, 3))
	checkNext(t, s, Token{END_OF, source.NewSpan(3, 3), 0})
	assert.False(t, s.Truncated())
}

func Test_Scanner_15(t *testing.T) {
	// Vertical tab is not whitespace
	checkError(t, "1\v+2", source.LEXICAL_ERROR, source.NewSpan(1, 2))
}

func Test_Token_01(t *testing.T) {
	assert.Equal(t, "end of input", Token{Kind: END_OF}.String())
	assert.Equal(t, "12", Token{Kind: NUMBER, Value: 12}.String())
	assert.Equal(t, "\"(\"", Token{Kind: LBRACE}.String())
	assert.True(t, Token{Kind: DIV}.IsOperator())
	assert.False(t, Token{Kind: NUMBER}.IsOperator())
	assert.Equal(t, byte('*'), OperatorSymbol(MUL))
}

func checkTokens(t *testing.T, input string, expected ...Token) {
	s := New(stream.NewStringStream("test", input, 0))
	//
	for _, token := range expected {
		checkNext(t, s, token)
	}
	//
	token, err := s.Next()
	assert.True(t, err == nil)
	assert.Equal(t, END_OF, token.Kind)
	assert.Equal(t, len(input), token.Span.Start())
	assert.Equal(t, 0, token.Span.Length())
}

func checkNext(t *testing.T, s *Scanner, expected Token) {
	token, err := s.Next()
	//
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	assert.Equal(t, expected, token)
}

func checkError(t *testing.T, input string, kind source.ErrorKind, span source.Span) {
	s := New(stream.NewStringStream("test", input, 0))
	//
	for {
		token, err := s.Next()
		//
		if err != nil {
			assert.Equal(t, kind, err.Kind())
			assert.Equal(t, span, err.Span())
			//
			return
		} else if token.Kind == END_OF {
			t.Fatalf("expected error for \"%s\"", input)
		}
	}
}

func number(value int64, start int, end int) Token {
	return Token{NUMBER, source.NewSpan(start, end), value}
}

func operator(kind uint, start int) Token {
	return Token{kind, source.NewSpan(start, start+1), 0}
}
