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
package insn

import (
	"fmt"
	"strconv"

	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source/lex"
)

// WHITESPACE signals spaces or tabs
const WHITESPACE uint = 0

// NEWLINE signals the end of a line
const NEWLINE uint = 1

// COMMENT signals "# ... \n"
const COMMENT uint = 2

// COMMA signals ","
const COMMA uint = 3

// COLON signals ":"
const COLON uint = 4

// IMMEDIATE signals "$" followed by a (possibly negative) integer
const IMMEDIATE uint = 5

// REGISTER signals "%" followed by a register name
const REGISTER uint = 6

// DIRECTIVE signals "." followed by a name
const DIRECTIVE uint = 7

// IDENTIFIER signals a mnemonic or a symbol
const IDENTIFIER uint = 8

var (
	digits     = lex.SequenceNullableLast(within('0', '9'), lex.Many(within('0', '9')))
	letter     = lex.Or(within('a', 'z'), within('A', 'Z'), unit('_'))
	name       = lex.SequenceNullableLast(letter, lex.Many(lex.Or(letter, within('0', '9'))))
	blank      = lex.Or(unit(' '), unit('\t'))
	whitespace = lex.SequenceNullableLast(blank, lex.Many(blank))
	comment    = lex.SequenceNullableLast(unit('#'), lex.Many(lex.Not[byte]('\n')))
	immediate  = lex.Sequence(unit('$'), lex.Or(lex.Sequence(unit('-'), digits), digits))
)

// lexing rules
var rules = []lex.LexRule[byte]{
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(lex.Or(unit('\n'), unit('\r', '\n')), NEWLINE),
	lex.Rule(comment, COMMENT),
	lex.Rule(unit(','), COMMA),
	lex.Rule(unit(':'), COLON),
	lex.Rule(immediate, IMMEDIATE),
	lex.Rule(lex.Sequence(unit('%'), name), REGISTER),
	lex.Rule(lex.Sequence(unit('.'), name), DIRECTIVE),
	lex.Rule(name, IDENTIFIER),
}

func unit(chars ...byte) lex.Scanner[byte] {
	return lex.Unit(chars...)
}

func within(lowest, highest byte) lex.Scanner[byte] {
	return lex.Within(lowest, highest)
}

// Lex a given assembly file into a sequence of tokens, ignoring whitespace and
// comments.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	var (
		lexer       = lex.NewLexer(srcfile.Contents(), rules...).Discard(WHITESPACE, COMMENT)
		tokens, err = lexer.Collect()
	)
	//
	if err != nil {
		return nil, []source.SyntaxError{*source.NewSyntaxError(source.LEXICAL_ERROR, *err, "unknown text encountered")}
	}
	//
	return tokens, nil
}

// Parse an assembly file in the dialect produced by the code generator into a
// sequence of instructions.  Each line holds at most one directive, label or
// instruction.
func Parse(srcfile *source.File) ([]Instruction, []source.SyntaxError) {
	var (
		insns  []Instruction
		errors []source.SyntaxError
	)
	//
	tokens, errs := Lex(srcfile)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for _, line := range splitLines(tokens) {
		if len(line) == 0 {
			continue
		}
		//
		reader := lineReader{srcfile, line, 0}
		//
		if insn, err := reader.parseLine(); err != nil {
			errors = append(errors, *err)
		} else {
			insns = append(insns, insn)
		}
	}
	//
	return insns, errors
}

// Split a token sequence into lines, dropping the line terminators.
func splitLines(tokens []lex.Token) [][]lex.Token {
	var (
		lines [][]lex.Token
		start = 0
	)
	//
	for i, t := range tokens {
		if t.Kind == NEWLINE {
			lines = append(lines, tokens[start:i])
			start = i + 1
		}
	}
	//
	return append(lines, tokens[start:])
}

// ============================================================================
// Line Reader
// ============================================================================

type lineReader struct {
	srcfile *source.File
	tokens  []lex.Token
	index   int
}

func (p *lineReader) parseLine() (Instruction, *source.SyntaxError) {
	var (
		insn Instruction
		err  *source.SyntaxError
		head = p.tokens[0]
	)
	//
	switch {
	case head.Kind == DIRECTIVE:
		insn, err = p.parseDirective()
	case head.Kind == IDENTIFIER && len(p.tokens) > 1 && p.tokens[1].Kind == COLON:
		p.index = 2
		insn = &Label{p.text(head)}
	case head.Kind == IDENTIFIER:
		insn, err = p.parseInstruction()
	default:
		err = p.syntaxError(head, "expected directive, label or instruction")
	}
	//
	if err != nil {
		return nil, err
	} else if p.index < len(p.tokens) {
		return nil, p.syntaxError(p.tokens[p.index], "unexpected trailing operand")
	}
	//
	return insn, nil
}

func (p *lineReader) parseDirective() (Instruction, *source.SyntaxError) {
	var directive = p.next()
	//
	switch p.text(directive) {
	case ".globl", ".global":
		symbol, err := p.expect(IDENTIFIER)
		if err != nil {
			return nil, err
		}
		//
		return &Global{p.text(symbol)}, nil
	default:
		return nil, p.syntaxError(directive, "unsupported directive")
	}
}

func (p *lineReader) parseInstruction() (Instruction, *source.SyntaxError) {
	var (
		mnemonic = p.next()
		src, dst Register
		value    int64
		err      *source.SyntaxError
	)
	//
	switch p.text(mnemonic) {
	case "ret":
		return &Ret{}, nil
	case "cqo":
		return &Cqo{}, nil
	case "push":
		src, err = p.parseRegister()
		return &Push{src}, err
	case "pop":
		dst, err = p.parseRegister()
		return &Pop{dst}, err
	case "idiv":
		src, err = p.parseRegister()
		return &Div{src}, err
	case "mov":
		if value, err = p.parseImmediate(); err == nil {
			dst, err = p.parseSecondRegister()
		}
		//
		return &Mov{value, dst}, err
	case "add", "sub", "imul":
		if src, err = p.parseRegister(); err == nil {
			dst, err = p.parseSecondRegister()
		}
		//
		return arithmetic(p.text(mnemonic), src, dst), err
	default:
		return nil, p.syntaxError(mnemonic, "unknown instruction")
	}
}

func arithmetic(mnemonic string, src Register, dst Register) Instruction {
	switch mnemonic {
	case "add":
		return &Add{src, dst}
	case "sub":
		return &Sub{src, dst}
	default:
		return &Mul{src, dst}
	}
}

// Parse ", %reg"
func (p *lineReader) parseSecondRegister() (Register, *source.SyntaxError) {
	if _, err := p.expect(COMMA); err != nil {
		return 0, err
	}
	//
	return p.parseRegister()
}

func (p *lineReader) parseRegister() (Register, *source.SyntaxError) {
	token, err := p.expect(REGISTER)
	if err != nil {
		return 0, err
	}
	// Strip leading "%"
	reg, ok := LookupRegister(p.text(token)[1:])
	if !ok {
		return 0, p.syntaxError(token, "unknown register")
	}
	//
	return reg, nil
}

func (p *lineReader) parseImmediate() (int64, *source.SyntaxError) {
	token, err := p.expect(IMMEDIATE)
	if err != nil {
		return 0, err
	}
	// Strip leading "$"
	value, e := strconv.ParseInt(p.text(token)[1:], 10, 64)
	if e != nil {
		return 0, p.syntaxError(token, "immediate out of range")
	}
	//
	return value, nil
}

func (p *lineReader) next() lex.Token {
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *lineReader) expect(kind uint) (lex.Token, *source.SyntaxError) {
	if p.index >= len(p.tokens) {
		last := p.tokens[len(p.tokens)-1]
		end := source.NewSpan(last.Span.End(), last.Span.End())
		//
		return last, source.NewSyntaxError(source.UNEXPECTED_END_OF_INPUT, end, "missing operand")
	}
	//
	token := p.tokens[p.index]
	//
	if token.Kind != kind {
		return token, p.syntaxError(token, fmt.Sprintf("unexpected \"%s\"", p.text(token)))
	}
	//
	p.index++
	//
	return token, nil
}

func (p *lineReader) text(token lex.Token) string {
	return string(p.srcfile.Contents()[token.Span.Start():token.Span.End()])
}

func (p *lineReader) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return source.NewSyntaxError(source.UNEXPECTED_TOKEN, token.Span, msg)
}
