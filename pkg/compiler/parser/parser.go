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
package parser

import (
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/scanner"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// ============================================================================
// Parser
// ============================================================================

// Parser is a recursive-descent parser for arithmetic expressions.  The
// grammar is as follows, where every operator is left associative:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := NUMBER | '(' expression ')'
//
// A parser holds exactly one token of lookahead, which it pulls from the
// scanner on demand.
type Parser struct {
	scanner *scanner.Scanner
	// Current lookahead token
	current scanner.Token
}

// New constructs a parser for the tokens of a given scanner.  This immediately
// pulls the first token, which can fail if that is not a valid token.
func New(s *scanner.Scanner) (*Parser, []source.SyntaxError) {
	parser := &Parser{scanner: s}
	//
	if errs := parser.advance(); len(errs) > 0 {
		return nil, errs
	}
	//
	return parser, nil
}

// Current returns the lookahead token.  After a successful call to
// ParseExpression, this is END_OF unless trailing input remains.
func (p *Parser) Current() scanner.Token {
	return p.current
}

// ParseExpression parses a complete expression, which must be called exactly
// once per input.  The returned tree is owned entirely by the caller.
func (p *Parser) ParseExpression() (ast.Node, []source.SyntaxError) {
	lhs, errs := p.parseTerm()
	//
	for len(errs) == 0 && p.follows(scanner.ADD, scanner.SUB) {
		var (
			op  = binaryOp(p.current.Kind)
			rhs ast.Node
		)
		// Consume connective
		if errs = p.advance(); len(errs) > 0 {
			break
		} else if rhs, errs = p.parseTerm(); len(errs) > 0 {
			break
		}
		//
		lhs = ast.NewBinaryOp(op, lhs, rhs)
		//
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("parsed %s", lhs.String())
		}
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return lhs, nil
}

// ExpectEnd checks that no input remains after the expression.
func (p *Parser) ExpectEnd() []source.SyntaxError {
	if p.current.Kind != scanner.END_OF {
		return p.syntaxErrors(source.UNEXPECTED_TOKEN, p.current.Span, "unexpected trailing input")
	}
	//
	return nil
}

func (p *Parser) parseTerm() (ast.Node, []source.SyntaxError) {
	lhs, errs := p.parseFactor()
	//
	for len(errs) == 0 && p.follows(scanner.MUL, scanner.DIV) {
		var (
			op  = binaryOp(p.current.Kind)
			rhs ast.Node
		)
		// Consume connective
		if errs = p.advance(); len(errs) > 0 {
			break
		} else if rhs, errs = p.parseFactor(); len(errs) > 0 {
			break
		}
		//
		lhs = ast.NewBinaryOp(op, lhs, rhs)
		//
		if log.IsLevelEnabled(log.DebugLevel) {
			log.Debugf("parsed %s", lhs.String())
		}
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return lhs, nil
}

func (p *Parser) parseFactor() (ast.Node, []source.SyntaxError) {
	var lookahead = p.current
	//
	switch lookahead.Kind {
	case scanner.NUMBER:
		if errs := p.advance(); len(errs) > 0 {
			return nil, errs
		}
		//
		return ast.NewLiteral(lookahead.Value, lookahead.Span), nil
	case scanner.LBRACE:
		return p.parseBracketed()
	case scanner.END_OF:
		return nil, p.syntaxErrors(source.UNEXPECTED_END_OF_INPUT, lookahead.Span, "unexpected end of input")
	default:
		msg := fmt.Sprintf("unexpected token %s", lookahead.String())
		return nil, p.syntaxErrors(source.UNEXPECTED_TOKEN, lookahead.Span, msg)
	}
}

// Parse a bracketed expression, assuming the lookahead is "(".  Observe that the
// brackets themselves leave no trace in the tree.
func (p *Parser) parseBracketed() (ast.Node, []source.SyntaxError) {
	var lbrace = p.current
	//
	if errs := p.advance(); len(errs) > 0 {
		return nil, errs
	}
	//
	node, errs := p.ParseExpression()
	//
	if len(errs) > 0 {
		return nil, errs
	} else if p.current.Kind != scanner.RBRACE {
		return nil, p.syntaxErrors(source.UNBALANCED_PARENTHESES, lbrace.Span, "missing closing \")\"")
	} else if errs = p.advance(); len(errs) > 0 {
		return nil, errs
	}
	//
	return node, nil
}

// Advance the lookahead to the next token from the scanner.
func (p *Parser) advance() []source.SyntaxError {
	token, err := p.scanner.Next()
	//
	if err != nil {
		return []source.SyntaxError{*err}
	}
	//
	p.current = token
	//
	return nil
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.current.Kind)
}

func (p *Parser) syntaxErrors(kind source.ErrorKind, span source.Span, msg string) []source.SyntaxError {
	return []source.SyntaxError{*source.NewSyntaxError(kind, span, msg)}
}

// Determine the operator corresponding to a given connective token.
func binaryOp(kind uint) ast.OpKind {
	switch kind {
	case scanner.ADD:
		return ast.ADD
	case scanner.SUB:
		return ast.SUB
	case scanner.MUL:
		return ast.MUL
	case scanner.DIV:
		return ast.DIV
	}
	//
	panic(fmt.Sprintf("not a binary operator (%d)", kind))
}
