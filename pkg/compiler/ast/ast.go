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
package ast

import (
	"fmt"

	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// Node represents a node in the abstract syntax tree of an expression.  This is
// either a Literal or a BinaryOp.  Every node exclusively owns its children, so
// a tree never shares nodes and never contains cycles.
type Node interface {
	// Span returns the range of source text this node was parsed from.
	Span() source.Span
	// String returns this node (and its children) as an S-Expression.
	String() string
}

// OpKind identifies the operator of a binary operation.
type OpKind uint

// ADD represents addition
const ADD OpKind = 0

// SUB represents subtraction
const SUB OpKind = 1

// MUL represents multiplication
const MUL OpKind = 2

// DIV represents (truncating) integer division
const DIV OpKind = 3

func (k OpKind) String() string {
	switch k {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", uint(k)))
}

// ============================================================================
// Literal
// ============================================================================

// Literal represents an integer constant, which is always a leaf.
type Literal struct {
	Value int64
	span  source.Span
}

// NewLiteral constructs a literal parsed from a given span.
func NewLiteral(value int64, span source.Span) *Literal {
	return &Literal{value, span}
}

// Span implementation for Node interface.
func (p *Literal) Span() source.Span {
	return p.span
}

func (p *Literal) String() string {
	return fmt.Sprintf("%d", p.Value)
}

// ============================================================================
// Binary Operation
// ============================================================================

// BinaryOp represents the application of an operator to two operands.
type BinaryOp struct {
	Op    OpKind
	Left  Node
	Right Node
}

// NewBinaryOp constructs a binary operation over two fully constructed
// children.
func NewBinaryOp(op OpKind, left Node, right Node) *BinaryOp {
	if left == nil || right == nil {
		panic("binary operation requires two operands")
	}
	//
	return &BinaryOp{op, left, right}
}

// Span implementation for Node interface.  This encloses both operands.
func (p *BinaryOp) Span() source.Span {
	return p.Left.Span().Join(p.Right.Span())
}

func (p *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", p.Op.String(), p.Left.String(), p.Right.String())
}

// ============================================================================
// Helpers
// ============================================================================

// Depth returns the number of nodes on the longest path from the given node to
// a leaf.
func Depth(node Node) uint {
	switch n := node.(type) {
	case *Literal:
		return 1
	case *BinaryOp:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	default:
		panic(fmt.Sprintf("unknown node %T", node))
	}
}

// Size returns the number of nodes in the tree rooted at the given node.
func Size(node Node) uint {
	switch n := node.(type) {
	case *Literal:
		return 1
	case *BinaryOp:
		return 1 + Size(n.Left) + Size(n.Right)
	default:
		panic(fmt.Sprintf("unknown node %T", node))
	}
}
