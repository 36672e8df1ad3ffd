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
	"math"

	"github.com/pkg/errors"
)

// ErrDivisionByZero is returned when evaluating a division whose divisor is
// zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrDivisionOverflow is returned when evaluating the one division whose
// quotient cannot be represented, namely the most negative value divided by -1.
var ErrDivisionOverflow = errors.New("division overflow")

// Evaluate computes the value of an expression directly from its tree, using
// the same semantics as the generated program: 64-bit two's complement
// arithmetic which wraps on overflow, and division truncating toward zero.
func Evaluate(node Node) (int64, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Value, nil
	case *BinaryOp:
		// Right operand first, matching the order of the generated code.
		rhs, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		//
		lhs, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		//
		return apply(n.Op, lhs, rhs)
	default:
		panic(fmt.Sprintf("unknown node %T", node))
	}
}

func apply(op OpKind, lhs int64, rhs int64) (int64, error) {
	switch op {
	case ADD:
		return lhs + rhs, nil
	case SUB:
		return lhs - rhs, nil
	case MUL:
		return lhs * rhs, nil
	case DIV:
		if rhs == 0 {
			return 0, ErrDivisionByZero
		} else if lhs == math.MinInt64 && rhs == -1 {
			return 0, ErrDivisionOverflow
		}
		//
		return lhs / rhs, nil
	}
	//
	panic(fmt.Sprintf("unknown operator (%d)", uint(op)))
}
