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
package test

import (
	"testing"

	"github.com/xiaguan/tiny-c-compiler/pkg/test/util"
)

// ===================================================================
// End of input
// ===================================================================

func Test_Invalid_Eof_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/eof_01")
}

func Test_Invalid_Eof_02(t *testing.T) {
	util.CheckInvalid(t, "invalid/eof_02")
}

func Test_Invalid_Eof_03(t *testing.T) {
	util.CheckInvalid(t, "invalid/eof_03")
}

func Test_Invalid_Eof_04(t *testing.T) {
	util.CheckInvalid(t, "invalid/eof_04")
}

// ===================================================================
// Parentheses
// ===================================================================

func Test_Invalid_Unbalanced_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/unbalanced_01")
}

func Test_Invalid_Unbalanced_02(t *testing.T) {
	util.CheckInvalid(t, "invalid/unbalanced_02")
}

func Test_Invalid_Unbalanced_03(t *testing.T) {
	util.CheckInvalid(t, "invalid/unbalanced_03")
}

// ===================================================================
// Unexpected tokens
// ===================================================================

func Test_Invalid_Unexpected_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/unexpected_01")
}

func Test_Invalid_Unexpected_02(t *testing.T) {
	util.CheckInvalid(t, "invalid/unexpected_02")
}

func Test_Invalid_Unexpected_03(t *testing.T) {
	util.CheckInvalid(t, "invalid/unexpected_03")
}

func Test_Invalid_Unexpected_04(t *testing.T) {
	util.CheckInvalid(t, "invalid/unexpected_04")
}

func Test_Invalid_Unexpected_05(t *testing.T) {
	util.CheckInvalid(t, "invalid/unexpected_05")
}

func Test_Invalid_Unexpected_06(t *testing.T) {
	util.CheckInvalid(t, "invalid/unexpected_06")
}

// ===================================================================
// Lexical
// ===================================================================

func Test_Invalid_Lexical_01(t *testing.T) {
	util.CheckInvalid(t, "invalid/lexical_01")
}

func Test_Invalid_Lexical_02(t *testing.T) {
	util.CheckInvalid(t, "invalid/lexical_02")
}

func Test_Invalid_Lexical_03(t *testing.T) {
	util.CheckInvalid(t, "invalid/lexical_03")
}

func Test_Invalid_Lexical_04(t *testing.T) {
	util.CheckInvalid(t, "invalid/lexical_04")
}
