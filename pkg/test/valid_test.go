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
// Literals
// ===================================================================

func Test_Valid_Literal_01(t *testing.T) {
	util.CheckValid(t, "valid/literal_01")
}

func Test_Valid_Literal_02(t *testing.T) {
	util.CheckValid(t, "valid/literal_02")
}

func Test_Valid_Literal_03(t *testing.T) {
	util.CheckValid(t, "valid/literal_03")
}

func Test_Valid_Literal_04(t *testing.T) {
	util.CheckValid(t, "valid/literal_04")
}

// ===================================================================
// Additive
// ===================================================================

func Test_Valid_Additive_01(t *testing.T) {
	util.CheckValid(t, "valid/additive_01")
}

func Test_Valid_Additive_02(t *testing.T) {
	util.CheckValid(t, "valid/additive_02")
}

func Test_Valid_Additive_03(t *testing.T) {
	util.CheckValid(t, "valid/additive_03")
}

func Test_Valid_Additive_04(t *testing.T) {
	util.CheckValid(t, "valid/additive_04")
}

func Test_Valid_Additive_05(t *testing.T) {
	util.CheckValid(t, "valid/additive_05")
}

// ===================================================================
// Multiplicative
// ===================================================================

func Test_Valid_Multiplicative_01(t *testing.T) {
	util.CheckValid(t, "valid/multiplicative_01")
}

func Test_Valid_Multiplicative_02(t *testing.T) {
	util.CheckValid(t, "valid/multiplicative_02")
}

func Test_Valid_Multiplicative_03(t *testing.T) {
	util.CheckValid(t, "valid/multiplicative_03")
}

func Test_Valid_Multiplicative_04(t *testing.T) {
	util.CheckValid(t, "valid/multiplicative_04")
}

func Test_Valid_Multiplicative_05(t *testing.T) {
	util.CheckValid(t, "valid/multiplicative_05")
}

// ===================================================================
// Precedence
// ===================================================================

func Test_Valid_Precedence_01(t *testing.T) {
	util.CheckValid(t, "valid/precedence_01")
}

func Test_Valid_Precedence_02(t *testing.T) {
	util.CheckValid(t, "valid/precedence_02")
}

func Test_Valid_Precedence_03(t *testing.T) {
	util.CheckValid(t, "valid/precedence_03")
}

func Test_Valid_Precedence_04(t *testing.T) {
	util.CheckValid(t, "valid/precedence_04")
}

func Test_Valid_Precedence_05(t *testing.T) {
	util.CheckValid(t, "valid/precedence_05")
}

func Test_Valid_Precedence_06(t *testing.T) {
	util.CheckValid(t, "valid/precedence_06")
}

// ===================================================================
// Nesting
// ===================================================================

func Test_Valid_Nested_01(t *testing.T) {
	util.CheckValid(t, "valid/nested_01")
}

func Test_Valid_Nested_02(t *testing.T) {
	util.CheckValid(t, "valid/nested_02")
}

func Test_Valid_Whitespace_01(t *testing.T) {
	util.CheckValid(t, "valid/whitespace_01")
}
