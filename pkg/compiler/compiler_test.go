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
package compiler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/codegen"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/assert"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

func Test_Compile_01(t *testing.T) {
	lines, errs := CompileString("1+2")
	//
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, []string{
		"    .globl main",
		"main:",
		"    mov $2, %rax",
		"    push %rax",
		"    mov $1, %rax",
		"    pop %rdi",
		"    add %rdi, %rax",
		"    ret",
	}, lines)
}

func Test_Compile_02(t *testing.T) {
	// Compilation is deterministic
	first, errs := CompileString("(1+2)*(3+4)/5")
	assert.Equal(t, 0, len(errs))
	second, errs := CompileString("(1+2)*(3+4)/5")
	assert.Equal(t, 0, len(errs))
	//
	assert.Equal(t, first, second)
}

func Test_Compile_03(t *testing.T) {
	// Nothing is written when parsing fails
	var buffer bytes.Buffer
	//
	sink := codegen.NewWriterSink(&buffer)
	errs, err := Compile(stream.NewStringStream("test", "1+(2*", 0), sink)
	//
	assert.NoError(t, err)
	assert.NoError(t, sink.Flush())
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, source.UNEXPECTED_END_OF_INPUT, errs[0].Kind())
	assert.Equal(t, 0, buffer.Len())
}

func Test_Compile_04(t *testing.T) {
	lines, errs := CompileString("1 2")
	//
	assert.Equal(t, 0, len(lines))
	assert.Equal(t, 1, len(errs))
	assert.Equal(t, "unexpected trailing input", errs[0].Message())
}

func Test_Compile_05(t *testing.T) {
	// A read failure is reported as an error, rather than as syntax errors
	input := stream.NewFileStream("broken", failingReader{}, 0)
	//
	var listing codegen.Listing
	errs, err := Compile(input, &listing)
	//
	assert.Equal(t, 0, len(errs))
	assert.True(t, errors.Is(err, errBroken))
	assert.Equal(t, 0, len(listing.Lines))
}

func Test_Compile_06(t *testing.T) {
	// Input beyond the first chunk is ignored
	tree, errs, err := Parse(stream.NewStringStream("test", "1+2+3", 3))
	//
	assert.NoError(t, err)
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, "(+ 1 2)", tree.String())
}

func Test_Compile_07(t *testing.T) {
	// Files are delivered chunk by chunk just like strings
	input := stream.NewFileStream("test", strings.NewReader("5*(9-6)"), 0)
	//
	tree, errs, err := Parse(input)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, "(* 5 (- 9 6))", tree.String())
}

var errBroken = errors.New("broken")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBroken
}
