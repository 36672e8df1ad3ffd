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
package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/xiaguan/tiny-c-compiler/pkg/asm/vm"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/codegen"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// TestDir determines the (relative) location of the test directory.  That is
// where the expression files (expr) and the corresponding expected outputs
// (s, value, err) are found.
const TestDir = "../../testdata"

// CHUNK_SIZES determines the chunk capacities every valid test is compiled
// with.  All of these must be large enough to hold every test expression.
var CHUNK_SIZES = []uint{stream.DEFAULT_CHUNK_SIZE, 256}

// CheckValid checks that a given expression file compiles into the expected
// assembly (i.e. "NAME.s"), and that the assembly computes the expected value
// (i.e. "NAME.value").  The reference evaluator must agree on this value.
func CheckValid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.expr", TestDir, test)
		expected = readSourceFile(t, fmt.Sprintf("%s/%s.s", TestDir, test))
		value    = readExpectedValue(t, fmt.Sprintf("%s/%s.value", TestDir, test))
	)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	//
	for _, size := range CHUNK_SIZES {
		var listing codegen.Listing
		//
		errs, err := compiler.Compile(stream.NewStringStream(filename, srcfile.Text(), size), &listing)
		// Sanity check compilation
		if err != nil {
			t.Fatal(err)
		} else if len(errs) > 0 {
			t.Fatalf("Error %s should have compiled: %s", filename, errorToString(srcfile, errs[0]))
		}
		// Check assembly matches
		checkListing(t, filename, expected, listing)
		// Check assembly computes the right value
		checkExecution(t, filename, value, listing)
	}
	// Check reference evaluator agrees
	checkReference(t, filename, srcfile, value)
}

func checkListing(t *testing.T, test string, expected *source.File, listing codegen.Listing) {
	var lines = strings.Split(strings.TrimSuffix(expected.Text(), "\n"), "\n")
	//
	for i := 0; i < max(len(lines), len(listing.Lines)); i++ {
		var actual, wanted string
		//
		if i < len(listing.Lines) {
			actual = listing.Lines[i]
		}
		//
		if i < len(lines) {
			wanted = lines[i]
		}
		//
		if actual != wanted {
			t.Fatalf("Error %s line %d: generated \"%s\", expected \"%s\"", test, i+1, actual, wanted)
		}
	}
}

func checkExecution(t *testing.T, test string, expected int64, listing codegen.Listing) {
	actual, errs, err := vm.Run(source.NewSourceString(test+".s", listing.String()))
	//
	if len(errs) > 0 {
		t.Fatalf("Error %s generated unreadable assembly: %s", test, errs[0].Error())
	} else if err != nil {
		t.Fatalf("Error %s failed executing: %s", test, err.Error())
	} else if actual != expected {
		t.Fatalf("Error %s computed %d, expected %d", test, actual, expected)
	}
}

func checkReference(t *testing.T, test string, srcfile *source.File, expected int64) {
	tree, errs, err := compiler.Parse(stream.NewStringStream(test, srcfile.Text(), 0))
	//
	if err != nil || len(errs) > 0 {
		t.Fatalf("Error %s should have parsed", test)
	}
	//
	if actual, err := ast.Evaluate(tree); err != nil {
		t.Fatalf("Error %s failed evaluating: %s", test, err.Error())
	} else if actual != expected {
		t.Fatalf("Error %s evaluated to %d, expected %d", test, actual, expected)
	}
}

func readExpectedValue(t *testing.T, filename string) int64 {
	srcfile := readSourceFile(t, filename)
	// Parse value
	value, err := strconv.ParseInt(strings.TrimSpace(srcfile.Text()), 10, 64)
	if err != nil {
		t.Fatal(err)
	}
	//
	return value
}

func readSourceFile(t *testing.T, filename string) *source.File {
	bytes, err := os.ReadFile(filename)
	// Check test file read ok
	if err != nil {
		t.Fatal(err)
	}
	// Package up as source file
	return source.NewSourceFile(filename, bytes)
}
