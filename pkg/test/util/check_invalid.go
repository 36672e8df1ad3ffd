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
	"errors"
	"fmt"
	"testing"

	"github.com/xiaguan/tiny-c-compiler/pkg/compiler"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/stream"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// CheckInvalid checks that a given expression file fails to compile, producing
// exactly the errors listed in the accompanying error file (i.e. "NAME.err").
func CheckInvalid(t *testing.T, test string) {
	var (
		filename = fmt.Sprintf("%s/%s.expr", TestDir, test)
		errname  = fmt.Sprintf("%s/%s.err", TestDir, test)
	)
	// Enable testing each file in parallel
	t.Parallel()
	//
	srcfile := readSourceFile(t, filename)
	errfile := readSourceFile(t, errname)
	// Compile expression to produce errors
	_, actual, err := compiler.Parse(stream.NewStringStream(filename, srcfile.Text(), 0))
	if err != nil {
		t.Fatal(err)
	}
	// Extract expected errors for comparison
	expected, errs := readExpectedErrors(errfile, srcfile)
	//
	if len(errs) > 0 {
		// Report any errors encountered reading the error file itself.
		t.Fatal(errors.Join(errs...))
	} else if len(expected) == 0 {
		t.Fatalf("Error %s lists no expected errors\n", errname)
	}
	// Check expression did not compile!
	checkExpectedErrors(t, srcfile, actual, expected)
}

func checkExpectedErrors(t *testing.T, srcfile *source.File, actual, expected []source.SyntaxError) {
	if len(actual) == 0 {
		t.Fatalf("Error %s should not have compiled\n", srcfile.Filename())
	} else {
		error := false
		// Construct initial message
		msg := fmt.Sprintf("Error %s\n", srcfile.Filename())
		// Pad out with what received
		for i := 0; i < max(len(actual), len(expected)); i++ {
			if i < len(actual) && i < len(expected) {
				expected := expected[i]
				actual := actual[i]
				// Check whether error matches
				if expected.Kind() == actual.Kind() && expected.Message() == actual.Message() &&
					expected.Span() == actual.Span() {
					continue
				}
			}
			// Indicate error arose
			error = true
			// actual
			if i < len(actual) {
				msg = fmt.Sprintf("%s unexpected error %s", msg, errorToString(srcfile, actual[i]))
			}
			// expected
			if i < len(expected) {
				msg = fmt.Sprintf("%s   expected error %s", msg, errorToString(srcfile, expected[i]))
			}
		}
		//
		if error {
			t.Fatal(msg)
		}
	}
}

// Convert an error into a useful human readable string.
func errorToString(srcfile *source.File, err source.SyntaxError) string {
	span := err.Span()
	line := srcfile.FindFirstEnclosingLine(span)
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(0, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	return fmt.Sprintf("%s:%d:%d-%d %s: %s\n", srcfile.Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Kind().String(), err.Message())
}
