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
	"strconv"
	"strings"

	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

// Read the syntax errors expected for an expression file from its error
// file.  Every non-blank line of an error file has the form
// ";;error:LINE:START-END:KIND:message", where LINE and the columns refer to
// the expression file.  Malformed lines are reported, rather than skipped, so
// that a broken error file cannot pass silently.
func readExpectedErrors(errfile *source.File, exprfile *source.File) ([]source.SyntaxError, []error) {
	var (
		expected []source.SyntaxError
		failures []error
		lines    = exprfile.Lines()
	)
	//
	for _, line := range errfile.Lines() {
		contents := strings.TrimSpace(line.String())
		//
		if contents == "" {
			continue
		} else if !strings.HasPrefix(contents, ";;error:") {
			failures = append(failures, fmt.Errorf("line %d: expected \";;error:\" annotation", line.Number()))
			continue
		}
		//
		lineno, start, end, kind, msg, err := parseExpectedErrorLine(contents)
		//
		if err == nil {
			var span source.Span
			//
			if span, err = determineFileSpan(lineno, start, end, lines); err == nil {
				expected = append(expected, *source.NewSyntaxError(kind, span, msg))
				continue
			}
		}
		//
		failures = append(failures, err)
	}
	//
	return expected, failures
}

func parseExpectedErrorLine(contents string) (line, start, end int, kind source.ErrorKind, msg string, err error) {
	var splits = strings.Split(contents, ":")
	//
	if len(splits) < 5 {
		return 0, 0, 0, 0, "", fmt.Errorf("malformed expected error \"%s\", should be e.g. \";;error:X:Y-Z:kind:msg\"",
			contents)
	}
	// Parse line number
	if line, err = strconv.Atoi(splits[1]); err != nil {
		return 0, 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (%s)", splits[1], splits[2], err.Error())
	} else if line == 0 {
		return 0, 0, 0, 0, "", fmt.Errorf("invalid span \"%s:%s\" (lines numbered from 1)", splits[1], splits[2])
	}
	// Parse split
	if start, end, err = parseExpectedErrorSpan(splits[2]); err != nil {
		return 0, 0, 0, 0, "", err
	}
	// Parse kind
	kind, ok := source.ParseErrorKind(splits[3])
	if !ok {
		return 0, 0, 0, 0, "", fmt.Errorf("unknown error kind \"%s\"", splits[3])
	}
	//
	msg = strings.Join(splits[4:], ":")
	//
	return line, start, end, kind, msg, nil
}

func parseExpectedErrorSpan(span_str string) (start, end int, err error) {
	var (
		// Split the span
		span_splits = strings.Split(span_str, "-")
	)
	//
	if len(span_splits) != 2 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (malformed, should be X-Y)", span_str)
	}
	// Parse span start as integer
	if start, err = strconv.Atoi(span_splits[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span_str, err.Error())
	} else if start == 0 {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (columns numbered from 1)", span_str)
	}
	// Parse span end as integer
	if end, err = strconv.Atoi(span_splits[1]); err != nil {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (%s)", span_str, err.Error())
	} else if end < start {
		return 0, 0, fmt.Errorf("invalid span \"%s\" (ends before it starts)", span_str)
	}
	//
	return start, end, err
}

// Determine the span that the the given line and columns correspond to.  We
// need the line offsets so that the computed span includes the starting offset
// of the relevant line.  A zero-length span may sit just past the end of a
// line, which is where the end of input is reported.
func determineFileSpan(lineno, start, end int, lines []source.Line) (source.Span, error) {
	// Sanity checks
	if lineno > len(lines) {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (non-existent line)", lineno, start, end)
	}
	//
	line := lines[lineno-1]
	// Subtract one from each since column numbering starts from 1.
	start--
	end--
	//
	if start > line.Length() || end > line.Length() {
		return source.Span{}, fmt.Errorf("invalid span \"%d:%d-%d\" (overflows to following line)", lineno, start, end)
	}
	// Add line offset
	start += line.Start()
	end += line.Start()
	//
	return source.NewSpan(start, end), nil
}
