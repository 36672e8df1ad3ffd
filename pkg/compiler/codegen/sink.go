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
package codegen

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Sink accepts the lines of an assembly program as they are generated.
type Sink interface {
	// WriteLine appends a single line (without its terminator).
	WriteLine(line string) error
}

// WriterSink writes lines to an underlying writer, such as a file or standard
// output.  Output is buffered, hence Flush must be called once generation is
// complete.
type WriterSink struct {
	writer *bufio.Writer
}

// NewWriterSink constructs a sink which writes to a given writer.
func NewWriterSink(writer io.Writer) *WriterSink {
	return &WriterSink{bufio.NewWriter(writer)}
}

// WriteLine implementation for Sink interface.
func (p *WriterSink) WriteLine(line string) error {
	if _, err := p.writer.WriteString(line); err != nil {
		return errors.Wrap(err, "WriteLine")
	} else if err := p.writer.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "WriteLine")
	}
	//
	return nil
}

// Flush writes any buffered lines to the underlying writer.
func (p *WriterSink) Flush() error {
	return errors.Wrap(p.writer.Flush(), "Flush")
}

// Listing is a sink which simply records every line written to it.
type Listing struct {
	Lines []string
}

// WriteLine implementation for Sink interface.
func (p *Listing) WriteLine(line string) error {
	p.Lines = append(p.Lines, line)
	return nil
}

// String returns the listing as the text of an assembly file.
func (p *Listing) String() string {
	var builder strings.Builder
	//
	for _, line := range p.Lines {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
