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
package toolchain

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DEFAULT_CC is the C compiler driver used to assemble and link programs.
const DEFAULT_CC = "cc"

// Available checks whether a given C compiler driver can be found on the
// search path.
func Available(cc string) bool {
	_, err := exec.LookPath(cc)
	return err == nil
}

// Assemble turns the text of an assembly program into an executable, by
// handing it to an external C compiler driver (which runs the assembler and
// linker).
func Assemble(ctx context.Context, cc string, program string, output string) error {
	dir, err := os.MkdirTemp("", "susuncc")
	if err != nil {
		return errors.Wrap(err, "Assemble")
	}
	//
	defer os.RemoveAll(dir)
	//
	filename := filepath.Join(dir, "program.s")
	//
	if err := os.WriteFile(filename, []byte(program), 0o600); err != nil {
		return errors.Wrap(err, "Assemble")
	}
	//
	log.Debugf("running %s -o %s %s", cc, output, filename)
	//
	cmd := exec.CommandContext(ctx, cc, "-o", output, filename)
	//
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "%s failed: %s", cc, strings.TrimSpace(string(out)))
	}
	//
	return nil
}

// Run executes a given binary, returning its exit status.  An error is only
// returned if the binary could not be run or was terminated by a signal.
func Run(ctx context.Context, binary string) (int, error) {
	var exit *exec.ExitError
	// Avoid a search of the path for relative names
	binary, err := filepath.Abs(binary)
	if err != nil {
		return -1, errors.Wrap(err, "Run")
	}
	//
	err = exec.CommandContext(ctx, binary).Run()
	//
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exit) && exit.ExitCode() >= 0:
		return exit.ExitCode(), nil
	default:
		return -1, errors.Wrapf(err, "running %s", binary)
	}
}
