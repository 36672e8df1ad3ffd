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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/codegen"
	"github.com/xiaguan/tiny-c-compiler/pkg/toolchain"
	"github.com/xiaguan/tiny-c-compiler/pkg/util"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [expression]",
	Short: "compile an expression into an executable.",
	Long: `Compile a given expression (or the expression held in a file), then assemble and
link the resulting program into an executable using an external C compiler.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBuildCmd,
}

func runBuildCmd(cmd *cobra.Command, args []string) {
	configureLogging(cmd)
	//
	var (
		cc      = GetString(cmd, "cc")
		output  = GetString(cmd, "output")
		run     = GetFlag(cmd, "run")
		input   = OpenInput(cmd, args)
		listing codegen.Listing
	)
	//
	defer input.Close()
	//
	tree := ParseInput(input)
	stats := util.NewPerfStats()
	//
	if err := codegen.NewGenerator(&listing).GenerateProgram(tree); err != nil {
		fmt.Println(err)
		os.Exit(2)
	} else if err := toolchain.Assemble(cmd.Context(), cc, listing.String(), output); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	stats.Log("Building executable")
	//
	if run {
		status, err := toolchain.Run(cmd.Context(), output)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(status)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("output", "o", "a.out", "name of the executable to produce")
	buildCmd.Flags().String("cc", toolchain.DEFAULT_CC, "C compiler driver used to assemble and link")
	buildCmd.Flags().Bool("run", false, "run the executable and report its exit status")
}
