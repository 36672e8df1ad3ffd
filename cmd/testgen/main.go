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
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	util "github.com/xiaguan/tiny-c-compiler/pkg/cmd"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler"
	"github.com/xiaguan/tiny-c-compiler/pkg/compiler/ast"
	"github.com/xiaguan/tiny-c-compiler/pkg/util/source"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint("min-elem", 0, "Minimum literal")
	rootCmd.Flags().Uint("max-elem", 9, "Maximum literal")
	rootCmd.Flags().Uint("max-depth", 4, "Maximum expression depth")
	rootCmd.Flags().Uint("count", 8, "Number of tests to generate")
	rootCmd.Flags().Int64("seed", 1, "Seed for the random generator")
	rootCmd.Flags().String("dir", path.Join("testdata", "valid"), "Output directory")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "testgen [model]",
	Short: "Test generation utility for susuncc.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		var cfg TestGenConfig
		// Lookup model
		cfg.model = findModel(args[0])
		cfg.min_elem = util.GetUint(cmd, "min-elem")
		cfg.max_elem = util.GetUint(cmd, "max-elem")
		cfg.max_depth = util.GetUint(cmd, "max-depth")
		cfg.count = util.GetUint(cmd, "count")
		cfg.rand = rand.New(rand.NewSource(seed))
		//
		if cfg.min_elem > cfg.max_elem {
			fmt.Println("min-elem exceeds max-elem")
			os.Exit(2)
		}
		// Generate & write out
		tests := generateTests(cfg)
		writeTests(util.GetString(cmd, "dir"), cfg.model, tests)
		os.Exit(0)
	},
}

// TestGenConfig encapsulates configuration related to test generation.
type TestGenConfig struct {
	model     Model
	min_elem  uint
	max_elem  uint
	max_depth uint
	count     uint
	rand      *rand.Rand
}

// Model represents a family of generated expressions.
type Model struct {
	// Name of the model in question
	Name string
	// Operators which expressions of this model may use
	Operators []ast.OpKind
}

var models []Model = []Model{
	{"additive", []ast.OpKind{ast.ADD, ast.SUB}},
	{"multiplicative", []ast.OpKind{ast.MUL, ast.DIV}},
	{"arithmetic", []ast.OpKind{ast.ADD, ast.SUB, ast.MUL, ast.DIV}},
}

func findModel(name string) Model {
	for _, m := range models {
		if m.Name == name {
			return m
		}
	}
	//
	panic(fmt.Sprintf("unknown model \"%s\"", name))
}

// Test is a generated expression along with its value.
type Test struct {
	Text  string
	Value int64
}

// Generate expressions, using the reference evaluator as the oracle.  Any
// expression which the oracle rejects (e.g. divides by zero) is discarded.
func generateTests(cfg TestGenConfig) []Test {
	var (
		tests    []Test
		attempts uint
	)
	//
	for uint(len(tests)) < cfg.count && attempts < 100*cfg.count {
		attempts++
		//
		tree := generateTree(cfg, cfg.max_depth)
		if value, err := ast.Evaluate(tree); err == nil {
			tests = append(tests, Test{Render(tree), value})
		}
	}
	// Done
	return tests
}

func generateTree(cfg TestGenConfig, depth uint) ast.Node {
	var span = source.NewSpan(0, 0)
	// Stop early (sometimes) to vary the shape
	if depth <= 1 || cfg.rand.Intn(3) == 0 {
		n := cfg.max_elem - cfg.min_elem + 1
		val := int64(cfg.min_elem) + cfg.rand.Int63n(int64(n))
		//
		return ast.NewLiteral(val, span)
	}
	//
	op := cfg.model.Operators[cfg.rand.Intn(len(cfg.model.Operators))]
	lhs := generateTree(cfg, depth-1)
	rhs := generateTree(cfg, depth-1)
	//
	return ast.NewBinaryOp(op, lhs, rhs)
}

// Render an expression in infix form, using as few parentheses as are needed
// to preserve its structure.
func Render(node ast.Node) string {
	var builder strings.Builder
	//
	render(node, &builder)
	//
	return builder.String()
}

func render(node ast.Node, builder *strings.Builder) {
	switch n := node.(type) {
	case *ast.Literal:
		fmt.Fprintf(builder, "%d", n.Value)
	case *ast.BinaryOp:
		renderOperand(n.Left, precedence(n.Op), false, builder)
		fmt.Fprintf(builder, " %s ", n.Op.String())
		renderOperand(n.Right, precedence(n.Op), true, builder)
	default:
		panic("unknown expression encountered")
	}
}

func renderOperand(node ast.Node, outer uint, right bool, builder *strings.Builder) {
	bracket := false
	//
	if op, ok := node.(*ast.BinaryOp); ok {
		inner := precedence(op.Op)
		// Operators are left associative
		bracket = inner < outer || (right && inner == outer)
	}
	//
	if bracket {
		builder.WriteString("(")
		render(node, builder)
		builder.WriteString(")")
	} else {
		render(node, builder)
	}
}

func precedence(op ast.OpKind) uint {
	if op == ast.MUL || op == ast.DIV {
		return 2
	}
	//
	return 1
}

func writeTests(dir string, model Model, tests []Test) {
	for i, test := range tests {
		name := path.Join(dir, fmt.Sprintf("%s_auto_%02d", model.Name, i+1))
		// Compile the expression to obtain the expected assembly
		lines, errs := compiler.CompileString(test.Text)
		if len(errs) > 0 {
			panic(fmt.Sprintf("generated expression \"%s\" failed to compile: %s", test.Text, errs[0].Message()))
		}
		//
		writeFile(name+".expr", test.Text+"\n")
		writeFile(name+".s", strings.Join(lines, "\n")+"\n")
		writeFile(name+".value", fmt.Sprintf("%d\n", test.Value))
	}
	// Log what happened
	log.Infof("Wrote %d tests to %s\n", len(tests), dir)
}

func writeFile(filename string, contents string) {
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		panic(err)
	}
}
