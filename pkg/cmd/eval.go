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
	"math/big"
	"os"

	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression [value...]",
	Short: "Expand an expression into canonical form, optionally evaluating it.",
	Long: `Parse a polynomial expression, expand it into canonical sparse form
under the configured ordering and print it.  When one integer value
per variable is supplied, the polynomial is instead evaluated at
that point.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogLevel(cmd)
		//
		ctx, names := parseContext(cmd)
		poly := parsePoly(args[0], names, ctx)
		// Without a point, just expand
		if len(args) == 1 {
			fmt.Println(poly.Format(names, ctx))
			return
		}
		//
		if uint(len(args)-1) != ctx.NumVars() {
			fmt.Printf("expected %d values, got %d\n", ctx.NumVars(), len(args)-1)
			os.Exit(1)
		}
		//
		vals := make([]*big.Int, len(args)-1)
		//
		for i, arg := range args[1:] {
			v, ok := new(big.Int).SetString(arg, 10)
			if !ok {
				fmt.Printf("malformed integer %q\n", arg)
				os.Exit(1)
			}
			//
			vals[i] = v
		}
		//
		res, ok := poly.Evaluate(vals, ctx)
		if !ok {
			fmt.Println("evaluation failed")
			os.Exit(1)
		}
		//
		fmt.Println(res)
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
